package ranking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestProviderRankingService_GetProviderRanking(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantMonth string
		repoErr   error
		wantErr   bool
	}{
		{
			name:      "Mês informado é repassado ao repositório",
			month:     "03-2024",
			wantMonth: "03-2024",
		},
		{
			name:      "Sem mês usa o mês de ontem",
			month:     "",
			wantMonth: "02-2024",
		},
		{
			name:      "Erro do repositório é propagado",
			month:     "03-2024",
			wantMonth: "03-2024",
			repoErr:   errors.New("falha"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockProviderRankingRepository(ctrl)
			service := &ProviderRankingService{
				ProviderRankingRepository: repo,
				// 1º de março: ontem ainda é fevereiro
				now: func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local) },
			}

			var response *domain.ProviderRankingResponse
			if tt.repoErr == nil {
				response = &domain.ProviderRankingResponse{Ranking: []domain.ProviderRankingItem{{ProviderID: "P1", Position: 1}}}
			}
			repo.EXPECT().GetProviderRanking(tt.wantMonth).Return(response, tt.repoErr)

			result, err := service.GetProviderRanking(tt.month)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, result.Ranking, 1)
		})
	}
}
