package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func rankingSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Providers: []domain.Provider{
			{ID: "P1", Name: "Ana", CommissionRate: 0.5},
			{ID: "P2", Name: "Bia", CommissionRate: 0.4},
		},
		Services: []domain.ServiceCatalogEntry{
			{ID: "S1", Name: "Corte", Price: 100, DurationMinutes: 30},
		},
		Bookings: []domain.Booking{
			{ID: "B1", CustomerID: "C1", ProviderID: "P1", ServiceID: "S1", Date: "2024-01-10", Time: "10:00", Status: domain.BookingStatusCompleted},
			{ID: "B2", CustomerID: "C2", ProviderID: "P2", ServiceID: "S1", Date: "2024-01-12", Time: "11:00", Status: domain.BookingStatusCompleted, BookedPrice: floatPtr(300)},
			{ID: "B3", CustomerID: "C3", ProviderID: "P1", ServiceID: "S1", Date: "2024-01-13", Time: "12:00", Status: domain.BookingStatusCancelled, BookedPrice: floatPtr(1000)},
			{ID: "B4", CustomerID: "C1", ProviderID: "P1", ServiceID: "S1", Date: "2023-12-30", Time: "09:00", Status: domain.BookingStatusCompleted, BookedPrice: floatPtr(5000)},
		},
	}
}

func TestProviderRankingService_processProviderRankingWithDate(t *testing.T) {
	processingDate := time.Date(2024, 1, 16, 6, 0, 0, 0, time.Local)
	month := "01-2024"

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockProviderRankingRepository)
		wantErr  bool
		validate func(t *testing.T, result []*domain.ProviderRankingItem)
	}{
		{
			name: "Profissionais sem ranking anterior - posições pelo faturamento do mês",
			setup: func(repo *mocks.MockProviderRankingRepository) {
				repo.EXPECT().GetByProviderID("P1", month).Return(nil, nil)
				repo.EXPECT().GetByProviderID("P2", month).Return(nil, nil)
				repo.EXPECT().SaveOrUpdateProviderRanking(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.ProviderRankingItem) {
				require.Len(t, result, 2)

				assert.Equal(t, "P2", result[0].ProviderID)
				assert.Equal(t, "Bia", result[0].ProviderName)
				assert.Equal(t, 300.0, result[0].Revenue)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 0, result[0].PreviousPosition)

				// Agendamento cancelado e de outro mês não entram
				assert.Equal(t, "P1", result[1].ProviderID)
				assert.Equal(t, 100.0, result[1].Revenue)
				assert.Equal(t, 1, result[1].ServicesCount)
				assert.Equal(t, 2, result[1].Position)

				for _, item := range result {
					assert.Equal(t, month, item.Month)
					assert.Len(t, item.RunID, 10)
				}
			},
		},
		{
			name: "Profissional que era primeiro cai uma posição",
			setup: func(repo *mocks.MockProviderRankingRepository) {
				repo.EXPECT().GetByProviderID("P1", month).Return(&domain.ProviderRankingItem{ProviderID: "P1", Month: month, Position: 1}, nil)
				repo.EXPECT().GetByProviderID("P2", month).Return(&domain.ProviderRankingItem{ProviderID: "P2", Month: month, Position: 2}, nil)
				repo.EXPECT().SaveOrUpdateProviderRanking(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.ProviderRankingItem) {
				require.Len(t, result, 2)

				assert.Equal(t, "P2", result[0].ProviderID)
				assert.Equal(t, 2, result[0].PreviousPosition)
				assert.Equal(t, 1, result[0].PositionChange)

				assert.Equal(t, "P1", result[1].ProviderID)
				assert.Equal(t, 1, result[1].PreviousPosition)
				assert.Equal(t, -1, result[1].PositionChange)
			},
		},
		{
			name: "Erro ao buscar ranking anterior não impede o cálculo",
			setup: func(repo *mocks.MockProviderRankingRepository) {
				repo.EXPECT().GetByProviderID("P1", month).Return(nil, errors.New("timeout"))
				repo.EXPECT().GetByProviderID("P2", month).Return(nil, nil)
				repo.EXPECT().SaveOrUpdateProviderRanking(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.ProviderRankingItem) {
				require.Len(t, result, 2)
				assert.Equal(t, 0, result[1].PreviousPosition)
			},
		},
		{
			name: "Erro ao salvar retorna o ranking calculado junto com o erro",
			setup: func(repo *mocks.MockProviderRankingRepository) {
				repo.EXPECT().GetByProviderID(gomock.Any(), month).Return(nil, nil).Times(2)
				repo.EXPECT().SaveOrUpdateProviderRanking(gomock.Any()).Return(errors.New("falha no banco"))
			},
			wantErr: true,
			validate: func(t *testing.T, result []*domain.ProviderRankingItem) {
				assert.Len(t, result, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRankingRepo := mocks.NewMockProviderRankingRepository(ctrl)
			tt.setup(mockRankingRepo)

			service := &ProviderRankingService{rankingRepo: mockRankingRepo}

			result, err := service.processProviderRankingWithDate(rankingSnapshot(), processingDate)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			tt.validate(t, result)
		})
	}
}

func TestProviderRankingService_updatePositions(t *testing.T) {
	service := &ProviderRankingService{}

	rankings := []*domain.ProviderRankingItem{
		{ProviderID: "P1", Revenue: 100},
		{ProviderID: "P2", Revenue: 500},
		{ProviderID: "P3", Revenue: 100},
	}
	before := map[string]*domain.ProviderRankingItem{
		"P3": {ProviderID: "P3", Position: 1},
	}

	service.updatePositions(rankings, before)

	assert.Equal(t, "P2", rankings[0].ProviderID)
	assert.Equal(t, 1, rankings[0].Position)

	// Empate mantém a ordem original
	assert.Equal(t, "P1", rankings[1].ProviderID)
	assert.Equal(t, 2, rankings[1].Position)

	assert.Equal(t, "P3", rankings[2].ProviderID)
	assert.Equal(t, 3, rankings[2].Position)
	assert.Equal(t, 1, rankings[2].PreviousPosition)
	assert.Equal(t, -2, rankings[2].PositionChange)
}

func TestProviderRankingService_UpdateProviderRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockRankingRepo := mocks.NewMockProviderRankingRepository(ctrl)

	service := &ProviderRankingService{
		snapshotRepo: mockSnapshotRepo,
		rankingRepo:  mockRankingRepo,
	}

	t.Run("Erro ao carregar snapshot interrompe a atualização", func(t *testing.T) {
		mockSnapshotRepo.EXPECT().LoadSnapshot(gomock.Any()).Return(nil, errors.New("conexão recusada"))

		err := service.UpdateProviderRanking()
		assert.Error(t, err)

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Snapshot vazio grava ranking vazio", func(t *testing.T) {
		mockSnapshotRepo.EXPECT().LoadSnapshot(gomock.Any()).Return(&domain.Snapshot{}, nil)
		mockRankingRepo.EXPECT().SaveOrUpdateProviderRanking(gomock.Len(0)).Return(nil)

		err := service.UpdateProviderRanking()
		assert.NoError(t, err)
	})
}

func floatPtr(f float64) *float64 {
	return &f
}
