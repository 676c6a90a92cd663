package ranking

import (
	"time"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

type RankingService interface {
	GetProviderRanking(month string) (*domain.ProviderRankingResponse, error)
}

type ProviderRankingService struct {
	ProviderRankingRepository repository.ProviderRankingRepository
	now                       func() time.Time
}

func NewProviderRankingService(providerRankingRepository repository.ProviderRankingRepository) RankingService {
	return &ProviderRankingService{
		ProviderRankingRepository: providerRankingRepository,
		now:                       time.Now,
	}
}

// GetProviderRanking retorna o ranking gravado do mês mm-yyyy. Mês vazio usa o mês de ontem,
// o mesmo processado pelo agendador.
func (s *ProviderRankingService) GetProviderRanking(month string) (*domain.ProviderRankingResponse, error) {
	if month == "" {
		month = utils.MonthPeriod(s.now().AddDate(0, 0, -1))
	}

	ranking, err := s.ProviderRankingRepository.GetProviderRanking(month)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}
