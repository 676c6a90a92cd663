// Package scheduler contém os serviços de agendamento para consolidação de dados do painel
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

type ProviderRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type ProviderRankingService struct {
	scheduler           *gocron.Scheduler
	snapshotRepo        repository.SnapshotRepository
	rankingRepo         repository.ProviderRankingRepository
	config              ProviderRankingConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewProviderRankingService(
	snapshotRepo repository.SnapshotRepository,
	rankingRepo repository.ProviderRankingRepository,
	cfg *config.Config,
) *ProviderRankingService {
	rankingConfig := ProviderRankingConfig{
		CronSchedule: cfg.ProviderRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.ProviderRankingSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking de profissionais carregada")

	return &ProviderRankingService{
		scheduler:    gocron.NewScheduler(cfg.App.Location()),
		snapshotRepo: snapshotRepo,
		rankingRepo:  rankingRepo,
		config:       rankingConfig,
	}
}

func (s *ProviderRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do ranking de profissionais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking de profissionais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateProviderRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de profissionais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de profissionais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de profissionais")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ProviderRankingService) UpdateProviderRanking() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking de profissionais já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização do ranking de profissionais")

	snapshot, err := s.snapshotRepo.LoadSnapshot(context.Background())
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar snapshot para o ranking de profissionais")
		return err
	}

	if _, err := s.processProviderRankingWithDate(snapshot, time.Now()); err != nil {
		return err
	}

	logrus.Info("Atualização do ranking de profissionais concluída")

	return nil
}

// processProviderRankingWithDate ranqueia os profissionais pelo faturamento do mês de "ontem"
// em relação à data de processamento
func (s *ProviderRankingService) processProviderRankingWithDate(snapshot *domain.Snapshot, processingDate time.Time) ([]*domain.ProviderRankingItem, error) {
	yesterday := processingDate.AddDate(0, 0, -1)
	month := utils.MonthPeriod(yesterday)

	catalog := reporting.NewCatalog(snapshot)
	period := reporting.NewPeriod(domain.ViewModeMonth, yesterday)
	records := reporting.ApplyFilters(snapshot, domain.DashboardFilters{}, period, catalog)
	performances := reporting.RankProvidersByRevenue(records.Bookings, catalog)

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	rankingBeforeUpdate := make(chan domain.ProviderRankingItem, len(performances))
	wg := sync.WaitGroup{}

	for _, performance := range performances {
		wg.Add(1)

		go func(providerID string) {
			defer wg.Done()

			previous, err := s.rankingRepo.GetByProviderID(providerID, month)
			if err != nil {
				logrus.WithError(err).WithField("provider_id", providerID).Error("ProviderRankingService: Erro ao buscar ranking anterior")
				return
			}

			if previous != nil {
				rankingBeforeUpdate <- *previous
			}
		}(performance.ProviderID)
	}

	wg.Wait()
	close(rankingBeforeUpdate)

	rankingsBeforeUpdate := make(map[string]*domain.ProviderRankingItem)
	for ranking := range rankingBeforeUpdate {
		if ranking.ProviderID == "" {
			continue
		}
		rankingsBeforeUpdate[ranking.ProviderID] = &ranking
	}

	updatedRankings := make([]*domain.ProviderRankingItem, 0, len(performances))
	for _, performance := range performances {
		updatedRankings = append(updatedRankings, &domain.ProviderRankingItem{
			RunID:         runID,
			ProviderID:    performance.ProviderID,
			Month:         month,
			ProviderName:  performance.Name,
			Revenue:       performance.Revenue,
			ServicesCount: performance.Count,
		})
	}

	s.updatePositions(updatedRankings, rankingsBeforeUpdate)

	if err := s.rankingRepo.SaveOrUpdateProviderRanking(updatedRankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar ranking de profissionais atualizado")
		return updatedRankings, err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"month":     month,
		"providers": len(updatedRankings),
	}).Info("Ranking de profissionais atualizado")

	return updatedRankings, nil
}

// updatePositions define a posição de cada profissional. PositionChange positivo significa que subiu.
func (*ProviderRankingService) updatePositions(
	updatedRankings []*domain.ProviderRankingItem,
	rankingsBeforeUpdate map[string]*domain.ProviderRankingItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		return updatedRankings[i].Revenue > updatedRankings[j].Revenue
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		rankingBefore, exists := rankingsBeforeUpdate[ranking.ProviderID]
		if exists {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}

// TriggerManualSync inicia manualmente a atualização do ranking de profissionais
func (s *ProviderRankingService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking de profissionais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de profissionais")
	go func() {
		if err := s.UpdateProviderRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de profissionais")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ProviderRankingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
