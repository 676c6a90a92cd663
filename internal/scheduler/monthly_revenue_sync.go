package scheduler

import (
	"context"
	"fmt"
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

// MonthlyRevenueSyncConfig representa a configuração do fechamento mensal de faturamento
type MonthlyRevenueSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// MonthlyRevenueSyncService fecha o faturamento dos meses anteriores, usado como base da previsão
type MonthlyRevenueSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyRevenueSyncConfig
	snapshotRepo        repository.SnapshotRepository
	monthlyRevenueRepo  repository.MonthlyRevenueRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMonthlyRevenueSyncService(
	snapshotRepo repository.SnapshotRepository,
	monthlyRevenueRepo repository.MonthlyRevenueRepository,
	appConfig *config.Config,
) *MonthlyRevenueSyncService {
	syncConfig := MonthlyRevenueSyncConfig{
		CronSchedule:  appConfig.MonthlyRevenueSync.CronSchedule,
		SyncEnabled:   appConfig.MonthlyRevenueSync.Enabled,
		MonthLookBack: appConfig.MonthlyRevenueSync.MonthLookBack,
	}

	if syncConfig.MonthLookBack <= 0 {
		syncConfig.MonthLookBack = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"sync_enabled":    syncConfig.SyncEnabled,
		"month_look_back": syncConfig.MonthLookBack,
	}).Info("Configuração do fechamento mensal de faturamento carregada")

	return &MonthlyRevenueSyncService{
		scheduler:          gocron.NewScheduler(appConfig.App.Location()),
		config:             syncConfig,
		snapshotRepo:       snapshotRepo,
		monthlyRevenueRepo: monthlyRevenueRepo,
	}
}

func (s *MonthlyRevenueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento mensal de faturamento desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do fechamento mensal de faturamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyRevenue(time.Now())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento mensal de faturamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do fechamento mensal de faturamento")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyRevenue fecha os MonthLookBack meses anteriores a now
func (s *MonthlyRevenueSyncService) syncMonthlyRevenue(now time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento mensal de faturamento já em andamento, ignorando")
		return
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

	startTime := time.Now()

	snapshot, err := s.snapshotRepo.LoadSnapshot(context.Background())
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar snapshot para o fechamento mensal")
		return
	}

	// Partir do dia 1 evita que 31/03 - 1 mês caia em março de novo
	firstDayOfMonth := utils.FirstDayOfMonth(utils.NoonOf(now))

	for i := 1; i <= s.config.MonthLookBack; i++ {
		month := firstDayOfMonth.AddDate(0, -i, 0)

		if _, err := s.closeMonth(snapshot, month); err != nil {
			logrus.WithError(err).WithField("month", utils.MonthPeriod(month)).Error("Erro ao fechar faturamento mensal")
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"months":   s.config.MonthLookBack,
	}).Info("Fechamento mensal de faturamento concluído")
}

// closeMonth calcula o faturamento do mês sem filtros e grava na tabela histórica
func (s *MonthlyRevenueSyncService) closeMonth(snapshot *domain.Snapshot, month time.Time) (*domain.MonthlyRevenueEntry, error) {
	catalog := reporting.NewCatalog(snapshot)
	filters := domain.DashboardFilters{}
	records := reporting.ApplyFilters(snapshot, filters, reporting.NewPeriod(domain.ViewModeMonth, month), catalog)
	kpis := reporting.ComputeKPIs(records, filters, catalog)

	entry := &domain.MonthlyRevenueEntry{
		Year:            month.Year(),
		Month:           int(month.Month()),
		Revenue:         kpis.TotalRevenue,
		BookingRevenue:  kpis.BookingRevenue,
		ProductRevenue:  kpis.ProductRevenue,
		CommissionTotal: kpis.CommissionTotal,
	}

	if err := s.monthlyRevenueRepo.SaveOrUpdate(entry); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"month":   utils.MonthPeriod(month),
		"revenue": entry.Revenue,
	}).Info("Faturamento mensal fechado")

	return entry, nil
}

// TriggerManualSync inicia manualmente o fechamento mensal
func (s *MonthlyRevenueSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento mensal manual")
	go s.syncMonthlyRevenue(time.Now())
}

// GetStatus retorna o status atual do agendador
func (s *MonthlyRevenueSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"month_look_back":        s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
