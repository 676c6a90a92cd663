package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

type Reporter interface {
	GetDashboard(ctx context.Context, request DashboardRequest) (*domain.DashboardReport, error)
	GetForecast(ctx context.Context, request ForecastRequest) (*domain.Forecast, error)
}

type DashboardRequest struct {
	Period  Period
	Filters domain.DashboardFilters
	TopN    int // 0 usa o padrão configurado
}

type ForecastRequest struct {
	GrowthPercent *float64 // nil usa o padrão configurado
	Filters       domain.DashboardFilters
}

type Service struct {
	snapshotRepository       repository.SnapshotRepository
	monthlyRevenueRepository repository.MonthlyRevenueRepository
	settings                 config.Dashboard
	now                      func() time.Time
}

func NewService(
	snapshotRepository repository.SnapshotRepository,
	monthlyRevenueRepository repository.MonthlyRevenueRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		snapshotRepository:       snapshotRepository,
		monthlyRevenueRepository: monthlyRevenueRepository,
		settings:                 cfg.Dashboard,
		now:                      time.Now,
	}
}

// WithClock substitui o relógio usado como "hoje" nos cálculos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetDashboard(ctx context.Context, request DashboardRequest) (*domain.DashboardReport, error) {
	logger := log.ForContext(ctx)

	if err := request.Period.Validate(s.settings.MaxCustomRangeDays); err != nil {
		logger.WithError(err).Warn("dashboard: período inválido")
		return nil, err
	}

	topN := request.TopN
	if topN <= 0 {
		topN = s.settings.DefaultTopN
	}

	snapshot, err := s.snapshotRepository.LoadSnapshot(ctx)
	if err != nil {
		logger.WithError(err).Error("dashboard: erro ao carregar snapshot")
		return nil, NewReportingError(ErrSnapshotUnavailable, CodeSnapshotFailed, err.Error())
	}

	report := ComputeDashboard(snapshot, request.Period, request.Filters, topN, s.now())

	logger.WithFields(log.Fields{
		"view":     request.Period.Mode,
		"bookings": report.KPIs.BookingsCount,
		"sales":    report.KPIs.SalesCount,
	}).Debug("dashboard: painel recalculado")

	return report, nil
}

func (s *Service) GetForecast(ctx context.Context, request ForecastRequest) (*domain.Forecast, error) {
	logger := log.ForContext(ctx)

	percent := s.settings.DefaultGrowthPercent
	if request.GrowthPercent != nil {
		percent = *request.GrowthPercent
	}

	growth, err := NewGrowthTarget(percent, s.settings.GrowthStep)
	if err != nil {
		return nil, err
	}

	now := s.now()

	// A base é o faturamento mensal do ano anterior
	baseline, err := s.monthlyRevenueRepository.GetBaseline(now.Year() - 1)
	if err != nil {
		logger.WithError(err).Error("forecast: erro ao carregar base histórica")
		return nil, NewReportingError(ErrBaselineUnavailable, CodeBaselineFailed, err.Error())
	}

	snapshot, err := s.snapshotRepository.LoadSnapshot(ctx)
	if err != nil {
		logger.WithError(err).Error("forecast: erro ao carregar snapshot")
		return nil, NewReportingError(ErrSnapshotUnavailable, CodeSnapshotFailed, err.Error())
	}

	forecast := ComputeForecast(snapshot, ForecastInput{
		Baseline: baseline,
		Growth:   growth,
		Filters:  request.Filters,
		Now:      now,
	})

	return &forecast, nil
}

// ComputeDashboard recalcula o painel inteiro a partir de um snapshot. Mesma entrada, mesma saída.
func ComputeDashboard(
	snapshot *domain.Snapshot,
	period Period,
	filters domain.DashboardFilters,
	topN int,
	now time.Time,
) *domain.DashboardReport {
	catalog := NewCatalog(snapshot)
	records := ApplyFilters(snapshot, filters, period, catalog)

	return &domain.DashboardReport{
		Period:       period.Info(),
		Filters:      filters,
		KPIs:         ComputeKPIs(records, filters, catalog),
		TimeSeries:   BuildTimeSeries(records.Bookings, period, catalog),
		Leaderboards: BuildLeaderboards(records, period, filters, catalog, topN),
		GeneratedAt:  now,
	}
}
