package reporting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const (
	DefaultGrowthPercent = 20.0
	DefaultGrowthStep    = 5.0
)

// GrowthTarget é o percentual de crescimento ajustável da meta, nunca negativo
type GrowthTarget struct {
	percent float64
	step    float64
}

func NewGrowthTarget(percent, step float64) (GrowthTarget, error) {
	if percent < 0 {
		return GrowthTarget{}, NewReportingError(ErrInvalidGrowth, CodeInvalidGrowth, "percentual negativo")
	}
	if step <= 0 {
		step = DefaultGrowthStep
	}
	return GrowthTarget{percent: percent, step: step}, nil
}

func DefaultGrowthTarget() GrowthTarget {
	return GrowthTarget{percent: DefaultGrowthPercent, step: DefaultGrowthStep}
}

func (g GrowthTarget) Increase() GrowthTarget {
	g.percent += g.step
	return g
}

// Decrease reduz um passo, com piso em zero
func (g GrowthTarget) Decrease() GrowthTarget {
	g.percent -= g.step
	if g.percent < 0 {
		g.percent = 0
	}
	return g
}

func (g GrowthTarget) Percent() float64 {
	return g.percent
}

// ForecastInput reúne tudo que o modelo preditivo precisa para um recálculo
type ForecastInput struct {
	Baseline [12]float64
	Growth   GrowthTarget
	Filters  domain.DashboardFilters
	Now      time.Time
}

// ForecastFilters remove os filtros de campanha e parceiro, que não participam do realizado
func ForecastFilters(filters domain.DashboardFilters) domain.DashboardFilters {
	filters.CampaignID = ""
	filters.PartnerID = ""
	return filters
}

// MonthlyActuals calcula o faturamento total de cada mês do ano, ignorando o período do painel
func MonthlyActuals(snapshot *domain.Snapshot, year int, filters domain.DashboardFilters, catalog *Catalog) [12]decimal.Decimal {
	var actuals [12]decimal.Decimal

	records := ApplyFilters(snapshot, filters, NewPeriod(domain.ViewModeYear, time.Date(year, time.January, 1, 12, 0, 0, 0, time.Local)), catalog)

	for month := time.January; month <= time.December; month++ {
		monthPeriod := NewPeriod(domain.ViewModeMonth, time.Date(year, month, 1, 12, 0, 0, 0, time.Local))

		monthRecords := FilteredRecords{
			Bookings: make([]domain.Booking, 0),
			Sales:    make([]domain.Sale, 0),
		}
		for _, booking := range records.Bookings {
			if monthPeriod.Contains(booking.Date) {
				monthRecords.Bookings = append(monthRecords.Bookings, booking)
			}
		}
		for _, sale := range records.Sales {
			if monthPeriod.Contains(sale.Date) {
				monthRecords.Sales = append(monthRecords.Sales, sale)
			}
		}

		actuals[month-1] = TotalRevenue(monthRecords, catalog)
	}

	return actuals
}

// ComputeForecast combina base histórica, realizado do ano corrente e meta
func ComputeForecast(snapshot *domain.Snapshot, input ForecastInput) domain.Forecast {
	catalog := NewCatalog(snapshot)
	filters := ForecastFilters(input.Filters)

	year := input.Now.Year()
	currentMonth := int(input.Now.Month()) - 1

	actuals := MonthlyActuals(snapshot, year, filters, catalog)
	return buildForecast(input.Baseline, actuals, input.Growth, year, currentMonth, filters)
}

func buildForecast(
	baseline [12]float64,
	actuals [12]decimal.Decimal,
	growth GrowthTarget,
	year int,
	currentMonth int,
	filters domain.DashboardFilters,
) domain.Forecast {
	multiplier := decimal.NewFromInt(1).Add(decimal.NewFromFloat(growth.Percent()).Div(decimal.NewFromInt(100)))

	points := make([]domain.ForecastPoint, 0, 12)
	targets := [12]decimal.Decimal{}
	for month := 0; month < 12; month++ {
		base := decimal.NewFromFloat(baseline[month])
		targets[month] = base.Mul(multiplier)

		point := domain.ForecastPoint{
			Month:      month,
			MonthLabel: MonthLabel(month),
			Baseline:   baseline[month],
			Target:     targets[month].InexactFloat64(),
		}

		// Meses futuros ficam sem valor para não desenhar queda falsa no gráfico
		if month <= currentMonth {
			actual := actuals[month].InexactFloat64()
			point.Actual = &actual
		}

		points = append(points, point)
	}

	currentTarget := targets[currentMonth]
	currentActual := actuals[currentMonth]

	percentageAchieved := decimal.Zero
	if currentTarget.GreaterThan(decimal.Zero) {
		percentageAchieved = currentActual.Div(currentTarget).Mul(decimal.NewFromInt(100))
	}

	return domain.Forecast{
		Year:               year,
		CurrentMonth:       currentMonth,
		GrowthPercent:      growth.Percent(),
		Points:             points,
		CurrentActual:      currentActual.InexactFloat64(),
		CurrentTarget:      currentTarget.InexactFloat64(),
		PercentageAchieved: percentageAchieved.InexactFloat64(),
		GapToTarget:        currentTarget.Sub(currentActual).InexactFloat64(),
		Filters:            filters,
	}
}
