package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

func flatBaseline(value float64) [12]float64 {
	var baseline [12]float64
	for i := range baseline {
		baseline[i] = value
	}
	return baseline
}

func TestGrowthTarget(t *testing.T) {
	t.Run("Padrão é 20% com passo de 5", func(t *testing.T) {
		growth := DefaultGrowthTarget()

		assert.Equal(t, 20.0, growth.Percent())
		assert.Equal(t, 25.0, growth.Increase().Percent())
		assert.Equal(t, 15.0, growth.Decrease().Percent())
	})

	t.Run("Redução tem piso em zero", func(t *testing.T) {
		growth, err := NewGrowthTarget(3, 5)
		require.NoError(t, err)

		assert.Equal(t, 0.0, growth.Decrease().Percent())
		assert.Equal(t, 0.0, growth.Decrease().Decrease().Percent())
	})

	t.Run("Passo inválido usa o padrão", func(t *testing.T) {
		growth, err := NewGrowthTarget(10, 0)
		require.NoError(t, err)

		assert.Equal(t, 15.0, growth.Increase().Percent())
	})

	t.Run("Percentual negativo é rejeitado", func(t *testing.T) {
		_, err := NewGrowthTarget(-1, 5)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidGrowth))

		var reportingErr *ReportingError
		require.True(t, errors.As(err, &reportingErr))
		assert.Equal(t, CodeInvalidGrowth, reportingErr.Code)
	})
}

func TestBuildForecast(t *testing.T) {
	var actuals [12]decimal.Decimal
	actuals[0] = decimal.NewFromInt(110)
	actuals[1] = decimal.NewFromInt(90)

	forecast := buildForecast(flatBaseline(100), actuals, DefaultGrowthTarget(), 2024, 1, domain.DashboardFilters{})

	require.Len(t, forecast.Points, 12)
	assert.Equal(t, 120.0, forecast.CurrentTarget)
	assert.Equal(t, 90.0, forecast.CurrentActual)
	assert.Equal(t, 75.0, forecast.PercentageAchieved)
	assert.Equal(t, 30.0, forecast.GapToTarget)

	t.Run("Meses futuros ficam sem realizado", func(t *testing.T) {
		require.NotNil(t, forecast.Points[0].Actual)
		assert.Equal(t, 110.0, *forecast.Points[0].Actual)
		require.NotNil(t, forecast.Points[1].Actual)
		for _, point := range forecast.Points[2:] {
			assert.Nil(t, point.Actual, point.MonthLabel)
		}
	})

	t.Run("Meta é base × (1 + crescimento)", func(t *testing.T) {
		for _, point := range forecast.Points {
			assert.Equal(t, 120.0, point.Target)
			assert.Equal(t, 100.0, point.Baseline)
		}
		assert.Equal(t, "Fev", forecast.Points[1].MonthLabel)
	})

	t.Run("Meta zero não divide", func(t *testing.T) {
		empty := buildForecast([12]float64{}, actuals, DefaultGrowthTarget(), 2024, 1, domain.DashboardFilters{})

		assert.Equal(t, 0.0, empty.PercentageAchieved)
		assert.Equal(t, -90.0, empty.GapToTarget)
	})
}

func TestComputeForecast(t *testing.T) {
	snapshot := salonSnapshot()

	forecast := ComputeForecast(snapshot, ForecastInput{
		Baseline: flatBaseline(100),
		Growth:   DefaultGrowthTarget(),
		Filters:  domain.DashboardFilters{CampaignID: "C1", PartnerID: "PA1"},
		Now:      time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local),
	})

	assert.Equal(t, 2024, forecast.Year)
	assert.Equal(t, 2, forecast.CurrentMonth)
	assert.Equal(t, domain.DashboardFilters{}, forecast.Filters)

	// Campanha e parceiro são descartados: o realizado cobre todo o movimento
	assert.Equal(t, 0.0, *forecast.Points[0].Actual)
	assert.Equal(t, 60.0, *forecast.Points[1].Actual)
	assert.Equal(t, 360.0, *forecast.Points[2].Actual)
	assert.Nil(t, forecast.Points[3].Actual)
	assert.Equal(t, 300.0, forecast.PercentageAchieved)
	assert.Equal(t, -240.0, forecast.GapToTarget)

	t.Run("Filtro de profissional vale para o realizado", func(t *testing.T) {
		filtered := ComputeForecast(snapshot, ForecastInput{
			Baseline: flatBaseline(100),
			Growth:   DefaultGrowthTarget(),
			Filters:  domain.DashboardFilters{ProviderID: "P1"},
			Now:      time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local),
		})

		// B1 100 + SA1 60 em março, B5 50 em fevereiro
		assert.Equal(t, 50.0, *filtered.Points[1].Actual)
		assert.Equal(t, 160.0, *filtered.Points[2].Actual)
	})
}
