package domain

// ForecastPoint é um mês da curva preditiva. Actual nulo significa mês ainda não disponível.
type ForecastPoint struct {
	Month      int      `json:"month"` // Ordinal 0-11
	MonthLabel string   `json:"month_label"`
	Baseline   float64  `json:"baseline"`
	Actual     *float64 `json:"actual"`
	Target     float64  `json:"target"`
}

// Forecast combina base histórica, realizado do ano corrente e meta de crescimento
type Forecast struct {
	Year               int              `json:"year"`
	CurrentMonth       int              `json:"current_month"`
	GrowthPercent      float64          `json:"growth_percent"`
	Points             []ForecastPoint  `json:"points"`
	CurrentActual      float64          `json:"current_actual"`
	CurrentTarget      float64          `json:"current_target"`
	PercentageAchieved float64          `json:"percentage_achieved"`
	GapToTarget        float64          `json:"gap_to_target"`
	Filters            DashboardFilters `json:"filters"`
}
