package domain

import "time"

type ViewMode string

const (
	ViewModeDay    ViewMode = "day"
	ViewModeMonth  ViewMode = "month"
	ViewModeYear   ViewMode = "year"
	ViewModeCustom ViewMode = "custom"
)

// DashboardFilters são os filtros dimensionais do painel. String vazia significa filtro inativo.
type DashboardFilters struct {
	ProviderID string `json:"provider_id,omitempty"`
	ServiceID  string `json:"service_id,omitempty"`
	CampaignID string `json:"campaign_id,omitempty"`
	PartnerID  string `json:"partner_id,omitempty"`
	ProductID  string `json:"product_id,omitempty"`
	Channel    string `json:"channel,omitempty"`
}

// PeriodInfo descreve o período efetivamente calculado e os passos de navegação
type PeriodInfo struct {
	View      ViewMode `json:"view"`
	Reference string   `json:"reference,omitempty"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Previous  string   `json:"previous,omitempty"`
	Next      string   `json:"next,omitempty"`
}

// TimeBucket é um ponto da série temporal do painel
type TimeBucket struct {
	Label       string  `json:"label"`
	Count       int     `json:"count"`
	Faturamento float64 `json:"faturamento"`
	Receita     float64 `json:"receita"`
}

// DashboardKPIs reúne os indicadores escalares do período filtrado
type DashboardKPIs struct {
	BookingsCount     int     `json:"bookings_count"`
	SalesCount        int     `json:"sales_count"`
	UniqueCustomers   int     `json:"unique_customers"`
	ServicesPerformed int     `json:"services_performed"`
	NewCustomers      int     `json:"new_customers"`
	ProductsSold      int     `json:"products_sold"`
	BookingRevenue    float64 `json:"booking_revenue"`
	ProductRevenue    float64 `json:"product_revenue"`
	TotalRevenue      float64 `json:"total_revenue"`
	CommissionTotal   float64 `json:"commission_total"`
	NetRevenue        float64 `json:"net_revenue"`
	AverageTicket     float64 `json:"average_ticket"`
}

type ProviderPerformance struct {
	ProviderID string  `json:"provider_id"`
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
	Count      int     `json:"count"`
}

type ServicePerformance struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Count     int     `json:"count"`
}

type CustomerRanking struct {
	CustomerID    string  `json:"customer_id"`
	Name          string  `json:"name"`
	TotalSpent    float64 `json:"total_spent"`
	Visits        int     `json:"visits"`
	AverageTicket float64 `json:"average_ticket"`
}

// CampaignPerformance mede o uso do cupom no período. TotalUseCount é o contador acumulado da campanha.
type CampaignPerformance struct {
	CampaignID    string  `json:"campaign_id"`
	CouponCode    string  `json:"coupon_code"`
	Uses          int     `json:"uses"`
	TotalUseCount int     `json:"total_use_count"`
	Revenue       float64 `json:"revenue"`
}

type PartnerRevenue struct {
	PartnerID string  `json:"partner_id"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Bookings  int     `json:"bookings"`
}

type ChannelAcquisition struct {
	Channel   string `json:"channel"`
	Customers int    `json:"customers"`
}

type HourlyPeak struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type WeekdayStat struct {
	Weekday         time.Weekday `json:"weekday"`
	Label           string       `json:"label"`
	Count           int          `json:"count"`
	AverageDuration int          `json:"average_duration"` // Minutos
	AverageTicket   float64      `json:"average_ticket"`
}

// Leaderboards agrupa todos os rankings do painel, um tipo por dimensão
type Leaderboards struct {
	ProvidersByRevenue       []ProviderPerformance `json:"providers_by_revenue"`
	ProvidersByCount         []ProviderPerformance `json:"providers_by_count"`
	ServicesByRevenue        []ServicePerformance  `json:"services_by_revenue"`
	ServicesByCount          []ServicePerformance  `json:"services_by_count"`
	CustomersBySpend         []CustomerRanking     `json:"customers_by_spend"`
	CustomersByVisits        []CustomerRanking     `json:"customers_by_visits"`
	CustomersByAverageTicket []CustomerRanking     `json:"customers_by_average_ticket"`
	CampaignsByUsage         []CampaignPerformance `json:"campaigns_by_usage"`
	CampaignsByRevenue       []CampaignPerformance `json:"campaigns_by_revenue"`
	PartnersByRevenue        []PartnerRevenue      `json:"partners_by_revenue"`
	Channels                 []ChannelAcquisition  `json:"channels"`
	PeakHours                []HourlyPeak          `json:"peak_hours"`
	Weekdays                 []WeekdayStat         `json:"weekdays"`
}

// DashboardReport é o resultado completo de um recálculo do painel
type DashboardReport struct {
	Period       PeriodInfo       `json:"period"`
	Filters      DashboardFilters `json:"filters"`
	KPIs         DashboardKPIs    `json:"kpis"`
	TimeSeries   []TimeBucket     `json:"time_series"`
	Leaderboards Leaderboards     `json:"leaderboards"`
	GeneratedAt  time.Time        `json:"generated_at"`
}
