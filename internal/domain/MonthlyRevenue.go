package domain

import "time"

// MonthlyRevenueEntry representa o faturamento fechado de um mês, base histórica da previsão
type MonthlyRevenueEntry struct {
	ID              int64     `json:"id"`
	Year            int       `json:"year"`
	Month           int       `json:"month"` // 1-12
	Revenue         float64   `json:"revenue"`
	BookingRevenue  float64   `json:"booking_revenue"`
	ProductRevenue  float64   `json:"product_revenue"`
	CommissionTotal float64   `json:"commission_total"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
