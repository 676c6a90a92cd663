package domain

import "time"

type ProviderRankingResponse struct {
	Ranking    []ProviderRankingItem `json:"ranking"`
	LastUpdate time.Time             `json:"last_update"`
}

type ProviderRankingItem struct {
	ID               int       `json:"id"`
	RunID            string    `json:"run_id"`
	ProviderID       string    `json:"provider_id"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	ProviderName     string    `json:"provider_name"`
	Revenue          float64   `json:"revenue"`
	ServicesCount    int       `json:"services_count"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
