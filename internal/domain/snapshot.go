package domain

import "time"

// Snapshot é a fotografia somente-leitura de todos os registros usados em um cálculo de relatório
type Snapshot struct {
	Bookings        []Booking             `json:"bookings"`
	Sales           []Sale                `json:"sales"`
	Services        []ServiceCatalogEntry `json:"services"`
	Providers       []Provider            `json:"providers"`
	Campaigns       []Campaign            `json:"campaigns"`
	Customers       []Customer            `json:"customers"`
	Partners        []Partner             `json:"partners"`
	PaymentSettings *PaymentSettings      `json:"payment_settings,omitempty"`
	LoadedAt        time.Time             `json:"loaded_at"`
}
