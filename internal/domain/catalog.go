package domain

// ServiceCatalogEntry representa um serviço oferecido pelo salão
type ServiceCatalogEntry struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Category        string  `json:"category"`
}

// Provider representa um profissional do salão
type Provider struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CommissionRate float64 `json:"commission_rate"` // Fração entre 0 e 1
	BirthDate      string  `json:"birth_date,omitempty"`
}

type Campaign struct {
	ID            string  `json:"id"`
	PartnerID     string  `json:"partner_id"`
	CouponCode    string  `json:"coupon_code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	UseCount      int     `json:"use_count"`
	MaxUses       *int    `json:"max_uses,omitempty"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type CustomerStatus string

const (
	CustomerStatusNew       CustomerStatus = "new"
	CustomerStatusRegular   CustomerStatus = "regular"
	CustomerStatusVIP       CustomerStatus = "vip"
	CustomerStatusChurnRisk CustomerStatus = "churn_risk"
)

type Customer struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	AcquisitionChannel string         `json:"acquisition_channel"`
	RegistrationDate   string         `json:"registration_date"`
	BirthDate          string         `json:"birth_date,omitempty"`
	Status             CustomerStatus `json:"status"`
	AssignedProviderID string         `json:"assigned_provider_id,omitempty"`
}

// Partner representa um parceiro comercial dono de campanhas de cupom
type Partner struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// PaymentSettings é carregado junto com o snapshot mas não participa dos cálculos
type PaymentSettings struct {
	PixKey          string   `json:"pix_key,omitempty"`
	AcceptedMethods []string `json:"accepted_methods,omitempty"`
	CardFeePercent  float64  `json:"card_fee_percent,omitempty"`
}
