package domain

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Booking representa um atendimento agendado ou realizado no salão
type Booking struct {
	ID                     string              `json:"id"`
	CustomerID             string              `json:"customer_id"`
	ProviderID             string              `json:"provider_id"`
	ServiceID              string              `json:"service_id"`
	Date                   string              `json:"date"` // Formato yyyy-mm-dd
	Time                   string              `json:"time"` // Formato hh:mm
	Status                 BookingStatus       `json:"status"`
	PricePaid              *float64            `json:"price_paid,omitempty"`
	BookedPrice            *float64            `json:"booked_price,omitempty"`
	CommissionRateSnapshot *float64            `json:"commission_rate_snapshot,omitempty"`
	AdditionalServices     []AdditionalService `json:"additional_services,omitempty"`
	CouponCode             *string             `json:"coupon_code,omitempty"`
	DiscountAmount         *float64            `json:"discount_amount,omitempty"`
}

// AdditionalService é um serviço extra realizado no mesmo atendimento, com preço e comissão próprios
type AdditionalService struct {
	ServiceID              string   `json:"service_id"`
	ProviderID             string   `json:"provider_id"`
	BookedPrice            *float64 `json:"booked_price,omitempty"`
	CommissionRateSnapshot *float64 `json:"commission_rate_snapshot,omitempty"`
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// HasCoupon indica se o atendimento usou um cupom de campanha
func (b *Booking) HasCoupon() bool {
	return b.CouponCode != nil && *b.CouponCode != ""
}
