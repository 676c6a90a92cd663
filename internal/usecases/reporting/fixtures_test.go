package reporting

import (
	"time"

	"github.com/vfg2006/salon-manager-api/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.Local)
}

// salonSnapshot monta um salão pequeno com movimento em fevereiro e março de 2024.
//
// Março (sem filtros): B1 100 + B2 130 (80 principal + 50 adicional) + B4 45 em atendimentos,
// SA1 60 + SA2 25 em vendas. B3 está cancelado.
func salonSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Services: []domain.ServiceCatalogEntry{
			{ID: "S1", Name: "Corte", Price: 100, DurationMinutes: 60},
			{ID: "S2", Name: "Escova", Price: 50, DurationMinutes: 30},
			{ID: "S3", Name: "Manicure", Price: 40, DurationMinutes: 45},
		},
		Providers: []domain.Provider{
			{ID: "P1", Name: "Ana", CommissionRate: 0.5},
			{ID: "P2", Name: "Bia", CommissionRate: 0.4},
		},
		Partners: []domain.Partner{
			{ID: "PA1", Name: "Loja Parceira"},
		},
		Campaigns: []domain.Campaign{
			{ID: "C1", PartnerID: "PA1", CouponCode: "PARC10", UseCount: 7},
			{ID: "C2", CouponCode: ""},
		},
		Customers: []domain.Customer{
			{ID: "CU1", Name: "Maria", Status: domain.CustomerStatusNew, AcquisitionChannel: "instagram", RegistrationDate: "2024-03-02", AssignedProviderID: "P1"},
			{ID: "CU2", Name: "Joana", Status: domain.CustomerStatusRegular, RegistrationDate: "2024-02-10", AssignedProviderID: "P2"},
			{ID: "CU3", Name: "Lúcia", Status: domain.CustomerStatusNew, AcquisitionChannel: "google", RegistrationDate: "2024-03-15"},
		},
		Bookings: []domain.Booking{
			{ID: "B1", CustomerID: "CU1", ProviderID: "P1", ServiceID: "S1", Date: "2024-03-05", Time: "10:00", Status: domain.BookingStatusCompleted},
			{
				ID: "B2", CustomerID: "CU2", ProviderID: "P2", ServiceID: "S1", Date: "2024-03-05", Time: "14:30",
				Status:             domain.BookingStatusCompleted,
				PricePaid:          floatPtr(80),
				CouponCode:         stringPtr("PARC10"),
				AdditionalServices: []domain.AdditionalService{{ServiceID: "S2", ProviderID: "P1"}},
			},
			{ID: "B3", CustomerID: "CU1", ProviderID: "P1", ServiceID: "S3", Date: "2024-03-10", Time: "09:00", Status: domain.BookingStatusCancelled},
			{
				ID: "B4", CustomerID: "CU3", ProviderID: "P2", ServiceID: "S3", Date: "2024-03-10", Time: "09:15",
				Status:                 domain.BookingStatusConfirmed,
				BookedPrice:            floatPtr(45),
				CommissionRateSnapshot: floatPtr(0.3),
			},
			{ID: "B5", CustomerID: "CU2", ProviderID: "P1", ServiceID: "S2", Date: "2024-02-20", Time: "11:00", Status: domain.BookingStatusCompleted},
		},
		Sales: []domain.Sale{
			{ID: "SA1", CustomerID: "CU1", Date: "2024-03-06", TotalAmount: 60, Items: []domain.SaleItem{{ProductID: "PR1", Quantity: 2, UnitPrice: 30}}},
			{ID: "SA2", CustomerID: "CU2", Date: "2024-03-20", TotalAmount: 25, Items: []domain.SaleItem{{ProductID: "PR2", Quantity: 1, UnitPrice: 25}}},
			{ID: "SA3", CustomerID: "CU3", Date: "2024-02-01", TotalAmount: 10, Items: []domain.SaleItem{{ProductID: "PR1", Quantity: 1, UnitPrice: 10}}},
		},
	}
}

func marchPeriod() Period {
	return NewPeriod(domain.ViewModeMonth, day(2024, time.March, 15))
}

func bookingIDs(bookings []domain.Booking) []string {
	ids := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		ids = append(ids, booking.ID)
	}
	return ids
}

func saleIDs(sales []domain.Sale) []string {
	ids := make([]string, 0, len(sales))
	for _, sale := range sales {
		ids = append(ids, sale.ID)
	}
	return ids
}
