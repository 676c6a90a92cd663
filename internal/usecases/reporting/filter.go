package reporting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// FilteredRecords são os subconjuntos de agendamentos e vendas que alimentam todos os cálculos
type FilteredRecords struct {
	Bookings []domain.Booking
	Sales    []domain.Sale
}

// ApplyFilters aplica período e filtros dimensionais aos registros do snapshot, preservando a ordem
func ApplyFilters(snapshot *domain.Snapshot, filters domain.DashboardFilters, period Period, catalog *Catalog) FilteredRecords {
	if snapshot == nil {
		return FilteredRecords{Bookings: []domain.Booking{}, Sales: []domain.Sale{}}
	}

	return FilteredRecords{
		Bookings: FilterBookings(snapshot.Bookings, filters, period.Contains, catalog),
		Sales:    FilterSales(snapshot.Sales, filters, period.Contains, catalog),
	}
}

// FilterBookings mantém os agendamentos não cancelados do período que atendem aos filtros.
// Filtro de produto esvazia o resultado: agendamentos não têm associação com produtos.
func FilterBookings(bookings []domain.Booking, filters domain.DashboardFilters, inPeriod func(string) bool, catalog *Catalog) []domain.Booking {
	filtered := make([]domain.Booking, 0)

	if filters.ProductID != "" {
		return filtered
	}

	var campaignCoupon string
	if filters.CampaignID != "" {
		campaign, ok := catalog.Campaign(filters.CampaignID)
		if !ok || campaign.CouponCode == "" {
			logrus.WithField("campaign_id", filters.CampaignID).Debug("filtro: campanha sem cupom, nenhum agendamento selecionado")
			return filtered
		}
		campaignCoupon = campaign.CouponCode
	}

	var partnerCoupons map[string]struct{}
	if filters.PartnerID != "" {
		partnerCoupons = catalog.PartnerCoupons(filters.PartnerID)
		if len(partnerCoupons) == 0 {
			return filtered
		}
	}

	for _, booking := range bookings {
		if booking.IsCancelled() {
			continue
		}

		if !inPeriod(booking.Date) {
			continue
		}

		if filters.ProviderID != "" && booking.ProviderID != filters.ProviderID {
			continue
		}

		if filters.ServiceID != "" && booking.ServiceID != filters.ServiceID {
			continue
		}

		if campaignCoupon != "" && (!booking.HasCoupon() || *booking.CouponCode != campaignCoupon) {
			continue
		}

		if partnerCoupons != nil {
			if !booking.HasCoupon() {
				continue
			}
			if _, ok := partnerCoupons[*booking.CouponCode]; !ok {
				continue
			}
		}

		filtered = append(filtered, booking)
	}

	return filtered
}

// FilterSales mantém as vendas do período que atendem aos filtros.
// Filtros de serviço, campanha ou parceiro esvaziam o resultado: vendas não carregam essas associações.
func FilterSales(sales []domain.Sale, filters domain.DashboardFilters, inPeriod func(string) bool, catalog *Catalog) []domain.Sale {
	filtered := make([]domain.Sale, 0)

	if filters.ServiceID != "" || filters.CampaignID != "" || filters.PartnerID != "" {
		return filtered
	}

	for _, sale := range sales {
		if !inPeriod(sale.Date) {
			continue
		}

		if filters.ProductID != "" && !sale.HasProduct(filters.ProductID) {
			continue
		}

		if filters.ProviderID != "" || filters.Channel != "" {
			customer, ok := catalog.Customer(sale.CustomerID)
			if !ok {
				continue
			}

			if filters.ProviderID != "" && customer.AssignedProviderID != filters.ProviderID {
				continue
			}

			if filters.Channel != "" && customer.AcquisitionChannel != filters.Channel {
				continue
			}
		}

		filtered = append(filtered, sale)
	}

	return filtered
}
