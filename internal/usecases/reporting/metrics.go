package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// LineItem é uma unidade econômica de um atendimento: o serviço principal ou um adicional
type LineItem struct {
	ServiceID  string
	ProviderID string
	Price      decimal.Decimal
	Rate       decimal.Decimal
	Main       bool
}

// Commission retorna preço × taxa de comissão do item
func (l LineItem) Commission() decimal.Decimal {
	return l.Price.Mul(l.Rate)
}

// ResolveLinePrice aplica a precedência pricePaid → bookedPrice → preço de catálogo → 0
func ResolveLinePrice(pricePaid, bookedPrice *float64, service *domain.ServiceCatalogEntry) decimal.Decimal {
	if pricePaid != nil {
		return decimal.NewFromFloat(*pricePaid)
	}

	if bookedPrice != nil {
		return decimal.NewFromFloat(*bookedPrice)
	}

	if service != nil {
		return decimal.NewFromFloat(service.Price)
	}

	return decimal.Zero
}

// ResolveCommissionRate aplica a precedência taxa congelada no agendamento → taxa atual do profissional → 0
func ResolveCommissionRate(snapshot *float64, provider *domain.Provider) decimal.Decimal {
	if snapshot != nil {
		return decimal.NewFromFloat(*snapshot)
	}

	if provider != nil {
		return decimal.NewFromFloat(provider.CommissionRate)
	}

	return decimal.Zero
}

// LineItems decompõe o atendimento no item principal seguido dos adicionais, cada um com preço e taxa próprios.
// Atendimentos cancelados não geram itens.
func LineItems(booking *domain.Booking, catalog *Catalog) []LineItem {
	if booking == nil || booking.IsCancelled() {
		return nil
	}

	items := make([]LineItem, 0, 1+len(booking.AdditionalServices))

	service, _ := catalog.Service(booking.ServiceID)
	provider, _ := catalog.Provider(booking.ProviderID)
	items = append(items, LineItem{
		ServiceID:  booking.ServiceID,
		ProviderID: booking.ProviderID,
		Price:      ResolveLinePrice(booking.PricePaid, booking.BookedPrice, service),
		Rate:       ResolveCommissionRate(booking.CommissionRateSnapshot, provider),
		Main:       true,
	})

	for _, additional := range booking.AdditionalServices {
		service, _ := catalog.Service(additional.ServiceID)
		provider, _ := catalog.Provider(additional.ProviderID)
		items = append(items, LineItem{
			ServiceID:  additional.ServiceID,
			ProviderID: additional.ProviderID,
			Price:      ResolveLinePrice(nil, additional.BookedPrice, service),
			Rate:       ResolveCommissionRate(additional.CommissionRateSnapshot, provider),
		})
	}

	return items
}

// MainItemPrice retorna apenas o preço do serviço principal, usado na atribuição de campanhas
func MainItemPrice(booking *domain.Booking, catalog *Catalog) decimal.Decimal {
	items := LineItems(booking, catalog)
	if len(items) == 0 {
		return decimal.Zero
	}
	return items[0].Price
}

// Amounts acumula faturamento e comissão. A receita é sempre derivada.
type Amounts struct {
	Faturamento     decimal.Decimal
	CommissionTotal decimal.Decimal
}

func (a Amounts) Receita() decimal.Decimal {
	return a.Faturamento.Sub(a.CommissionTotal)
}

func (a Amounts) Add(other Amounts) Amounts {
	return Amounts{
		Faturamento:     a.Faturamento.Add(other.Faturamento),
		CommissionTotal: a.CommissionTotal.Add(other.CommissionTotal),
	}
}

// BookingAmounts soma faturamento e comissão de todos os itens do atendimento
func BookingAmounts(booking *domain.Booking, catalog *Catalog) Amounts {
	amounts := Amounts{}
	for _, item := range LineItems(booking, catalog) {
		amounts.Faturamento = amounts.Faturamento.Add(item.Price)
		amounts.CommissionTotal = amounts.CommissionTotal.Add(item.Commission())
	}
	return amounts
}

// BookingMetrics é a visão em float dos valores de um atendimento
type BookingMetrics struct {
	Faturamento     float64 `json:"faturamento"`
	CommissionTotal float64 `json:"commission_total"`
	Receita         float64 `json:"receita"`
}

func ComputeBookingMetrics(booking *domain.Booking, catalog *Catalog) BookingMetrics {
	amounts := BookingAmounts(booking, catalog)
	return BookingMetrics{
		Faturamento:     amounts.Faturamento.InexactFloat64(),
		CommissionTotal: amounts.CommissionTotal.InexactFloat64(),
		Receita:         amounts.Receita().InexactFloat64(),
	}
}

// ComputeKPIs calcula os indicadores escalares sobre os registros já filtrados
func ComputeKPIs(records FilteredRecords, filters domain.DashboardFilters, catalog *Catalog) domain.DashboardKPIs {
	bookingTotals := Amounts{}
	customers := make(map[string]struct{})
	servicesPerformed := 0
	bookingsCount := 0

	for i := range records.Bookings {
		booking := &records.Bookings[i]
		if booking.IsCancelled() {
			continue
		}

		bookingsCount++
		bookingTotals = bookingTotals.Add(BookingAmounts(booking, catalog))
		customers[booking.CustomerID] = struct{}{}
		servicesPerformed += 1 + len(booking.AdditionalServices)
	}

	productRevenue := decimal.Zero
	productsSold := 0
	for _, sale := range records.Sales {
		productRevenue = productRevenue.Add(decimal.NewFromFloat(sale.TotalAmount))
		for _, item := range sale.Items {
			if filters.ProductID != "" && item.ProductID != filters.ProductID {
				continue
			}
			productsSold += item.Quantity
		}
	}

	newCustomers := 0
	for id := range customers {
		customer, ok := catalog.Customer(id)
		if !ok || customer.Status != domain.CustomerStatusNew {
			continue
		}
		if filters.Channel != "" && customer.AcquisitionChannel != filters.Channel {
			continue
		}
		newCustomers++
	}

	totalRevenue := bookingTotals.Faturamento.Add(productRevenue)
	transactions := bookingsCount + len(records.Sales)

	averageTicket := decimal.Zero
	if transactions > 0 {
		averageTicket = totalRevenue.Div(decimal.NewFromInt(int64(transactions)))
	}

	return domain.DashboardKPIs{
		BookingsCount:     bookingsCount,
		SalesCount:        len(records.Sales),
		UniqueCustomers:   len(customers),
		ServicesPerformed: servicesPerformed,
		NewCustomers:      newCustomers,
		ProductsSold:      productsSold,
		BookingRevenue:    bookingTotals.Faturamento.InexactFloat64(),
		ProductRevenue:    productRevenue.InexactFloat64(),
		TotalRevenue:      totalRevenue.InexactFloat64(),
		CommissionTotal:   bookingTotals.CommissionTotal.InexactFloat64(),
		NetRevenue:        totalRevenue.Sub(bookingTotals.CommissionTotal).InexactFloat64(),
		AverageTicket:     averageTicket.InexactFloat64(),
	}
}

// TotalRevenue soma o faturamento dos atendimentos e o total das vendas
func TotalRevenue(records FilteredRecords, catalog *Catalog) decimal.Decimal {
	total := decimal.Zero
	for i := range records.Bookings {
		total = total.Add(BookingAmounts(&records.Bookings[i], catalog).Faturamento)
	}
	for _, sale := range records.Sales {
		total = total.Add(decimal.NewFromFloat(sale.TotalAmount))
	}
	return total
}
