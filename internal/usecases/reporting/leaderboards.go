package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

// UnknownChannelLabel identifica clientes cadastrados sem canal de aquisição
const UnknownChannelLabel = "Não informado"

var weekdayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// transaction é uma visita do cliente: um atendimento ou uma venda
type transaction struct {
	customerID string
	amount     decimal.Decimal
}

// couponBooking é um atendimento com cupom já resolvido para a campanha
type couponBooking struct {
	campaign *domain.Campaign
	revenue  decimal.Decimal
}

type weekdayBooking struct {
	weekday  time.Weekday
	duration int
	amount   decimal.Decimal
}

// BuildLeaderboards monta todos os rankings do painel sobre os registros filtrados
func BuildLeaderboards(
	records FilteredRecords,
	period Period,
	filters domain.DashboardFilters,
	catalog *Catalog,
	topN int,
) domain.Leaderboards {
	items := flattenLineItems(records.Bookings, catalog)

	providersByRevenue, providersByCount := rankProviders(items, catalog)
	servicesByRevenue, servicesByCount := rankServices(items, catalog)
	customersBySpend, customersByVisits, customersByTicket := rankCustomers(records, catalog)
	campaignsByUsage, campaignsByRevenue := rankCampaigns(records.Bookings, catalog)

	return domain.Leaderboards{
		ProvidersByRevenue:       TopN(providersByRevenue, topN),
		ProvidersByCount:         TopN(providersByCount, topN),
		ServicesByRevenue:        TopN(servicesByRevenue, topN),
		ServicesByCount:          TopN(servicesByCount, topN),
		CustomersBySpend:         TopN(customersBySpend, topN),
		CustomersByVisits:        TopN(customersByVisits, topN),
		CustomersByAverageTicket: TopN(customersByTicket, topN),
		CampaignsByUsage:         TopN(campaignsByUsage, topN),
		CampaignsByRevenue:       TopN(campaignsByRevenue, topN),
		PartnersByRevenue:        TopN(rankPartners(records.Bookings, catalog), topN),
		Channels:                 TopN(rankChannels(period, filters, catalog), topN),
		PeakHours:                rankPeakHours(records.Bookings),
		Weekdays:                 rankWeekdays(records.Bookings, catalog),
	}
}

// RankProvidersByRevenue ordena os profissionais pelo faturamento dos itens que realizaram
func RankProvidersByRevenue(bookings []domain.Booking, catalog *Catalog) []domain.ProviderPerformance {
	byRevenue, _ := rankProviders(flattenLineItems(bookings, catalog), catalog)
	return byRevenue
}

func flattenLineItems(bookings []domain.Booking, catalog *Catalog) []LineItem {
	items := make([]LineItem, 0, len(bookings))
	for i := range bookings {
		items = append(items, LineItems(&bookings[i], catalog)...)
	}
	return items
}

func rankProviders(items []LineItem, catalog *Catalog) ([]domain.ProviderPerformance, []domain.ProviderPerformance) {
	byProvider := func(item LineItem) (string, bool) { return item.ProviderID, true }

	revenue := GroupBy(items, byProvider, func(item LineItem) decimal.Decimal { return item.Price }, catalog.ProviderOrder())
	commission := make(map[string]decimal.Decimal)
	for _, group := range GroupBy(items, byProvider, LineItem.Commission, catalog.ProviderOrder()) {
		commission[group.Key] = group.Total
	}

	toPerformance := func(groups []Group[string]) []domain.ProviderPerformance {
		result := make([]domain.ProviderPerformance, 0, len(groups))
		for _, group := range groups {
			result = append(result, domain.ProviderPerformance{
				ProviderID: group.Key,
				Name:       catalog.ProviderName(group.Key),
				Revenue:    group.Value(),
				Commission: commission[group.Key].InexactFloat64(),
				Count:      group.Count,
			})
		}
		return result
	}

	return toPerformance(SortByTotal(revenue)), toPerformance(SortByCount(revenue))
}

func rankServices(items []LineItem, catalog *Catalog) ([]domain.ServicePerformance, []domain.ServicePerformance) {
	groups := GroupBy(
		items,
		func(item LineItem) (string, bool) { return item.ServiceID, true },
		func(item LineItem) decimal.Decimal { return item.Price },
		catalog.ServiceOrder(),
	)

	toPerformance := func(groups []Group[string]) []domain.ServicePerformance {
		result := make([]domain.ServicePerformance, 0, len(groups))
		for _, group := range groups {
			result = append(result, domain.ServicePerformance{
				ServiceID: group.Key,
				Name:      catalog.ServiceName(group.Key),
				Revenue:   group.Value(),
				Count:     group.Count,
			})
		}
		return result
	}

	return toPerformance(SortByTotal(groups)), toPerformance(SortByCount(groups))
}

func rankCustomers(records FilteredRecords, catalog *Catalog) ([]domain.CustomerRanking, []domain.CustomerRanking, []domain.CustomerRanking) {
	transactions := make([]transaction, 0, len(records.Bookings)+len(records.Sales))
	for i := range records.Bookings {
		booking := &records.Bookings[i]
		if booking.IsCancelled() {
			continue
		}
		transactions = append(transactions, transaction{
			customerID: booking.CustomerID,
			amount:     BookingAmounts(booking, catalog).Faturamento,
		})
	}
	for _, sale := range records.Sales {
		transactions = append(transactions, transaction{
			customerID: sale.CustomerID,
			amount:     decimal.NewFromFloat(sale.TotalAmount),
		})
	}

	groups := GroupBy(
		transactions,
		func(t transaction) (string, bool) { return t.customerID, t.customerID != "" },
		func(t transaction) decimal.Decimal { return t.amount },
		catalog.CustomerOrder(),
	)

	toRanking := func(groups []Group[string]) []domain.CustomerRanking {
		result := make([]domain.CustomerRanking, 0, len(groups))
		for _, group := range groups {
			result = append(result, domain.CustomerRanking{
				CustomerID:    group.Key,
				Name:          catalog.CustomerName(group.Key),
				TotalSpent:    group.Value(),
				Visits:        group.Count,
				AverageTicket: group.Average().InexactFloat64(),
			})
		}
		return result
	}

	byTicket := sortDesc(groups, func(a, b Group[string]) int { return a.Average().Cmp(b.Average()) })

	return toRanking(SortByTotal(groups)), toRanking(SortByCount(groups)), toRanking(byTicket)
}

// resolveCouponBookings associa cada atendimento com cupom à campanha dona do cupom.
// A atribuição considera apenas o preço do serviço principal.
func resolveCouponBookings(bookings []domain.Booking, catalog *Catalog) []couponBooking {
	resolved := make([]couponBooking, 0)
	for i := range bookings {
		booking := &bookings[i]
		if booking.IsCancelled() || !booking.HasCoupon() {
			continue
		}

		campaign, ok := catalog.CampaignByCoupon(*booking.CouponCode)
		if !ok {
			continue
		}

		resolved = append(resolved, couponBooking{
			campaign: campaign,
			revenue:  MainItemPrice(booking, catalog),
		})
	}
	return resolved
}

func rankCampaigns(bookings []domain.Booking, catalog *Catalog) ([]domain.CampaignPerformance, []domain.CampaignPerformance) {
	groups := GroupBy(
		resolveCouponBookings(bookings, catalog),
		func(b couponBooking) (string, bool) { return b.campaign.ID, true },
		func(b couponBooking) decimal.Decimal { return b.revenue },
		catalog.CampaignOrder(),
	)

	toPerformance := func(groups []Group[string]) []domain.CampaignPerformance {
		result := make([]domain.CampaignPerformance, 0, len(groups))
		for _, group := range groups {
			performance := domain.CampaignPerformance{
				CampaignID: group.Key,
				Uses:       group.Count,
				Revenue:    group.Value(),
			}
			if campaign, ok := catalog.Campaign(group.Key); ok {
				performance.CouponCode = campaign.CouponCode
				performance.TotalUseCount = campaign.UseCount
			}
			result = append(result, performance)
		}
		return result
	}

	return toPerformance(SortByCount(groups)), toPerformance(SortByTotal(groups))
}

func rankPartners(bookings []domain.Booking, catalog *Catalog) []domain.PartnerRevenue {
	groups := GroupBy(
		resolveCouponBookings(bookings, catalog),
		func(b couponBooking) (string, bool) { return b.campaign.PartnerID, b.campaign.PartnerID != "" },
		func(b couponBooking) decimal.Decimal { return b.revenue },
		catalog.PartnerOrder(),
	)

	sorted := SortByTotal(groups)
	result := make([]domain.PartnerRevenue, 0, len(sorted))
	for _, group := range sorted {
		result = append(result, domain.PartnerRevenue{
			PartnerID: group.Key,
			Name:      catalog.PartnerName(group.Key),
			Revenue:   group.Value(),
			Bookings:  group.Count,
		})
	}
	return result
}

// rankChannels conta clientes cadastrados dentro do período por canal de aquisição
func rankChannels(period Period, filters domain.DashboardFilters, catalog *Catalog) []domain.ChannelAcquisition {
	customers := make([]*domain.Customer, 0)
	for _, id := range catalog.CustomerOrder() {
		customer, _ := catalog.Customer(id)
		if customer.RegistrationDate == "" || !period.Contains(customer.RegistrationDate) {
			continue
		}
		if filters.Channel != "" && customer.AcquisitionChannel != filters.Channel {
			continue
		}
		customers = append(customers, customer)
	}

	groups := SortByCount(GroupBy(
		customers,
		func(c *domain.Customer) (string, bool) {
			if c.AcquisitionChannel == "" {
				return UnknownChannelLabel, true
			}
			return c.AcquisitionChannel, true
		},
		nil,
		nil,
	))

	result := make([]domain.ChannelAcquisition, 0, len(groups))
	for _, group := range groups {
		result = append(result, domain.ChannelAcquisition{
			Channel:   group.Key,
			Customers: group.Count,
		})
	}
	return result
}

// rankPeakHours agrupa por hora do atendimento, em ordem cronológica
func rankPeakHours(bookings []domain.Booking) []domain.HourlyPeak {
	groups := GroupBy(
		bookings,
		func(b domain.Booking) (int, bool) {
			if b.IsCancelled() {
				return 0, false
			}
			hour, err := utils.ParseHour(b.Time)
			return hour, err == nil
		},
		nil,
		nil,
	)

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})

	result := make([]domain.HourlyPeak, 0, len(groups))
	for _, group := range groups {
		result = append(result, domain.HourlyPeak{
			Hour:  group.Key,
			Label: hourLabel(group.Key),
			Count: group.Count,
		})
	}
	return result
}

// rankWeekdays agrupa por dia da semana de domingo a sábado, apenas dias com atendimentos
func rankWeekdays(bookings []domain.Booking, catalog *Catalog) []domain.WeekdayStat {
	records := make([]weekdayBooking, 0, len(bookings))
	for i := range bookings {
		booking := &bookings[i]
		if booking.IsCancelled() {
			continue
		}

		date, err := utils.ParseLocalNoonDate(booking.Date)
		if err != nil {
			continue
		}

		duration := catalog.ServiceDuration(booking.ServiceID)
		for _, additional := range booking.AdditionalServices {
			duration += catalog.ServiceDuration(additional.ServiceID)
		}

		records = append(records, weekdayBooking{
			weekday:  date.Weekday(),
			duration: duration,
			amount:   BookingAmounts(booking, catalog).Faturamento,
		})
	}

	week := []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}

	durations := make(map[time.Weekday]int)
	for _, record := range records {
		durations[record.weekday] += record.duration
	}

	groups := GroupBy(
		records,
		func(r weekdayBooking) (time.Weekday, bool) { return r.weekday, true },
		func(r weekdayBooking) decimal.Decimal { return r.amount },
		week,
	)

	result := make([]domain.WeekdayStat, 0, len(groups))
	for _, group := range groups {
		result = append(result, domain.WeekdayStat{
			Weekday:         group.Key,
			Label:           weekdayLabels[group.Key],
			Count:           group.Count,
			AverageDuration: int(math.Round(utils.SafeDivide(float64(durations[group.Key]), float64(group.Count)))),
			AverageTicket:   group.Average().InexactFloat64(),
		})
	}
	return result
}
