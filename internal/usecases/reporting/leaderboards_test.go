package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

func marchLeaderboards(t *testing.T, filters domain.DashboardFilters, topN int) domain.Leaderboards {
	t.Helper()

	snapshot := salonSnapshot()
	catalog := NewCatalog(snapshot)
	records := ApplyFilters(snapshot, filters, marchPeriod(), catalog)

	return BuildLeaderboards(records, marchPeriod(), filters, catalog, topN)
}

func TestBuildLeaderboards_Profissionais(t *testing.T) {
	boards := marchLeaderboards(t, domain.DashboardFilters{}, 10)

	assert.Equal(t, []domain.ProviderPerformance{
		{ProviderID: "P1", Name: "Ana", Revenue: 150, Commission: 75, Count: 2},
		{ProviderID: "P2", Name: "Bia", Revenue: 125, Commission: 45.5, Count: 2},
	}, boards.ProvidersByRevenue)

	// Empate em contagem mantém a ordem de cadastro
	require.Len(t, boards.ProvidersByCount, 2)
	assert.Equal(t, "P1", boards.ProvidersByCount[0].ProviderID)
}

func TestBuildLeaderboards_Servicos(t *testing.T) {
	boards := marchLeaderboards(t, domain.DashboardFilters{}, 10)

	assert.Equal(t, []domain.ServicePerformance{
		{ServiceID: "S1", Name: "Corte", Revenue: 180, Count: 2},
		{ServiceID: "S2", Name: "Escova", Revenue: 50, Count: 1},
		{ServiceID: "S3", Name: "Manicure", Revenue: 45, Count: 1},
	}, boards.ServicesByRevenue)
	assert.Equal(t, "S1", boards.ServicesByCount[0].ServiceID)
}

func TestBuildLeaderboards_Clientes(t *testing.T) {
	boards := marchLeaderboards(t, domain.DashboardFilters{}, 10)

	assert.Equal(t, []domain.CustomerRanking{
		{CustomerID: "CU1", Name: "Maria", TotalSpent: 160, Visits: 2, AverageTicket: 80},
		{CustomerID: "CU2", Name: "Joana", TotalSpent: 155, Visits: 2, AverageTicket: 77.5},
		{CustomerID: "CU3", Name: "Lúcia", TotalSpent: 45, Visits: 1, AverageTicket: 45},
	}, boards.CustomersBySpend)
	assert.Equal(t, []string{"CU1", "CU2", "CU3"}, []string{
		boards.CustomersByVisits[0].CustomerID,
		boards.CustomersByVisits[1].CustomerID,
		boards.CustomersByVisits[2].CustomerID,
	})
	assert.Equal(t, "CU1", boards.CustomersByAverageTicket[0].CustomerID)
}

func TestBuildLeaderboards_CampanhasEParceiros(t *testing.T) {
	boards := marchLeaderboards(t, domain.DashboardFilters{}, 10)

	// Só o serviço principal conta para a campanha, o adicional de 50 fica de fora.
	// Uses conta o período e TotalUseCount repete o contador acumulado da campanha.
	assert.Equal(t, []domain.CampaignPerformance{
		{CampaignID: "C1", CouponCode: "PARC10", Uses: 1, TotalUseCount: 7, Revenue: 80},
	}, boards.CampaignsByUsage)
	assert.Equal(t, boards.CampaignsByUsage, boards.CampaignsByRevenue)
	assert.Equal(t, []domain.PartnerRevenue{
		{PartnerID: "PA1", Name: "Loja Parceira", Revenue: 80, Bookings: 1},
	}, boards.PartnersByRevenue)

	filtered := marchLeaderboards(t, domain.DashboardFilters{PartnerID: "PA1"}, 10)
	require.Len(t, filtered.PartnersByRevenue, 1)
	assert.Equal(t, 80.0, filtered.PartnersByRevenue[0].Revenue)
}

func TestBuildLeaderboards_Canais(t *testing.T) {
	boards := marchLeaderboards(t, domain.DashboardFilters{}, 10)

	assert.Equal(t, []domain.ChannelAcquisition{
		{Channel: "instagram", Customers: 1},
		{Channel: "google", Customers: 1},
	}, boards.Channels)

	snapshot := salonSnapshot()
	snapshot.Customers = append(snapshot.Customers, domain.Customer{ID: "CU4", Name: "Sem canal", RegistrationDate: "2024-03-20"})
	catalog := NewCatalog(snapshot)
	channels := rankChannels(marchPeriod(), domain.DashboardFilters{}, catalog)

	assert.Equal(t, UnknownChannelLabel, channels[2].Channel)
}

func TestBuildLeaderboards_HorariosEDias(t *testing.T) {
	boards := marchLeaderboards(t, domain.DashboardFilters{}, 1)

	// Horários e dias não são truncados pelo top N
	assert.Equal(t, []domain.HourlyPeak{
		{Hour: 9, Label: "09:00", Count: 1},
		{Hour: 10, Label: "10:00", Count: 1},
		{Hour: 14, Label: "14:00", Count: 1},
	}, boards.PeakHours)

	assert.Equal(t, []domain.WeekdayStat{
		{Weekday: time.Sunday, Label: "Dom", Count: 1, AverageDuration: 45, AverageTicket: 45},
		{Weekday: time.Tuesday, Label: "Ter", Count: 2, AverageDuration: 75, AverageTicket: 115},
	}, boards.Weekdays)

	assert.Len(t, boards.ProvidersByRevenue, 1)
}

func TestRankProvidersByRevenue(t *testing.T) {
	snapshot := salonSnapshot()
	catalog := NewCatalog(snapshot)

	performances := RankProvidersByRevenue(snapshot.Bookings, catalog)

	// Fevereiro e março juntos, cancelado fora
	require.Len(t, performances, 2)
	assert.Equal(t, "P1", performances[0].ProviderID)
	assert.Equal(t, 200.0, performances[0].Revenue)
	assert.Equal(t, 3, performances[0].Count)
}
