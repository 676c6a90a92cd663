package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func revenueSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Providers: []domain.Provider{{ID: "P1", Name: "Ana", CommissionRate: 0.5}},
		Services:  []domain.ServiceCatalogEntry{{ID: "S1", Name: "Corte", Price: 80}},
		Bookings: []domain.Booking{
			{ID: "B1", ProviderID: "P1", ServiceID: "S1", Date: "2024-02-10", Time: "10:00", Status: domain.BookingStatusCompleted, BookedPrice: floatPtr(100)},
			{ID: "B2", ProviderID: "P1", ServiceID: "S1", Date: "2024-02-11", Time: "10:00", Status: domain.BookingStatusCancelled, BookedPrice: floatPtr(999)},
			{ID: "B3", ProviderID: "P1", ServiceID: "S1", Date: "2024-01-05", Time: "10:00", Status: domain.BookingStatusCompleted},
		},
		Sales: []domain.Sale{
			{ID: "V1", CustomerID: "C1", Date: "2024-02-15", TotalAmount: 50, Items: []domain.SaleItem{{ProductID: "X", Quantity: 1, UnitPrice: 50}}},
		},
	}
}

func TestMonthlyRevenueSyncService_closeMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonthlyRevenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)
	service := &MonthlyRevenueSyncService{monthlyRevenueRepo: mockMonthlyRevenueRepo}

	t.Run("Fecha fevereiro com agendamentos e vendas", func(t *testing.T) {
		var saved *domain.MonthlyRevenueEntry
		mockMonthlyRevenueRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(entry *domain.MonthlyRevenueEntry) error {
				saved = entry
				return nil
			})

		entry, err := service.closeMonth(revenueSnapshot(), time.Date(2024, 2, 1, 12, 0, 0, 0, time.Local))
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.Equal(t, 2024, entry.Year)
		assert.Equal(t, 2, entry.Month)
		assert.Equal(t, 150.0, entry.Revenue)
		assert.Equal(t, 100.0, entry.BookingRevenue)
		assert.Equal(t, 50.0, entry.ProductRevenue)
		assert.Equal(t, 50.0, entry.CommissionTotal)
	})

	t.Run("Erro ao salvar é propagado", func(t *testing.T) {
		mockMonthlyRevenueRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("falha"))

		entry, err := service.closeMonth(revenueSnapshot(), time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local))
		assert.Error(t, err)
		assert.Nil(t, entry)
	})
}

func TestMonthlyRevenueSyncService_syncMonthlyRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockMonthlyRevenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)

	service := &MonthlyRevenueSyncService{
		config:             MonthlyRevenueSyncConfig{MonthLookBack: 2},
		snapshotRepo:       mockSnapshotRepo,
		monthlyRevenueRepo: mockMonthlyRevenueRepo,
	}

	mockSnapshotRepo.EXPECT().LoadSnapshot(gomock.Any()).Return(revenueSnapshot(), nil)

	saved := make(map[int]float64)
	mockMonthlyRevenueRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.MonthlyRevenueEntry) error {
			saved[entry.Month] = entry.Revenue
			return nil
		}).
		Times(2)

	// 31 de março: os dois meses anteriores são fevereiro e janeiro
	service.syncMonthlyRevenue(time.Date(2024, 3, 31, 5, 0, 0, 0, time.Local))

	assert.Equal(t, map[int]float64{2: 150, 1: 80}, saved)
	assert.Equal(t, false, service.GetStatus()["sync_running"])
}

func TestMonthlyRevenueSyncService_SnapshotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockMonthlyRevenueRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)

	service := &MonthlyRevenueSyncService{
		config:             MonthlyRevenueSyncConfig{MonthLookBack: 1},
		snapshotRepo:       mockSnapshotRepo,
		monthlyRevenueRepo: mockMonthlyRevenueRepo,
	}

	mockSnapshotRepo.EXPECT().LoadSnapshot(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	// Nenhuma chamada a SaveOrUpdate é esperada
	service.syncMonthlyRevenue(time.Date(2024, 3, 1, 5, 0, 0, 0, time.Local))
}
