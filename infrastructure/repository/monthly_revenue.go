package repository

//go:generate mockgen -source=monthly_revenue.go -destination=mocks/monthly_revenue_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const (
	monthlyRevenueTable = "monthly_revenue mr"
)

type MonthlyRevenueRepository interface {
	GetBaseline(year int) ([12]float64, error)
	GetByYear(year int) ([]*domain.MonthlyRevenueEntry, error)
	SaveOrUpdate(entry *domain.MonthlyRevenueEntry) error
}

type monthlyRevenueRepository struct {
	conn postgres.Conn
}

func NewMonthlyRevenueRepository(conn postgres.Conn) MonthlyRevenueRepository {
	return &monthlyRevenueRepository{
		conn: conn,
	}
}

// GetBaseline retorna o faturamento de cada mês do ano. Meses sem registro ficam zerados.
func (r *monthlyRevenueRepository) GetBaseline(year int) ([12]float64, error) {
	var baseline [12]float64

	entries, err := r.GetByYear(year)
	if err != nil {
		return baseline, err
	}

	for _, entry := range entries {
		if entry.Month < 1 || entry.Month > 12 {
			continue
		}
		baseline[entry.Month-1] = entry.Revenue
	}

	return baseline, nil
}

func (r *monthlyRevenueRepository) GetByYear(year int) ([]*domain.MonthlyRevenueEntry, error) {
	query, args, err := squirrel.
		Select(
			"mr.id",
			"mr.year",
			"mr.month",
			"mr.revenue",
			"mr.booking_revenue",
			"mr.product_revenue",
			"mr.commission_total",
			"mr.created_at",
			"mr.updated_at",
		).
		From(monthlyRevenueTable).
		Where(squirrel.Eq{"mr.year": year}).
		OrderBy("mr.month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	entries := make([]*domain.MonthlyRevenueEntry, 0, 12)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear faturamento mensal")
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return entries, nil
}

func (r *monthlyRevenueRepository) SaveOrUpdate(entry *domain.MonthlyRevenueEntry) error {
	query := squirrel.StatementBuilder.
		Insert("monthly_revenue").
		Columns("year", "month", "revenue", "booking_revenue", "product_revenue", "commission_total").
		Values(
			entry.Year,
			entry.Month,
			entry.Revenue,
			entry.BookingRevenue,
			entry.ProductRevenue,
			entry.CommissionTotal,
		).
		Suffix(`
			ON CONFLICT (year, month) DO UPDATE SET
				revenue = EXCLUDED.revenue,
				booking_revenue = EXCLUDED.booking_revenue,
				product_revenue = EXCLUDED.product_revenue,
				commission_total = EXCLUDED.commission_total,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.ExecContext(context.Background(), sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}

func (r *monthlyRevenueRepository) scanEntry(rows *sql.Rows) (*domain.MonthlyRevenueEntry, error) {
	entry := &domain.MonthlyRevenueEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.Year,
		&entry.Month,
		&entry.Revenue,
		&entry.BookingRevenue,
		&entry.ProductRevenue,
		&entry.CommissionTotal,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
