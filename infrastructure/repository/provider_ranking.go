package repository

//go:generate mockgen -source=provider_ranking.go -destination=mocks/provider_ranking_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const (
	providerRankingTable   = "provider_ranking pr"
	providerRankingColumns = "pr.id, pr.run_id, pr.provider_id, pr.month, pr.provider_name, pr.revenue, pr.services_count, pr.position, pr.position_change, pr.previous_position, pr.created_at, pr.updated_at"
)

type ProviderRankingRepository interface {
	GetByProviderID(providerID string, month string) (*domain.ProviderRankingItem, error)
	GetProviderRanking(month string) (*domain.ProviderRankingResponse, error)
	SaveOrUpdateProviderRanking(rankings []*domain.ProviderRankingItem) error
}

type providerRankingRepository struct {
	conn postgres.Conn
}

func NewProviderRankingRepository(conn postgres.Conn) ProviderRankingRepository {
	return &providerRankingRepository{
		conn: conn,
	}
}

func (r *providerRankingRepository) GetProviderRanking(month string) (*domain.ProviderRankingResponse, error) {
	sqlQuery, args, err := squirrel.
		Select(providerRankingColumns).
		From(providerRankingTable).
		Where(squirrel.Eq{"pr.month": month}).
		OrderBy("pr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(context.Background(), sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	rankings := make([]domain.ProviderRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanProviderRankingItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear item do ranking")
		}

		rankings = append(rankings, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.ProviderRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *providerRankingRepository) GetByProviderID(providerID string, month string) (*domain.ProviderRankingItem, error) {
	query, args, err := squirrel.
		Select(providerRankingColumns).
		From(providerRankingTable).
		Where(squirrel.Eq{"pr.provider_id": providerID, "pr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := r.conn.QueryRowContext(context.Background(), query, args...)
	ranking, err := scanProviderRankingItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear ranking")
	}

	return ranking, nil
}

func (r *providerRankingRepository) SaveOrUpdateProviderRanking(rankings []*domain.ProviderRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("provider_ranking").
		Columns(
			"run_id",
			"provider_id",
			"month",
			"provider_name",
			"revenue",
			"services_count",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.RunID,
			ranking.ProviderID,
			ranking.Month,
			ranking.ProviderName,
			ranking.Revenue,
			ranking.ServicesCount,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (provider_id, month) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			provider_name = EXCLUDED.provider_name,
			revenue = EXCLUDED.revenue,
			services_count = EXCLUDED.services_count,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if _, err = r.conn.ExecContext(context.Background(), sqlQuery, args...); err != nil {
		return errors.Wrap(err, "erro ao executar query de inserção")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProviderRankingItem(row rowScanner) (*domain.ProviderRankingItem, error) {
	item := &domain.ProviderRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.RunID,
		&item.ProviderID,
		&item.Month,
		&item.ProviderName,
		&item.Revenue,
		&item.ServicesCount,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
