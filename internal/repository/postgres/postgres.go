package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TigerAppsOrg/tiger-junction-sub001/internal/utils"
)

type Storage struct {
	pool *pgxpool.Pool
}

// NewConnection returns *Storage so the pool is shared
func NewConnection(ctx context.Context, connString string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{
		pool: pool,
	}, nil
}

// Close closes the database connection pool
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// notFound maps pgx's no-rows error onto the store-agnostic sentinel
// handlers translate to 404.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}

// collectRows drains a result set into a slice. A connection dropped
// mid-iteration makes Next return false early; rows.Err is checked so
// the truncated result surfaces as an error instead of a short slice.
func collectRows[T any](rows pgx.Rows, scan func(pgx.Rows, *T) error) ([]T, error) {
	defer rows.Close()

	var items []T
	for rows.Next() {
		var item T
		if err := scan(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
