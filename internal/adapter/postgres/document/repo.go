// Package document implements store.Backend on a single PostgreSQL table
// of JSONB snapshots keyed by document name.
package document

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/safewalk-backend/internal/adapter/postgres"
)

const table = "documents"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Load returns the stored body for key.
// Returns domain.ErrNotFound if the key has never been saved.
func (r *Repo) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("body").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var body []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&body); err != nil {
		return nil, postgres.MapError(err, key)
	}
	return body, nil
}

// Save upserts the body for key.
func (r *Repo) Save(ctx context.Context, key string, data []byte) error {
	query, args, err := psql.
		Insert(table).
		Columns("key", "body", "updated_at").
		Values(key, string(data), sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, key)
	}
	return nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
