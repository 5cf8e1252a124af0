// Package store provides durable persistence for merged company records,
// with Postgres and SQLite drivers behind one interface.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sells-group/enrich-cli/internal/model"
)

// Store defines the persistence interface for company records. Records are
// keyed by company name; an upsert replaces the whole record.
type Store interface {
	UpsertCompany(ctx context.Context, rec model.CompanyRecord) error
	GetCompany(ctx context.Context, name string) (*model.CompanyRecord, error)
	ListCompanies(ctx context.Context) ([]model.CompanyRecord, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Pool is the subset of pgxpool.Pool the Postgres store uses. Declared here
// so tests can substitute a mock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}
