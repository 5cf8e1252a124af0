package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/enrich-cli/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `mapstructure:"max_conns"`
	MinConns int32 `mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool, mainly for tests.
func NewPostgresFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS companies (
	name       TEXT PRIMARY KEY,
	record     JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_companies_updated_at ON companies(updated_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// UpsertCompany replaces the stored record for the company. Repeating the
// same record is a no-op at the data level.
func (s *PostgresStore) UpsertCompany(ctx context.Context, rec model.CompanyRecord) error {
	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal record")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO companies (name, record, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET record = $2, updated_at = $3`,
		rec.Name, recordJSON, time.Now().UTC(),
	)
	return eris.Wrapf(err, "postgres: upsert company %s", rec.Name)
}

func (s *PostgresStore) GetCompany(ctx context.Context, name string) (*model.CompanyRecord, error) {
	var recordJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM companies WHERE name = $1`,
		name,
	).Scan(&recordJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "postgres: get company %s", name)
	}

	var rec model.CompanyRecord
	if err := json.Unmarshal(recordJSON, &rec); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal record")
	}
	return &rec, nil
}

func (s *PostgresStore) ListCompanies(ctx context.Context) ([]model.CompanyRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT record FROM companies ORDER BY name`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list companies")
	}
	defer rows.Close()

	var recs []model.CompanyRecord
	for rows.Next() {
		var recordJSON []byte
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, eris.Wrap(err, "postgres: scan record")
		}
		var rec model.CompanyRecord
		if err := json.Unmarshal(recordJSON, &rec); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal record")
		}
		recs = append(recs, rec)
	}
	return recs, eris.Wrap(rows.Err(), "postgres: list companies iterate")
}
