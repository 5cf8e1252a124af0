package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/enrich-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite, for single-host
// runs without a Postgres server.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS companies (
	name       TEXT PRIMARY KEY,
	record     TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_companies_updated_at ON companies(updated_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.db.PingContext(ctx), "sqlite: ping")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) UpsertCompany(ctx context.Context, rec model.CompanyRecord) error {
	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal record")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO companies (name, record, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (name) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at`,
		rec.Name, string(recordJSON), time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: upsert company %s", rec.Name)
}

func (s *SQLiteStore) GetCompany(ctx context.Context, name string) (*model.CompanyRecord, error) {
	var recordJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM companies WHERE name = ?`,
		name,
	).Scan(&recordJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "sqlite: get company %s", name)
	}

	var rec model.CompanyRecord
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal record")
	}
	return &rec, nil
}

func (s *SQLiteStore) ListCompanies(ctx context.Context) ([]model.CompanyRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT record FROM companies ORDER BY name`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list companies")
	}
	defer rows.Close()

	var recs []model.CompanyRecord
	for rows.Next() {
		var recordJSON string
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan record")
		}
		var rec model.CompanyRecord
		if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal record")
		}
		recs = append(recs, rec)
	}
	return recs, eris.Wrap(rows.Err(), "sqlite: list companies iterate")
}
