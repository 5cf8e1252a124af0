package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/enrich-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteStore_UpsertAndGet(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	rec := model.CompanyRecord{
		Name:          "Acme",
		Description:   "Acme builds developer tools.",
		EmployeeCount: "12,000 (2023)",
		TechStack:     []string{"Go", "React"},
		Sources:       []string{model.SourceWikipedia},
	}
	require.NoError(t, s.UpsertCompany(ctx, rec))

	got, err := s.GetCompany(ctx, "Acme")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.Description, got.Description)
	assert.Equal(t, rec.TechStack, got.TechStack)
}

func TestSQLiteStore_UpsertReplaces(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCompany(ctx, model.CompanyRecord{Name: "Acme", Revenue: "US$1 billion"}))
	require.NoError(t, s.UpsertCompany(ctx, model.CompanyRecord{Name: "Acme", Revenue: "US$2 billion"}))

	got, err := s.GetCompany(ctx, "Acme")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "US$2 billion", got.Revenue)

	recs, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestSQLiteStore_GetMissingReturnsNil(t *testing.T) {
	s := newTestSQLite(t)

	got, err := s.GetCompany(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_ListOrderedByName(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertCompany(ctx, model.CompanyRecord{Name: "Globex"}))
	require.NoError(t, s.UpsertCompany(ctx, model.CompanyRecord{Name: "Acme"}))

	recs, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Acme", recs[0].Name)
	assert.Equal(t, "Globex", recs[1].Name)
}

func TestSQLiteStore_MigrateIdempotent(t *testing.T) {
	s := newTestSQLite(t)
	require.NoError(t, s.Migrate(context.Background()))
}
