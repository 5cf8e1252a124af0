package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/enrich-cli/internal/model"
	"github.com/sells-group/enrich-cli/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Gateway) {
	t.Helper()
	gw := store.NewMemoryGateway()
	srv := httptest.NewServer(NewRouter(gw))
	t.Cleanup(srv.Close)
	return srv, gw
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListCompanies(t *testing.T) {
	srv, gw := newTestServer(t)
	gw.Upsert(context.Background(), model.CompanyRecord{Name: "Acme", Industries: "Software"})
	gw.Upsert(context.Background(), model.CompanyRecord{Name: "Globex"})

	resp, err := http.Get(srv.URL + "/api/companies")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var recs []model.CompanyRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	assert.Len(t, recs, 2)
}

func TestListCompanies_EmptyIsArray(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/companies")
	require.NoError(t, err)
	defer resp.Body.Close()

	var recs []model.CompanyRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestGetCompany(t *testing.T) {
	srv, gw := newTestServer(t)
	gw.Upsert(context.Background(), model.CompanyRecord{Name: "Acme", Revenue: "US$4.2 billion"})

	resp, err := http.Get(srv.URL + "/api/company/Acme")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rec model.CompanyRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "US$4.2 billion", rec.Revenue)
}

func TestGetCompany_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/company/Unknown")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/companies", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://dashboard.example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
