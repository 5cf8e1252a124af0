// Package server exposes the enriched company records over a small read
// API.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sells-group/enrich-cli/internal/model"
)

// RecordReader is the subset of the persistence gateway the API needs.
type RecordReader interface {
	Get(ctx context.Context, name string) (*model.CompanyRecord, error)
	Export(ctx context.Context) ([]model.CompanyRecord, error)
}

// NewRouter builds the HTTP routes over the given record reader.
func NewRouter(records RecordReader) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/companies", func(w http.ResponseWriter, req *http.Request) {
		recs, err := records.Export(req.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "listing companies failed"})
			return
		}
		if recs == nil {
			recs = []model.CompanyRecord{}
		}
		writeJSON(w, http.StatusOK, recs)
	})

	r.Get("/api/company/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		rec, err := records.Get(req.Context(), name)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
			return
		}
		if rec == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "company not found"})
			return
		}
		writeJSON(w, http.StatusOK, rec)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
