package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/enrich-cli/internal/extract"
	"github.com/sells-group/enrich-cli/internal/fetcher"
)

// fakeWiki simulates the MediaWiki API plus article pages on one server.
type fakeWiki struct {
	srv *httptest.Server

	// titles maps opensearch terms to the candidate title returned.
	titles map[string]string
	// summaries maps titles to intro extracts.
	summaries map[string]string
	// pages maps titles to article HTML.
	pages map[string]string
	// failFullQuery makes the full-extract query (exlimit) return 404.
	failFullQuery bool
}

func newFakeWiki(t *testing.T) *fakeWiki {
	t.Helper()
	f := &fakeWiki{
		titles:    map[string]string{},
		summaries: map[string]string{},
		pages:     map[string]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("action") {
		case "opensearch":
			title, ok := f.titles[q.Get("search")]
			var titles []string
			if ok {
				titles = []string{title}
			}
			payload := []any{q.Get("search"), titles, []string{}, []string{}}
			_ = json.NewEncoder(w).Encode(payload)
		case "query":
			if f.failFullQuery && q.Get("exlimit") != "" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			title := q.Get("titles")
			summary, ok := f.summaries[title]
			page := map[string]any{"title": title}
			if !ok {
				page["missing"] = ""
			} else {
				page["extract"] = summary
				page["fullurl"] = f.srv.URL + "/wiki/" + strings.ReplaceAll(title, " ", "_")
			}
			payload := map[string]any{
				"query": map[string]any{
					"pages": map[string]any{"1": page},
				},
			}
			_ = json.NewEncoder(w).Encode(payload)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	mux.HandleFunc("/wiki/", func(w http.ResponseWriter, r *http.Request) {
		title := strings.ReplaceAll(strings.TrimPrefix(r.URL.Path, "/wiki/"), "_", " ")
		html, ok := f.pages[title]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, html)
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeWiki) source() *EncyclopediaSource {
	return NewEncyclopediaSource(
		fetcher.New(fetcher.Options{MaxRetries: 1}),
		f.srv.URL+"/w/api.php",
		extract.DefaultTechTable(),
	)
}

const acmePage = `<html><body>
<table class="infobox">
<tr><th>Industry</th><td>Software</td></tr>
<tr><th>Revenue</th><td>US$4.2 billion (2024)</td></tr>
<tr><th>Employees</th><td>12,000 (2023)</td></tr>
<tr><th>Products</th><td>Developer tools built with Kubernetes</td></tr>
</table>
<h2>Technology</h2>
<p>Most services are written in Rust.</p>
</body></html>`

func TestEncyclopedia_ResolveSuccess(t *testing.T) {
	f := newFakeWiki(t)
	f.titles["Acme, Inc."] = "Acme, Inc."
	f.summaries["Acme, Inc."] = "Acme, Inc. is an American multinational software corporation."
	f.pages["Acme, Inc."] = acmePage

	bundle, err := f.source().Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.Equal(t, "Acme, Inc.", bundle.ReferenceTitle)
	assert.Contains(t, bundle.Description, "multinational software corporation")
	assert.Equal(t, "12,000 (2023)", bundle.EmployeeCount)
	assert.Equal(t, "US$4.2 billion (2024)", bundle.Revenue)
	assert.Equal(t, "Software", bundle.Industries)
	assert.Contains(t, bundle.TechStack, "Kubernetes")
	assert.Contains(t, bundle.TechStack, "Rust")
}

func TestEncyclopedia_NoMatchReturnsNil(t *testing.T) {
	f := newFakeWiki(t)

	bundle, err := f.source().Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestEncyclopedia_FallbackTerms(t *testing.T) {
	f := newFakeWiki(t)
	// The first term resolves to a page that fails validation (no
	// corroborating keyword); the bare name resolves to a valid page.
	f.titles["Acme, Inc."] = "Acme (band)"
	f.summaries["Acme (band)"] = "Acme is a punk rock group from Ohio."
	f.pages["Acme (band)"] = `<html><body><table class="infobox"><tr><th>Genre</th><td>Punk</td></tr></table></body></html>`

	f.titles["Acme"] = "Acme Corporation"
	f.summaries["Acme Corporation"] = "Acme Corporation is a company founded in 1947."
	f.pages["Acme Corporation"] = acmePage

	bundle, err := f.source().Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, "Acme Corporation", bundle.ReferenceTitle)
}

func TestEncyclopedia_ValidationRequiresInfobox(t *testing.T) {
	f := newFakeWiki(t)
	f.titles["Acme, Inc."] = "Acme, Inc."
	f.summaries["Acme, Inc."] = "Acme, Inc. is a multinational corporation."
	// Keyword present, but the page carries no info table.
	f.pages["Acme, Inc."] = `<html><body><p>A stub about the company.</p></body></html>`

	bundle, err := f.source().Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestEncyclopedia_PartialBundleOnRefetchFailure(t *testing.T) {
	f := newFakeWiki(t)
	f.titles["Acme, Inc."] = "Acme, Inc."
	f.summaries["Acme, Inc."] = "Acme, Inc. is a multinational corporation."
	f.pages["Acme, Inc."] = acmePage
	f.failFullQuery = true

	bundle, err := f.source().Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	require.NotNil(t, bundle)

	// Title survives; everything else degrades to absent.
	assert.Equal(t, "Acme, Inc.", bundle.ReferenceTitle)
	assert.Empty(t, bundle.Description)
	assert.Empty(t, bundle.EmployeeCount)
	assert.Empty(t, bundle.TechStack)
}

func TestEncyclopedia_TransientFailureReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewEncyclopediaSource(
		fetcher.New(fetcher.Options{MaxRetries: 1}),
		srv.URL+"/w/api.php",
		extract.DefaultTechTable(),
	)
	bundle, err := s.Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestSearchTerms_Order(t *testing.T) {
	terms := searchTerms("Acme")
	assert.Equal(t, []string{"Acme, Inc.", "Acme (company)", "Acme", "Acme company"}, terms)
}
