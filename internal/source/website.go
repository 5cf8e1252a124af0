package source

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/directory"
	"github.com/sells-group/enrich-cli/internal/extract"
	"github.com/sells-group/enrich-cli/internal/fetcher"
	"github.com/sells-group/enrich-cli/internal/model"
	"github.com/sells-group/enrich-cli/internal/render"
)

// WebsiteSource resolves a company name to its known homepage and extracts
// branding and tech-stack signals from it. Resolve never returns a nil
// bundle: total failure yields an empty one.
type WebsiteSource struct {
	fetcher  *fetcher.HTTPFetcher
	renderer render.Renderer
	table    *extract.TechTable
	lookup   func(string) (string, bool)

	// renderBroken latches to true on the first rendering failure and is
	// never reset within a run.
	renderBroken atomic.Bool
}

// NewWebsiteSource creates a WebsiteSource. renderer may be nil when no
// rendering engine is available in the environment.
func NewWebsiteSource(f *fetcher.HTTPFetcher, renderer render.Renderer, table *extract.TechTable) *WebsiteSource {
	return &WebsiteSource{
		fetcher:  f,
		renderer: renderer,
		table:    table,
		lookup:   directory.Lookup,
	}
}

// WithLookup overrides the homepage directory lookup.
func (s *WebsiteSource) WithLookup(lookup func(string) (string, bool)) *WebsiteSource {
	s.lookup = lookup
	return s
}

// Name returns the source label recorded in merged records.
func (s *WebsiteSource) Name() string { return model.SourceWebsite }

// Resolve looks the company up in the known-website directory and scrapes
// its homepage. A directory miss or fetch failure degrades the bundle, it
// never aborts the batch.
func (s *WebsiteSource) Resolve(ctx context.Context, name string) (*model.FactBundle, error) {
	log := zap.L().With(zap.String("company", name))

	website, ok := s.lookup(name)
	if !ok {
		log.Warn("no known website url")
		return &model.FactBundle{}, nil
	}

	content, header := s.fetchContent(ctx, website)
	if content == "" {
		return &model.FactBundle{WebsiteURL: website}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		log.Warn("website parse failed", zap.String("url", website), zap.Error(err))
		return &model.FactBundle{WebsiteURL: website}, nil
	}

	bundle := &model.FactBundle{
		WebsiteURL: website,
		LogoURL:    findLogo(doc, name, website),
		TechStack:  extract.SiteTechStack(doc, header, s.table),
	}

	log.Debug("website scrape complete",
		zap.String("url", website),
		zap.Int("tech_signals", len(bundle.TechStack)),
	)
	return bundle, nil
}

// fetchContent returns the page HTML and response headers. Rendering is
// preferred while available; its first failure permanently demotes the
// source to plain fetches for the remainder of the run.
func (s *WebsiteSource) fetchContent(ctx context.Context, website string) (string, http.Header) {
	if s.renderer != nil && !s.renderBroken.Load() {
		html, err := s.renderer.Render(ctx, website)
		if err == nil {
			var header http.Header
			if resp, headErr := s.fetcher.Head(ctx, website); headErr == nil {
				header = resp.Header
			}
			return html, header
		}
		s.renderBroken.Store(true)
		zap.L().Warn("rendering failed, using plain fetch for the rest of the run",
			zap.String("url", website),
			zap.Error(err),
		)
	}

	resp, err := s.fetcher.Get(ctx, website)
	if err != nil {
		zap.L().Warn("website fetch failed", zap.String("url", website), zap.Error(err))
		return "", nil
	}
	return string(resp.Body), resp.Header
}

// findLogo scans image elements for a logo hint: "logo" in the alt text,
// source path, or class list, or the company name in the alt text. The
// first match wins; relative paths are resolved against the site URL.
func findLogo(doc *goquery.Document, name, website string) string {
	lowerName := strings.ToLower(name)
	var logo string
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := img.AttrOr("src", "")
		alt := strings.ToLower(img.AttrOr("alt", ""))
		class := strings.ToLower(img.AttrOr("class", ""))

		if strings.Contains(alt, "logo") || strings.Contains(strings.ToLower(src), "logo") ||
			strings.Contains(class, "logo") || strings.Contains(alt, lowerName) {
			if src == "" {
				return true
			}
			logo = src
			if !strings.HasPrefix(logo, "http") {
				logo = strings.TrimRight(website, "/") + "/" + strings.TrimLeft(logo, "/")
			}
			return false
		}
		return true
	})
	return logo
}
