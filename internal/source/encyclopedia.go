package source

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/extract"
	"github.com/sells-group/enrich-cli/internal/fetcher"
	"github.com/sells-group/enrich-cli/internal/model"
)

// DefaultReferenceAPIURL is the public MediaWiki API endpoint.
const DefaultReferenceAPIURL = "https://en.wikipedia.org/w/api.php"

// corroboratingKeywords must appear in a candidate page's summary for the
// title to be accepted as a company article.
var corroboratingKeywords = []string{
	"corporation", "multinational", "company", "founded", "headquarters",
}

// EncyclopediaSource resolves company names against a MediaWiki-style
// reference API, validating candidate titles before extracting facts.
type EncyclopediaSource struct {
	fetcher *fetcher.HTTPFetcher
	apiURL  string
	table   *extract.TechTable
}

// NewEncyclopediaSource creates an EncyclopediaSource against the given
// API endpoint.
func NewEncyclopediaSource(f *fetcher.HTTPFetcher, apiURL string, table *extract.TechTable) *EncyclopediaSource {
	if apiURL == "" {
		apiURL = DefaultReferenceAPIURL
	}
	return &EncyclopediaSource{fetcher: f, apiURL: apiURL, table: table}
}

// Name returns the source label recorded in merged records.
func (s *EncyclopediaSource) Name() string { return model.SourceWikipedia }

// searchTerms returns the ordered fallback query strings for a company.
func searchTerms(name string) []string {
	return []string{
		name + ", Inc.",
		name + " (company)",
		name,
		name + " company",
	}
}

// Resolve finds and validates a reference page for the company, then
// extracts a fact bundle from it. A nil bundle means no validated title
// was found or a transient failure occurred; the batch continues either
// way. When the full-page fetch fails after a title was validated, a
// partial bundle carrying the title is returned instead of nothing.
func (s *EncyclopediaSource) Resolve(ctx context.Context, name string) (*model.FactBundle, error) {
	log := zap.L().With(zap.String("company", name))

	title, pageURL, err := s.resolveTitle(ctx, name)
	if err != nil {
		log.Warn("reference title search failed", zap.Error(err))
		return nil, nil
	}
	if title == "" {
		log.Warn("no validated reference page found")
		return nil, nil
	}

	bundle, err := s.fetchPage(ctx, name, title, pageURL)
	if err != nil {
		log.Warn("reference page fetch failed after validation, keeping title only",
			zap.String("title", title),
			zap.Error(err),
		)
		return &model.FactBundle{ReferenceTitle: title}, nil
	}

	return bundle, nil
}

// resolveTitle walks the fallback search terms and returns the first
// candidate title that passes validation, along with its page URL.
// An invalid candidate moves on to the next term, never a retry of the
// same one.
func (s *EncyclopediaSource) resolveTitle(ctx context.Context, name string) (string, string, error) {
	for _, term := range searchTerms(name) {
		candidate, err := s.openSearch(ctx, term)
		if err != nil {
			return "", "", err
		}
		if candidate == "" {
			continue
		}

		summary, pageURL, err := s.summarize(ctx, candidate)
		if err != nil {
			return "", "", err
		}
		if summary == "" {
			zap.L().Debug("candidate has no extract, trying next term",
				zap.String("candidate", candidate),
				zap.String("term", term),
			)
			continue
		}

		ok, err := s.validate(ctx, summary, pageURL)
		if err != nil {
			return "", "", err
		}
		if ok {
			zap.L().Debug("validated reference title",
				zap.String("company", name),
				zap.String("title", candidate),
			)
			return candidate, pageURL, nil
		}
		zap.L().Debug("candidate failed validation, trying next term",
			zap.String("candidate", candidate),
			zap.String("term", term),
		)
	}
	return "", "", nil
}

// openSearch runs an open-ended title search for the term and returns the
// first candidate title, if any.
func (s *EncyclopediaSource) openSearch(ctx context.Context, term string) (string, error) {
	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", term)
	params.Set("limit", "1")
	params.Set("format", "json")

	resp, err := s.fetcher.Get(ctx, s.apiURL+"?"+params.Encode())
	if err != nil {
		return "", eris.Wrapf(err, "encyclopedia: opensearch %q", term)
	}

	// The opensearch payload is a positional array:
	// [term, [titles], [descriptions], [urls]].
	var raw []json.RawMessage
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return "", eris.Wrap(err, "encyclopedia: decode opensearch")
	}
	if len(raw) < 2 {
		return "", nil
	}
	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return "", eris.Wrap(err, "encyclopedia: decode opensearch titles")
	}
	if len(titles) == 0 {
		return "", nil
	}
	return titles[0], nil
}

// queryPage is one page entry of a MediaWiki query response.
type queryPage struct {
	Missing *string `json:"missing"`
	Extract string  `json:"extract"`
	FullURL string  `json:"fullurl"`
}

type queryResponse struct {
	Query struct {
		Pages map[string]queryPage `json:"pages"`
	} `json:"query"`
}

// query runs an extracts|info query for the title with extra parameters.
func (s *EncyclopediaSource) query(ctx context.Context, title string, extra url.Values) (*queryPage, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("format", "json")
	params.Set("prop", "extracts|info")
	params.Set("inprop", "url")
	for k, vs := range extra {
		for _, v := range vs {
			params.Set(k, v)
		}
	}

	resp, err := s.fetcher.Get(ctx, s.apiURL+"?"+params.Encode())
	if err != nil {
		return nil, eris.Wrapf(err, "encyclopedia: query %q", title)
	}

	var decoded queryResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, eris.Wrap(err, "encyclopedia: decode query")
	}
	for _, page := range decoded.Query.Pages {
		return &page, nil
	}
	return nil, eris.Errorf("encyclopedia: empty query response for %q", title)
}

// summarize fetches a short intro extract for the candidate title.
func (s *EncyclopediaSource) summarize(ctx context.Context, title string) (summary, pageURL string, err error) {
	extra := url.Values{}
	extra.Set("exintro", "1")
	extra.Set("exsentences", "2")

	page, err := s.query(ctx, title, extra)
	if err != nil {
		return "", "", err
	}
	if page.Missing != nil {
		return "", "", nil
	}

	pageURL = page.FullURL
	if pageURL == "" {
		pageURL = s.wikiURL(title)
	}
	return strings.ToLower(extract.CleanText(page.Extract)), pageURL, nil
}

// validate fetches the candidate page and requires both a structured info
// table and at least one corroborating keyword in the summary.
func (s *EncyclopediaSource) validate(ctx context.Context, summary, pageURL string) (bool, error) {
	hasKeyword := false
	for _, kw := range corroboratingKeywords {
		if strings.Contains(summary, kw) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return false, nil
	}

	resp, err := s.fetcher.Get(ctx, pageURL)
	if err != nil {
		return false, eris.Wrapf(err, "encyclopedia: fetch %s", pageURL)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return false, eris.Wrap(err, "encyclopedia: parse page")
	}
	return doc.Find("table.infobox").Length() > 0, nil
}

// fetchPage pulls the full extract and page markup for a validated title
// and runs the attribute and tech-stack extraction.
func (s *EncyclopediaSource) fetchPage(ctx context.Context, name, title, pageURL string) (*model.FactBundle, error) {
	extra := url.Values{}
	extra.Set("redirects", "1")
	extra.Set("exlimit", "max")

	page, err := s.query(ctx, title, extra)
	if err != nil {
		return nil, err
	}
	if page.Missing != nil {
		return nil, eris.Errorf("encyclopedia: page %q is missing", title)
	}

	description := extract.CleanText(page.Extract)
	if description == "" {
		zap.L().Warn("no summary available for reference page", zap.String("title", title))
	}

	if page.FullURL != "" {
		pageURL = page.FullURL
	}
	resp, err := s.fetcher.Get(ctx, pageURL)
	if err != nil {
		return nil, eris.Wrapf(err, "encyclopedia: fetch page %s", pageURL)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, eris.Wrap(err, "encyclopedia: parse page")
	}

	facts := extract.PageFacts(doc)
	techStack := extract.PageTechStack(doc, s.table)

	if facts.Empty() && len(techStack) == 0 {
		zap.L().Warn("no structured facts found on reference page",
			zap.String("company", name),
			zap.String("title", title),
		)
	}

	return &model.FactBundle{
		Description:    description,
		EmployeeCount:  facts.EmployeeCount,
		Revenue:        facts.Revenue,
		Industries:     facts.Industries,
		TechStack:      techStack,
		ReferenceTitle: title,
	}, nil
}

// wikiURL derives a page URL from the API endpoint when the query response
// does not carry one.
func (s *EncyclopediaSource) wikiURL(title string) string {
	base := strings.Replace(s.apiURL, "/w/api.php", "/wiki/", 1)
	if base == s.apiURL {
		base = strings.TrimRight(s.apiURL, "/") + "/wiki/"
	}
	return base + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}
