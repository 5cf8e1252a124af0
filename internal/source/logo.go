package source

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/fetcher"
)

// DefaultLogoBaseURL is the public logo lookup endpoint.
const DefaultLogoBaseURL = "https://logo.clearbit.com"

// LogoClient resolves a company logo through an external lookup service
// keyed by a guessed domain. Absence is not an error.
type LogoClient struct {
	fetcher *fetcher.HTTPFetcher
	baseURL string
}

// NewLogoClient creates a LogoClient against the given base URL.
func NewLogoClient(f *fetcher.HTTPFetcher, baseURL string) *LogoClient {
	if baseURL == "" {
		baseURL = DefaultLogoBaseURL
	}
	return &LogoClient{fetcher: f, baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve probes the lookup service with "www.<lowercased-name>.com" and
// returns the logo URL on a hit, or "" when the service has nothing.
func (c *LogoClient) Resolve(ctx context.Context, companyName string) string {
	domain := "www." + strings.ToLower(companyName) + ".com"
	logoURL := c.baseURL + "/" + domain

	resp, err := c.fetcher.Head(ctx, logoURL)
	if err != nil {
		zap.L().Warn("logo lookup failed",
			zap.String("company", companyName),
			zap.Error(err),
		)
		return ""
	}
	if resp.StatusCode != http.StatusOK {
		zap.L().Debug("no logo at lookup service",
			zap.String("company", companyName),
			zap.Int("status", resp.StatusCode),
		)
		return ""
	}
	return logoURL
}
