// Package model defines the data types shared across the enrichment pipeline.
package model

import (
	"net/url"
	"time"
)

// Source labels recorded in CompanyRecord.Sources.
const (
	SourceWikipedia = "Wikipedia"
	SourceWebsite   = "Company Website"
)

// FactBundle is the normalized output of a single source adapter for one
// company. All fields are optional; an empty string means the source had
// nothing for that field. A bundle is created once per adapter call and
// never mutated afterwards.
type FactBundle struct {
	Description   string   `json:"description,omitempty"`
	EmployeeCount string   `json:"employee_count,omitempty"`
	Revenue       string   `json:"revenue,omitempty"`
	Industries    string   `json:"industries,omitempty"`
	TechStack     []string `json:"tech_stack,omitempty"`

	// Encyclopedia-only extras.
	ReferenceTitle string `json:"reference_title,omitempty"`

	// Website-only extras.
	WebsiteURL string `json:"website_url,omitempty"`
	LogoURL    string `json:"logo_url,omitempty"`
}

// CompanyRecord is the canonical merged record for one company, keyed by
// Name in the durable store.
type CompanyRecord struct {
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	EmployeeCount  string    `json:"employee_count,omitempty"`
	Revenue        string    `json:"revenue,omitempty"`
	Industries     string    `json:"industries,omitempty"`
	ReferenceTitle string    `json:"reference_title,omitempty"`
	WebsiteURL     string    `json:"website_url,omitempty"`
	Domain         string    `json:"domain,omitempty"`
	LogoURL        string    `json:"logo_url,omitempty"`
	TechStack      []string  `json:"tech_stack"`
	Sources        []string  `json:"sources"`
	ScrapedAt      time.Time `json:"scraped_at"`
}

// Domain extracts the host component from a URL. Returns "" for an empty
// or unparseable URL.
func Domain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
