// Package reconcile merges per-source fact bundles into one canonical
// company record.
package reconcile

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/extract"
	"github.com/sells-group/enrich-cli/internal/model"
)

// LogoResolver looks up a fallback logo URL for a company name. It is
// consulted only when no source produced a logo.
type LogoResolver interface {
	Resolve(ctx context.Context, companyName string) string
}

// Reconciler merges encyclopedia and website bundles field by field. Each
// field has exactly one owning source, so two bundles never conflict on
// the same field.
type Reconciler struct {
	logos LogoResolver
}

// New creates a Reconciler. logos may be nil to disable the logo fallback.
func New(logos LogoResolver) *Reconciler {
	return &Reconciler{logos: logos}
}

// Merge builds the canonical record for a company. enc may be nil when the
// encyclopedia had no validated page; web may be nil when the website
// adapter was skipped. Descriptive fields come from the encyclopedia,
// branding fields from the website, and the tech stack is the
// case-insensitive union with encyclopedia entries first.
func (r *Reconciler) Merge(ctx context.Context, name string, enc, web *model.FactBundle, now time.Time) model.CompanyRecord {
	rec := model.CompanyRecord{
		Name:      name,
		TechStack: []string{},
		Sources:   []string{},
		ScrapedAt: now,
	}

	techs := extract.NewTechSet()

	if enc != nil {
		rec.Description = enc.Description
		rec.EmployeeCount = enc.EmployeeCount
		rec.Revenue = enc.Revenue
		rec.Industries = enc.Industries
		rec.ReferenceTitle = enc.ReferenceTitle
		for _, tech := range enc.TechStack {
			techs.Add(tech)
		}
		rec.Sources = append(rec.Sources, model.SourceWikipedia)
	}

	if web != nil {
		rec.WebsiteURL = web.WebsiteURL
		rec.Domain = model.Domain(web.WebsiteURL)
		rec.LogoURL = web.LogoURL
		for _, tech := range web.TechStack {
			techs.Add(tech)
		}
		if !webEmpty(web) {
			rec.Sources = append(rec.Sources, model.SourceWebsite)
		}
	}

	if names := techs.Names(); len(names) > 0 {
		rec.TechStack = names
	}

	if rec.LogoURL == "" && r.logos != nil {
		rec.LogoURL = r.logos.Resolve(ctx, name)
	}

	if len(rec.Sources) == 0 {
		zap.L().Warn("no source contributed data", zap.String("company", name))
	}
	return rec
}

// webEmpty reports whether the website adapter contributed nothing, which
// happens on a directory miss.
func webEmpty(web *model.FactBundle) bool {
	return web.WebsiteURL == "" && web.LogoURL == "" && len(web.TechStack) == 0
}
