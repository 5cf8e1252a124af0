package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/enrich-cli/internal/model"
)

type fakeLogos struct {
	url    string
	called int
}

func (f *fakeLogos) Resolve(_ context.Context, _ string) string {
	f.called++
	return f.url
}

func TestMerge_FieldOwnership(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	enc := &model.FactBundle{
		Description:    "Acme builds developer tools.",
		EmployeeCount:  "12,000 (2023)",
		Revenue:        "US$4.2 billion (2024)",
		Industries:     "Software",
		ReferenceTitle: "Acme, Inc.",
		TechStack:      []string{"Kubernetes", "Go"},
	}
	web := &model.FactBundle{
		WebsiteURL: "https://www.acme.com/",
		LogoURL:    "https://www.acme.com/logo.png",
		TechStack:  []string{"React", "kubernetes"},
	}

	rec := New(nil).Merge(context.Background(), "Acme", enc, web, now)

	assert.Equal(t, "Acme", rec.Name)
	assert.Equal(t, "Acme builds developer tools.", rec.Description)
	assert.Equal(t, "12,000 (2023)", rec.EmployeeCount)
	assert.Equal(t, "US$4.2 billion (2024)", rec.Revenue)
	assert.Equal(t, "Software", rec.Industries)
	assert.Equal(t, "Acme, Inc.", rec.ReferenceTitle)
	assert.Equal(t, "https://www.acme.com/", rec.WebsiteURL)
	assert.Equal(t, "www.acme.com", rec.Domain)
	assert.Equal(t, "https://www.acme.com/logo.png", rec.LogoURL)
	assert.Equal(t, []string{"Kubernetes", "Go", "React"}, rec.TechStack)
	assert.Equal(t, []string{model.SourceWikipedia, model.SourceWebsite}, rec.Sources)
	assert.Equal(t, now, rec.ScrapedAt)
}

func TestMerge_WebsiteOnly(t *testing.T) {
	web := &model.FactBundle{
		WebsiteURL: "https://acme.io",
		TechStack:  []string{"JavaScript"},
	}

	rec := New(nil).Merge(context.Background(), "Acme", nil, web, time.Now())

	assert.Empty(t, rec.Description)
	assert.Empty(t, rec.ReferenceTitle)
	assert.Equal(t, "acme.io", rec.Domain)
	assert.Equal(t, []string{model.SourceWebsite}, rec.Sources)
}

func TestMerge_DirectoryMissExcludesWebsiteSource(t *testing.T) {
	rec := New(nil).Merge(context.Background(), "Acme",
		&model.FactBundle{ReferenceTitle: "Acme, Inc."},
		&model.FactBundle{},
		time.Now())

	assert.Equal(t, []string{model.SourceWikipedia}, rec.Sources)
	assert.Empty(t, rec.WebsiteURL)
	assert.Empty(t, rec.Domain)
}

func TestMerge_LogoFallbackWhenWebsiteHasNone(t *testing.T) {
	logos := &fakeLogos{url: "https://logos.example/www.acme.com"}
	web := &model.FactBundle{WebsiteURL: "https://www.acme.com"}

	rec := New(logos).Merge(context.Background(), "Acme", nil, web, time.Now())

	assert.Equal(t, "https://logos.example/www.acme.com", rec.LogoURL)
	assert.Equal(t, 1, logos.called)
}

func TestMerge_LogoFallbackSkippedWhenWebsiteHasOne(t *testing.T) {
	logos := &fakeLogos{url: "https://logos.example/www.acme.com"}
	web := &model.FactBundle{
		WebsiteURL: "https://www.acme.com",
		LogoURL:    "https://www.acme.com/logo.svg",
	}

	rec := New(logos).Merge(context.Background(), "Acme", nil, web, time.Now())

	assert.Equal(t, "https://www.acme.com/logo.svg", rec.LogoURL)
	assert.Equal(t, 0, logos.called)
}

func TestMerge_NoSources(t *testing.T) {
	rec := New(nil).Merge(context.Background(), "Acme", nil, nil, time.Now())

	assert.Equal(t, "Acme", rec.Name)
	assert.Empty(t, rec.Sources)
	assert.NotNil(t, rec.TechStack)
	assert.NotNil(t, rec.Sources)
}

func TestMerge_TechUnionIsCaseInsensitive(t *testing.T) {
	enc := &model.FactBundle{ReferenceTitle: "Acme", TechStack: []string{"React", "AWS"}}
	web := &model.FactBundle{WebsiteURL: "https://acme.com", TechStack: []string{"react", "aws", "Docker"}}

	rec := New(nil).Merge(context.Background(), "Acme", enc, web, time.Now())

	assert.Equal(t, []string{"React", "AWS", "Docker"}, rec.TechStack)
}
