// Package extract turns semi-structured page content into the structured
// facts and tech-stack signals used by the source adapters.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagRe   = regexp.MustCompile(`<[^>]+>`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// CleanText strips markup tags from raw text, collapses all whitespace runs
// (including newlines) to single spaces, and trims the edges. Returns ""
// for empty input. Pure function, no failure modes.
func CleanText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := raw
	if strings.Contains(raw, "<") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err == nil {
			text = doc.Text()
		} else {
			text = tagRe.ReplaceAllString(raw, " ")
		}
	}

	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
