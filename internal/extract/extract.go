package extract

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Facts holds the structured attributes pulled from a reference page.
// Values keep their raw string form: units, currency, and parenthetical
// years are preserved as found.
type Facts struct {
	EmployeeCount string
	Revenue       string
	Industries    string
}

// Empty reports whether no fact was found.
func (f Facts) Empty() bool {
	return f.EmployeeCount == "" && f.Revenue == "" && f.Industries == ""
}

// sectionVocabulary are the topic words probed against section headings in
// the labeled-section fallback pass.
var sectionVocabulary = []string{
	"operations", "history", "financials", "business", "about",
	"products", "services", "technology", "software", "hardware", "research",
}

var (
	employeesRe  = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*(?:\s*\(\d{4}\))?) employees`)
	revenueRe    = regexp.MustCompile(`(?i)revenue.*?(?:us\$|usd)\s*([\d.]+)\s*(billion|million)`)
	industriesRe = regexp.MustCompile(`(?i)industr(?:y|ies):?\s*([a-zA-Z\s,]+)`)
)

// PageFacts extracts the structured facts from a parsed reference page.
// The structured info table is tried first; fields still missing fall back
// to the labeled-section scan. First match wins per field.
func PageFacts(doc *goquery.Document) Facts {
	facts := infoboxFacts(doc)
	if facts.EmployeeCount != "" && facts.Revenue != "" && facts.Industries != "" {
		return facts
	}
	sectionFacts(doc, &facts)
	return facts
}

// infoboxFacts scans the info table rows for labeled values.
func infoboxFacts(doc *goquery.Document) Facts {
	var facts Facts
	doc.Find("table.infobox tr").Each(func(_ int, row *goquery.Selection) {
		header := strings.ToLower(strings.TrimSpace(row.Find("th").First().Text()))
		if header == "" {
			return
		}
		cell := row.Find("td").First()
		if cell.Length() == 0 {
			return
		}
		value := CleanText(cell.Text())
		if value == "" {
			return
		}
		switch {
		case facts.EmployeeCount == "" && strings.Contains(header, "employees"):
			facts.EmployeeCount = value
		case facts.Revenue == "" && strings.Contains(header, "revenue"):
			facts.Revenue = value
		case facts.Industries == "" && (strings.Contains(header, "industry") || strings.Contains(header, "industries")):
			facts.Industries = value
		}
	})
	return facts
}

// sectionFacts fills fields still missing after the info table pass by
// applying field-specific regular expressions to labeled section bodies.
func sectionFacts(doc *goquery.Document, facts *Facts) {
	eachSection(doc, func(title, body string) {
		if !matchesVocabulary(title) {
			return
		}
		text := strings.ToLower(body)
		if facts.EmployeeCount == "" && strings.Contains(text, "employees") {
			if m := employeesRe.FindStringSubmatch(text); m != nil {
				facts.EmployeeCount = m[1]
			}
		}
		if facts.Revenue == "" && strings.Contains(text, "revenue") {
			if m := revenueRe.FindStringSubmatch(text); m != nil {
				facts.Revenue = "US$" + m[1] + " " + m[2]
			}
		}
		if facts.Industries == "" && strings.Contains(text, "industry") {
			if m := industriesRe.FindStringSubmatch(text); m != nil {
				facts.Industries = strings.TrimSpace(m[1])
			}
		}
	})
}

// eachSection visits every h2/h3 heading with the normalized text of its
// sibling content up to the next heading of equal or higher level.
func eachSection(doc *goquery.Document, fn func(title, body string)) {
	doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		title := CleanText(heading.Text())
		if title == "" {
			return
		}
		var parts []string
		heading.NextUntil("h2, h3").Each(func(_ int, sib *goquery.Selection) {
			parts = append(parts, sib.Text())
		})
		body := CleanText(strings.Join(parts, " "))
		if body == "" {
			return
		}
		fn(title, body)
	})
}

func matchesVocabulary(title string) bool {
	lower := strings.ToLower(title)
	for _, word := range sectionVocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// infoboxTechLabels mark the info table rows whose cells are probed for
// tech keywords.
var infoboxTechLabels = []string{"products", "services", "technology"}

// PageTechStack runs the keyword pass over a parsed reference page: info
// table cells, section headings and bodies, and all paragraphs. Each
// keyword contributes its canonical name at most once.
func PageTechStack(doc *goquery.Document, table *TechTable) []string {
	set := NewTechSet()
	keywords := table.Keywords()

	doc.Find("table.infobox tr").Each(func(_ int, row *goquery.Selection) {
		header := strings.ToLower(strings.TrimSpace(row.Find("th").First().Text()))
		if header == "" {
			return
		}
		probe := false
		for _, label := range infoboxTechLabels {
			if strings.Contains(header, label) {
				probe = true
				break
			}
		}
		if !probe {
			return
		}
		matchKeywords(set, strings.ToLower(CleanText(row.Find("td").First().Text())), keywords)
	})

	eachSection(doc, func(title, body string) {
		matchKeywords(set, strings.ToLower(title), keywords)
		matchKeywords(set, strings.ToLower(body), keywords)
	})

	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		matchKeywords(set, strings.ToLower(CleanText(p.Text())), keywords)
	})

	return set.Names()
}

// SiteTechStack runs the keyword pass over a company homepage: script
// sources and inline content, stylesheet hrefs, meta content values, and
// the X-Powered-By/Server response headers. Any ".js" script source also
// infers JavaScript, ".py" infers Python, and a cloudflare Server header
// is a special-cased exact check.
func SiteTechStack(doc *goquery.Document, header http.Header, table *TechTable) []string {
	set := NewTechSet()
	keywords := table.Keywords()

	doc.Find("script").Each(func(_ int, script *goquery.Selection) {
		src := strings.ToLower(script.AttrOr("src", ""))
		matchKeywords(set, src, keywords)
		matchKeywords(set, strings.ToLower(script.Text()), keywords)
		if strings.Contains(src, ".js") {
			set.Add("JavaScript")
		}
		if strings.Contains(src, ".py") {
			set.Add("Python")
		}
	})

	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, link *goquery.Selection) {
		matchKeywords(set, strings.ToLower(link.AttrOr("href", "")), table.Frameworks)
	})

	doc.Find("meta").Each(func(_ int, meta *goquery.Selection) {
		matchKeywords(set, strings.ToLower(meta.AttrOr("content", "")), keywords)
	})

	if header != nil {
		matchKeywords(set, strings.ToLower(header.Get("X-Powered-By")), keywords)
		if strings.Contains(strings.ToLower(header.Get("Server")), "cloudflare") {
			set.Add("Cloudflare")
		}
	}

	return set.Names()
}
