package extract

import "strings"

// Keyword maps a lowercase substring probe to the canonical display name
// recorded in a tech stack.
type Keyword struct {
	Match     string
	Canonical string
}

// TechTable is the process-wide keyword table, partitioned into three
// namespaces. It is read-only after initialization; iteration order is
// fixed (languages, then tools, then frameworks) so the first canonical
// form seen wins on dedupe.
type TechTable struct {
	Languages  []Keyword
	Tools      []Keyword
	Frameworks []Keyword
}

// Keywords returns all keywords in namespace order.
func (t *TechTable) Keywords() []Keyword {
	out := make([]Keyword, 0, len(t.Languages)+len(t.Tools)+len(t.Frameworks))
	out = append(out, t.Languages...)
	out = append(out, t.Tools...)
	out = append(out, t.Frameworks...)
	return out
}

// DefaultTechTable returns the built-in keyword table.
func DefaultTechTable() *TechTable {
	return &TechTable{
		Languages: []Keyword{
			{"python", "Python"},
			{"javascript", "JavaScript"},
			{"java", "Java"},
			{"c++", "C++"},
			{"c#", "C#"},
			{"ruby", "Ruby"},
			{"php", "PHP"},
			{"swift", "Swift"},
			{"kotlin", "Kotlin"},
			{"typescript", "TypeScript"},
			{"go", "Go"},
			{"rust", "Rust"},
		},
		Tools: []Keyword{
			{"git", "Git"},
			{"docker", "Docker"},
			{"jenkins", "Jenkins"},
			{"kubernetes", "Kubernetes"},
			{"ansible", "Ansible"},
			{"terraform", "Terraform"},
			{"aws", "AWS"},
			{"azure", "Azure"},
			{"gcp", "Google Cloud Platform"},
			{"cloudflare", "Cloudflare"},
		},
		Frameworks: []Keyword{
			{"react", "React"},
			{"angular", "Angular"},
			{"vue", "Vue.js"},
			{"jquery", "jQuery"},
			{"bootstrap", "Bootstrap"},
			{"django", "Django"},
			{"flask", "Flask"},
			{"node", "Node.js"},
			{"express", "Express.js"},
			{"wordpress", "WordPress"},
			{"next", "Next.js"},
			{"gatsby", "Gatsby"},
			{"tailwind", "Tailwind CSS"},
			{"laravel", "Laravel"},
			{"svelte", "Svelte"},
			{"nuxt", "Nuxt.js"},
		},
	}
}

// TechSet accumulates canonical technology names, deduplicated
// case-insensitively while preserving first-seen order.
type TechSet struct {
	seen  map[string]bool
	names []string
}

// NewTechSet creates an empty TechSet.
func NewTechSet() *TechSet {
	return &TechSet{seen: make(map[string]bool)}
}

// Add records a canonical name if not already present.
func (s *TechSet) Add(name string) {
	key := strings.ToLower(name)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.names = append(s.names, name)
}

// Names returns the accumulated names in insertion order.
func (s *TechSet) Names() []string {
	return s.names
}

// matchKeywords probes text (already lowercased) against the table and
// adds every hit to the set.
func matchKeywords(set *TechSet, text string, keywords []Keyword) {
	if text == "" {
		return
	}
	for _, kw := range keywords {
		if strings.Contains(text, kw.Match) {
			set.Add(kw.Canonical)
		}
	}
}
