package menu

import (
	"regexp"
	"strings"
)

// replacements are applied in order; the multi-character forms must come
// before their shorter prefixes ("b.b.q." before "b.b.q" before "bbq") so a
// single pass cannot produce a partial rewrite.
var replacements = []struct {
	old string
	new string
}{
	{"w/", "with"},
	{"&", "and"},
	{"b.b.q.", "barbecued"},
	{"b.b.q", "barbecued"},
	{"bbq", "barbecued"},
	// menu misprints
	{"supermen", "supreme"},
	{"supremed", "supreme"},
	{"pepping", "pepper"},
}

var parenthetical = regexp.MustCompile(`\([^)]*\)`)

// Normalize turns a free-text dish name into the form used for catalog
// comparison: lower-cased, abbreviations expanded, serving-count
// parentheticals like "(10)" stripped, whitespace collapsed.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	s = parenthetical.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
