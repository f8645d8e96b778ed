package menu

import (
	"math"
	"strings"
)

// aliases map spoken forms the normalizer cannot bridge onto canonical
// menu names. Keys are normalized input, values are canonical names as
// printed in the catalog.
var aliases = map[string]string{
	"deep fried banana":                "DEEP-FRIED BANANA",
	"peking spicy beef":                "PEPPING SPICY BEEF",
	"hot and sour soup":                "MIXED VEGETABLES SOUP",
	"pork with original juice on rice": "BEEF STEW W/ ORIGINAL JUICE ON RICE",
	"barbecued pork chow mein":         "CHICKEN CHOW MEIN",
	"orange chicken":                   "ORANGE PEEL CHICKEN",
	"barbecued pork":                   "HONEY GLAZED BARBECUED PORK",
	"tofu":                             "KUNG PAO TO FU",
}

// Resolver matches free-form dish names against a catalog. Matching runs
// in tiers: exact normalized match, curated alias, substring containment,
// then word overlap. Earlier menu entries win ties.
type Resolver struct {
	catalog    *Catalog
	normalized []string
	words      []map[string]struct{}
}

func NewResolver(c *Catalog) *Resolver {
	r := &Resolver{
		catalog:    c,
		normalized: make([]string, len(c.entries)),
		words:      make([]map[string]struct{}, len(c.entries)),
	}
	for i, e := range c.entries {
		n := Normalize(e.CanonicalName)
		r.normalized[i] = n
		set := make(map[string]struct{})
		for _, w := range strings.Fields(n) {
			set[w] = struct{}{}
		}
		r.words[i] = set
	}
	return r
}

// Resolve maps a free-form dish name to a menu entry. The second return
// reports which tier produced the match; MatchNone means no entry was
// close enough.
func (r *Resolver) Resolve(name string) (Entry, MatchTier) {
	input := Normalize(name)
	if input == "" {
		return Entry{}, MatchNone
	}

	if e, ok := r.catalog.lookupNormalized(input); ok {
		return e, MatchExact
	}

	if canonical, ok := aliases[input]; ok {
		if e, ok := r.catalog.lookupNormalized(Normalize(canonical)); ok {
			return e, MatchAlias
		}
	}

	for i, n := range r.normalized {
		if strings.Contains(n, input) || strings.Contains(input, n) {
			return r.catalog.entries[i], MatchSubstring
		}
	}

	inputWords := strings.Fields(input)
	threshold := math.Min(2, 0.7*float64(len(inputWords)))
	for i, set := range r.words {
		overlap := 0
		for _, w := range inputWords {
			if _, ok := set[w]; ok {
				overlap++
			}
		}
		if overlap > 0 && float64(overlap) >= threshold {
			return r.catalog.entries[i], MatchWordOverlap
		}
	}

	return Entry{}, MatchNone
}
