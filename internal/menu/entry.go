package menu

import (
	"github.com/shopspring/decimal"
)

// Entry is one sellable dish in the catalog. Entries are reference data:
// built once at startup and never mutated afterwards, so they are safe to
// read from concurrent fulfillment requests without locking.
type Entry struct {
	CanonicalName string
	Price         decimal.Decimal
	Category      string
	// DisplayPrice carries the menu's printed price text when it differs
	// from the plain numeric price (e.g. "15.75 PER PERSON").
	DisplayPrice string
}

// MatchTier records which resolution strategy produced a match.
type MatchTier int

const (
	MatchNone MatchTier = iota
	MatchExact
	MatchAlias
	MatchSubstring
	MatchWordOverlap
)

func (t MatchTier) String() string {
	switch t {
	case MatchExact:
		return "exact"
	case MatchAlias:
		return "alias"
	case MatchSubstring:
		return "substring"
	case MatchWordOverlap:
		return "word_overlap"
	default:
		return "none"
	}
}

// Catalog is an insertion-ordered set of entries. Order matters: the
// substring and word-overlap tiers accept the first entry that qualifies,
// so iteration must be stable for resolution to be deterministic.
type Catalog struct {
	entries      []Entry
	byNormalized map[string]int
}

// NewCatalog builds a catalog preserving the insertion order of entries.
// When two entries normalize to the same key the first one wins.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		entries:      entries,
		byNormalized: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		key := Normalize(e.CanonicalName)
		if _, exists := c.byNormalized[key]; !exists {
			c.byNormalized[key] = i
		}
	}
	return c
}

// Entries returns the catalog entries in insertion order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// lookupNormalized finds an entry by its normalized canonical name.
func (c *Catalog) lookupNormalized(key string) (Entry, bool) {
	i, ok := c.byNormalized[key]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}
