package menu

import "context"

// Source resolves dish names to priced menu entries. The static source
// runs the full matching tiers in process; remote sources match on the
// stored sample name, which the loader seeds with normalized canonical
// names and aliases.
type Source interface {
	Resolve(ctx context.Context, name string) (Entry, bool, error)
	ResolveMany(ctx context.Context, names []string) (map[string]Entry, error)
}

// StaticSource serves the in-process catalog through a Resolver.
type StaticSource struct {
	resolver *Resolver
}

func NewStaticSource(c *Catalog) *StaticSource {
	return &StaticSource{resolver: NewResolver(c)}
}

func (s *StaticSource) Resolve(_ context.Context, name string) (Entry, bool, error) {
	e, tier := s.resolver.Resolve(name)
	return e, tier != MatchNone, nil
}

func (s *StaticSource) ResolveMany(_ context.Context, names []string) (map[string]Entry, error) {
	out := make(map[string]Entry, len(names))
	for _, name := range names {
		if e, tier := s.resolver.Resolve(name); tier != MatchNone {
			out[name] = e
		}
	}
	return out, nil
}

// SampleNames expands a catalog into the lookup rows a remote store
// needs: every entry keyed by its normalized canonical name, plus one
// row per alias pointing at the aliased entry.
func SampleNames(c *Catalog) map[string]Entry {
	rows := make(map[string]Entry, c.Len()+len(aliases))
	for _, e := range c.entries {
		rows[Normalize(e.CanonicalName)] = e
	}
	for input, canonical := range aliases {
		if e, ok := c.lookupNormalized(Normalize(canonical)); ok {
			rows[input] = e
		}
	}
	return rows
}
