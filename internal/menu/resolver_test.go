package menu

import (
	"strings"
	"testing"
)

func TestResolveExact(t *testing.T) {
	r := NewResolver(DefaultCatalog())

	// Every printed menu name must resolve back to itself.
	for _, e := range DefaultCatalog().Entries() {
		got, tier := r.Resolve(e.CanonicalName)
		if tier != MatchExact {
			t.Errorf("Resolve(%q) tier = %v, want %v", e.CanonicalName, tier, MatchExact)
			continue
		}
		if got.CanonicalName != e.CanonicalName {
			t.Errorf("Resolve(%q) = %q, want itself", e.CanonicalName, got.CanonicalName)
		}
	}
}

func TestResolveSpokenForms(t *testing.T) {
	r := NewResolver(DefaultCatalog())

	tests := []struct {
		input    string
		want     string
		wantTier MatchTier
	}{
		{"kung pao chicken", "KUNG PAO CHICKEN", MatchExact},
		{"Beef with Broccoli", "BEEF W/ BROCCOLI", MatchExact},
		{"sweet and sour chicken", "SWEET & SOUR CHICKEN", MatchExact},
		{"bbq pork fried rice", "BARBECUED PORK FRIED RICE", MatchExact},
		{"spring egg rolls", "SPRING EGG ROLLS (4)", MatchExact},
		{"orange chicken", "ORANGE PEEL CHICKEN", MatchAlias},
		{"hot and sour soup", "MIXED VEGETABLES SOUP", MatchAlias},
		{"deep fried banana", "DEEP-FRIED BANANA", MatchAlias},
		{"peking spicy beef", "PEPPING SPICY BEEF", MatchAlias},
		{"pork with original juice on rice", "BEEF STEW W/ ORIGINAL JUICE ON RICE", MatchAlias},
		{"walnut prawns please", "WALNUT PRAWNS", MatchSubstring},
		{"chicken kung pao", "KUNG PAO CHICKEN", MatchWordOverlap},
		{"mongolian", "MONGOLIAN BEEF", MatchSubstring},
		{"wor wonton", "WOR WONTON SOUP", MatchSubstring},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, tier := r.Resolve(tt.input)
			if tier != tt.wantTier {
				t.Errorf("Resolve(%q) tier = %v, want %v", tt.input, tier, tt.wantTier)
			}
			if got.CanonicalName != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got.CanonicalName, tt.want)
			}
		})
	}
}

func TestResolveWordOverlapTakesFirstQualifying(t *testing.T) {
	r := NewResolver(DefaultCatalog())

	// Several rice dishes overlap this input more heavily, but the scan
	// stops at the first entry meeting the threshold in menu order.
	got, tier := r.Resolve("beef black bean sauce on rice")
	if tier != MatchWordOverlap {
		t.Fatalf("tier = %v, want %v", tier, MatchWordOverlap)
	}
	if got.CanonicalName != "CHICKEN W/ BLACK BEAN SAUCE" {
		t.Errorf("Resolve() = %q, want the first qualifying entry %q",
			got.CanonicalName, "CHICKEN W/ BLACK BEAN SAUCE")
	}
}

func TestResolveWithAbbreviationExpanded(t *testing.T) {
	r := NewResolver(DefaultCatalog())

	// "W/" on the printed menu and spoken "with" must land on the same
	// entry.
	for _, e := range DefaultCatalog().Entries() {
		if !strings.Contains(e.CanonicalName, "W/") {
			continue
		}
		spoken := strings.ReplaceAll(e.CanonicalName, "W/", "with")
		got, tier := r.Resolve(spoken)
		if tier != MatchExact || got.CanonicalName != e.CanonicalName {
			t.Errorf("Resolve(%q) = %q (%v), want %q exact", spoken, got.CanonicalName, tier, e.CanonicalName)
		}
	}
}

func TestResolveMiss(t *testing.T) {
	r := NewResolver(DefaultCatalog())

	for _, input := range []string{"Unicorn Stew", "pepperoni pizza", ""} {
		if got, tier := r.Resolve(input); tier != MatchNone {
			t.Errorf("Resolve(%q) = %q (%v), want no match", input, got.CanonicalName, tier)
		}
	}
}

func TestResolveKnownPrices(t *testing.T) {
	r := NewResolver(DefaultCatalog())

	tests := []struct {
		input string
		price string
	}{
		{"kung pao chicken", "13.25"},
		{"walnut prawns", "16.25"},
		{"wonton soup", "9"},
		{"steamed rice", "1.75"},
	}
	for _, tt := range tests {
		e, tier := r.Resolve(tt.input)
		if tier == MatchNone {
			t.Fatalf("Resolve(%q) found no match", tt.input)
		}
		if e.Price.String() != tt.price {
			t.Errorf("Resolve(%q) price = %s, want %s", tt.input, e.Price, tt.price)
		}
	}
}
