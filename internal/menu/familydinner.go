package menu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	StyleHongKong = "Hong Kong"
	StylePeking   = "Peking"

	DefaultDinnerStyle  = StyleHongKong
	DefaultDinnerPeople = 4
)

// DinnerPackage is a fixed family dinner at a defined party size.
type DinnerPackage struct {
	Style    string
	People   int
	MenuName string
	Price    decimal.Decimal
	Dishes   []string
}

// Requested people short of the smallest size are upsized; above the
// largest they are clamped down.
var dinnerSizes = map[string]map[int]DinnerPackage{
	StyleHongKong: {
		4: {Style: StyleHongKong, People: 4, MenuName: "Hong Kong Family Dinner for 4", Price: d("89.99"), Dishes: []string{
			"Sweet and Sour Pork", "Beef with Broccoli", "Fried Rice", "Wonton Soup",
		}},
		6: {Style: StyleHongKong, People: 6, MenuName: "Hong Kong Family Dinner for 6", Price: d("129.99"), Dishes: []string{
			"Sweet and Sour Pork", "Beef with Broccoli", "Kung Pao Chicken",
			"Fried Rice", "Chow Mein", "Wonton Soup",
		}},
		8: {Style: StyleHongKong, People: 8, MenuName: "Hong Kong Family Dinner for 8", Price: d("169.99"), Dishes: []string{
			"Sweet and Sour Pork", "Beef with Broccoli", "Kung Pao Chicken",
			"Orange Chicken", "Fried Rice", "Chow Mein", "Wonton Soup",
			"Hot and Sour Soup",
		}},
	},
	StylePeking: {
		4: {Style: StylePeking, People: 4, MenuName: "Peking Family Dinner for 4", Price: d("99.99"), Dishes: []string{
			"Peking Duck", "Mapo Tofu", "Fried Rice", "Hot and Sour Soup",
		}},
		6: {Style: StylePeking, People: 6, MenuName: "Peking Family Dinner for 6", Price: d("149.99"), Dishes: []string{
			"Peking Duck", "Mapo Tofu", "Kung Pao Chicken", "Fried Rice",
			"Lo Mein", "Hot and Sour Soup",
		}},
		8: {Style: StylePeking, People: 8, MenuName: "Peking Family Dinner for 8", Price: d("199.99"), Dishes: []string{
			"Peking Duck", "Mapo Tofu", "Kung Pao Chicken", "General Tso's Chicken",
			"Fried Rice", "Lo Mein", "Hot and Sour Soup", "Wonton Soup",
		}},
	},
}

// NormalizeDinnerStyle title-cases the requested style and falls back to
// the default when it names no known dinner.
func NormalizeDinnerStyle(style string) string {
	s := strings.TrimSpace(style)
	if s == "" {
		return DefaultDinnerStyle
	}
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	titled := strings.Join(fields, " ")
	if _, ok := dinnerSizes[titled]; !ok {
		return DefaultDinnerStyle
	}
	return titled
}

// ResolveFamilyDinner picks the dinner package for a party. Party sizes
// between defined sizes are upsized to the next one up; parties larger
// than the biggest package are clamped to it.
func ResolveFamilyDinner(style string, people int) DinnerPackage {
	sizes := dinnerSizes[NormalizeDinnerStyle(style)]
	if people <= 0 {
		people = DefaultDinnerPeople
	}

	defined := make([]int, 0, len(sizes))
	for n := range sizes {
		defined = append(defined, n)
	}
	sort.Ints(defined)

	for _, n := range defined {
		if people <= n {
			pkg := sizes[n]
			pkg.People = n
			return pkg
		}
	}
	return sizes[defined[len(defined)-1]]
}

// Resized reports whether the package seats a different number of people
// than requested, in either direction. Callers must disclose the change.
func (p DinnerPackage) Resized(requested int) bool {
	return requested > 0 && p.People != requested
}

// Describe renders the package for a confirmation message.
func (p DinnerPackage) Describe() string {
	return fmt.Sprintf("%s style family dinner for %d", p.Style, p.People)
}
