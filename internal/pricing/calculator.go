// Package pricing computes order totals. All money math runs on exact
// decimals; rounding to cents happens once, on the presentation fields.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"cnres-bot/internal/menu"
)

// TaxRate is the sales tax applied to every order.
var TaxRate = decimal.RequireFromString("0.085")

type surcharge struct {
	request string
	charge  decimal.Decimal
}

// surcharges lists per-unit customization charges in lookup order.
// Requests not in the table are free.
var surcharges = []surcharge{
	{"extra spicy", decimal.Zero},
	{"no msg", decimal.Zero},
	{"extra sauce", decimal.RequireFromString("0.50")},
	{"extra vegetables", decimal.RequireFromString("1.00")},
	{"extra meat", decimal.RequireFromString("2.00")},
	{"extra chicken", decimal.RequireFromString("2.00")},
	{"extra beef", decimal.RequireFromString("2.00")},
	{"well done", decimal.Zero},
	{"extra rice", decimal.RequireFromString("1.75")},
	{"no onions", decimal.Zero},
	{"no garlic", decimal.Zero},
}

// Surcharge returns the per-unit charge for one customization request.
// Exact matches win; otherwise containment in either direction picks the
// first hit in table order. Unknown requests cost nothing.
func Surcharge(customization string) decimal.Decimal {
	c := strings.ToLower(strings.TrimSpace(customization))
	for _, s := range surcharges {
		if s.request == c {
			return s.charge
		}
	}
	for _, s := range surcharges {
		if strings.Contains(c, s.request) || strings.Contains(s.request, c) {
			return s.charge
		}
	}
	return decimal.Zero
}

// LineResult is the priced outcome of one order line.
type LineResult struct {
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// CalculateLine prices quantity units of a menu entry with customization
// surcharges, then applies tax.
func CalculateLine(e menu.Entry, quantity int, customizations []string) LineResult {
	unit := e.Price
	for _, c := range customizations {
		unit = unit.Add(Surcharge(c))
	}
	subtotal := unit.Mul(decimal.NewFromInt(int64(quantity)))
	tax := subtotal.Mul(TaxRate)
	return LineResult{
		UnitPrice: unit,
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}

// CalculatePackage applies tax to a flat package price.
func CalculatePackage(basePrice decimal.Decimal) (tax, total decimal.Decimal) {
	tax = basePrice.Mul(TaxRate)
	return tax, basePrice.Add(tax)
}

// FormatUSD renders an exact amount as dollars and cents, rounding half
// up at the second decimal.
func FormatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
