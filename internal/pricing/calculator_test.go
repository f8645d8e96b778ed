package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"cnres-bot/internal/menu"
)

func entry(price string) menu.Entry {
	return menu.Entry{CanonicalName: "KUNG PAO CHICKEN", Price: decimal.RequireFromString(price)}
}

func TestCalculateLine(t *testing.T) {
	tests := []struct {
		name           string
		price          string
		quantity       int
		customizations []string
		wantSubtotal   string
		wantTotal      string
	}{
		{"single item", "13.25", 1, nil, "13.25", "14.38"},
		{"two items", "13.25", 2, nil, "26.50", "28.75"},
		{"free customization", "13.25", 2, []string{"extra spicy"}, "26.50", "28.75"},
		{"paid customization", "13.25", 1, []string{"extra sauce"}, "13.75", "14.92"},
		{"surcharge multiplies with quantity", "10.00", 3, []string{"extra meat"}, "36.00", "39.06"},
		{"stacked customizations", "10.00", 1, []string{"extra sauce", "extra rice"}, "12.25", "13.29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLine(entry(tt.price), tt.quantity, tt.customizations)
			if s := got.Subtotal.StringFixed(2); s != tt.wantSubtotal {
				t.Errorf("subtotal = %s, want %s", s, tt.wantSubtotal)
			}
			if s := got.Total.StringFixed(2); s != tt.wantTotal {
				t.Errorf("total = %s, want %s", s, tt.wantTotal)
			}
		})
	}
}

func TestCalculateLineTaxIsExactBeforeRounding(t *testing.T) {
	got := CalculateLine(entry("13.25"), 2, nil)
	wantTax := decimal.RequireFromString("2.2525")
	if !got.TaxAmount.Equal(wantTax) {
		t.Errorf("tax = %s, want %s", got.TaxAmount, wantTax)
	}
}

func TestCalculatePackage(t *testing.T) {
	tax, total := CalculatePackage(decimal.RequireFromString("129.99"))
	if s := total.StringFixed(2); s != "141.04" {
		t.Errorf("total = %s, want 141.04", s)
	}
	if s := tax.StringFixed(2); s != "11.05" {
		t.Errorf("tax = %s, want 11.05", s)
	}
}

func TestSurcharge(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"extra sauce", "0.5"},
		{"Extra Sauce", "0.5"},
		{"extra vegetables", "1"},
		{"extra meat", "2"},
		{"extra rice", "1.75"},
		{"extra spicy", "0"},
		{"no msg", "0"},
		{"please make it extra spicy", "0"},
		{"extra sauce on the side", "0.5"},
		{"gluten free", "0"},
	}
	for _, tt := range tests {
		if got := Surcharge(tt.input); got.String() != tt.want {
			t.Errorf("Surcharge(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	if got := FormatUSD(decimal.RequireFromString("28.7525")); got != "$28.75" {
		t.Errorf("FormatUSD = %s, want $28.75", got)
	}
	if got := FormatUSD(decimal.RequireFromString("9")); got != "$9.00" {
		t.Errorf("FormatUSD = %s, want $9.00", got)
	}
}