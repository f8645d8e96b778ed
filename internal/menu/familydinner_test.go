package menu

import "testing"

func TestResolveFamilyDinner(t *testing.T) {
	tests := []struct {
		name       string
		style      string
		people     int
		wantStyle  string
		wantPeople int
		wantPrice  string
	}{
		{"exact size", "Hong Kong", 4, StyleHongKong, 4, "89.99"},
		{"upsize to next", "Hong Kong", 5, StyleHongKong, 6, "129.99"},
		{"upsize from below minimum", "Peking", 2, StylePeking, 4, "99.99"},
		{"clamp to largest", "Hong Kong", 10, StyleHongKong, 8, "169.99"},
		{"lowercase style", "peking", 6, StylePeking, 6, "149.99"},
		{"unknown style falls back", "Sichuan", 4, StyleHongKong, 4, "89.99"},
		{"empty style falls back", "", 4, StyleHongKong, 4, "89.99"},
		{"zero people uses default", "Hong Kong", 0, StyleHongKong, 4, "89.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := ResolveFamilyDinner(tt.style, tt.people)
			if pkg.Style != tt.wantStyle {
				t.Errorf("style = %q, want %q", pkg.Style, tt.wantStyle)
			}
			if pkg.People != tt.wantPeople {
				t.Errorf("people = %d, want %d", pkg.People, tt.wantPeople)
			}
			if got := pkg.Price.StringFixed(2); got != tt.wantPrice {
				t.Errorf("price = %s, want %s", got, tt.wantPrice)
			}
			if len(pkg.Dishes) == 0 {
				t.Error("package has no dishes")
			}
		})
	}
}

func TestDinnerPackageResized(t *testing.T) {
	pkg := ResolveFamilyDinner("Hong Kong", 5)
	if !pkg.Resized(5) {
		t.Error("party of 5 served by the 6 person package should report resized")
	}
	if pkg.Resized(6) {
		t.Error("exact size should not report resized")
	}

	clamped := ResolveFamilyDinner("Hong Kong", 10)
	if !clamped.Resized(10) {
		t.Error("party of 10 clamped to the 8 person package should report resized")
	}
}
