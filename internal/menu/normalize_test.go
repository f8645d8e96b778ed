package menu

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and trims", "  Kung Pao Chicken  ", "kung pao chicken"},
		{"expands w slash", "BEEF W/ BROCCOLI", "beef with broccoli"},
		{"expands ampersand", "SWEET & SOUR CHICKEN", "sweet and sour chicken"},
		{"expands bbq dotted", "B.B.Q. PORK W/ BEAN CAKE ON RICE", "barbecued pork with bean cake on rice"},
		{"expands bbq plain", "bbq pork", "barbecued pork"},
		{"fixes supermen misprint", "SUPERMEN SWEET AND SOUR PORK", "supreme sweet and sour pork"},
		{"fixes pepping misprint", "PEPPING SPICY BEEF", "pepper spicy beef"},
		{"strips parenthetical", "SPRING EGG ROLLS (4)", "spring egg rolls"},
		{"strips attached parenthetical", "GENERALS CHICKEN WINGS(10)", "generals chicken wings"},
		{"collapses whitespace", "wonton   soup", "wonton soup"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeMatchesSpokenForms(t *testing.T) {
	// Spoken input and printed menu text should normalize identically.
	pairs := [][2]string{
		{"beef with broccoli", "BEEF W/ BROCCOLI"},
		{"sweet and sour chicken", "SWEET & SOUR CHICKEN"},
		{"barbecued pork fried rice", "BARBECUED PORK FRIED RICE"},
		{"supreme sweet and sour pork", "SUPERMEN SWEET AND SOUR PORK"},
	}
	for _, p := range pairs {
		if got, want := Normalize(p[0]), Normalize(p[1]); got != want {
			t.Errorf("Normalize(%q) = %q, Normalize(%q) = %q, want equal", p[0], got, p[1], want)
		}
	}
}
