package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two words", "Our Story", "our-story"},
		{"mixed case", "Meet the Team", "meet-the-team"},
		{"year", "Roadmap 2026", "roadmap-2026"},
		{"punctuation dropped", "What's New?", "whats-new"},
		{"ampersand between spaces", "Terms & Conditions", "terms-conditions"},
		{"slash separator", "Frontend/Backend", "frontend-backend"},
		{"dots and colons", "v2.0: Launch", "v2-0-launch"},
		{"underscores", "snake_case_title", "snake-case-title"},
		{"repeated separators", "a -- b __ c", "a-b-c"},
		{"leading and trailing", "  -- Pricing --  ", "pricing"},
		{"unicode letters kept", "Über Uns", "über-uns"},
		{"digits only", "404", "404"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
		{"tabs and newlines", "Line\tOne\nTwo", "line-one-two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetAnchor(t *testing.T) {
	var s Set
	steps := []struct {
		title, fallback, want string
	}{
		{"FAQ", "section-1", "faq"},
		{"FAQ", "section-2", "faq-2"},
		{"", "section-3", "section-3"},
		{"faq 2", "section-4", "faq-2-2"},
		{"FAQ", "section-5", "faq-3"},
		{"???", "section-6", "section-6"},
	}
	for _, st := range steps {
		if got := s.Anchor(st.title, st.fallback); got != st.want {
			t.Errorf("Anchor(%q, %q) = %q, want %q", st.title, st.fallback, got, st.want)
		}
	}
}
