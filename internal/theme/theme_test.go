package theme

import (
	"strings"
	"testing"

	"landingkit/internal/siteconfig"
)

func TestCompile_Deterministic(t *testing.T) {
	th := siteconfig.Example().Theme

	first := Compile(th)
	for i := 0; i < 20; i++ {
		again := Compile(th)
		if again.CSS != first.CSS {
			t.Fatal("CSS differs between compilations")
		}
		if again.Tailwind != first.Tailwind {
			t.Fatal("tailwind config differs between compilations")
		}
		if strings.Join(again.FontImports, "\n") != strings.Join(first.FontImports, "\n") {
			t.Fatal("font imports differ between compilations")
		}
	}
}

func TestCompile_PropertyNames(t *testing.T) {
	css := Compile(siteconfig.DefaultTheme()).CSS

	for _, want := range []string{
		"--color-primary: #667eea;",
		"--color-primary-dark: #764ba2;",
		"--color-text-inverse: #ffffff;",
		"--font-heading: 'Poppins', sans-serif;",
		"--font-size-2xl: 1.5rem;",
		"--font-weight-semibold: 600;",
		"--line-height-tight: 1.25;",
		"--letter-spacing-wide: 0.025em;",
		"--radius-lg: 0.75rem;",
		"--spacing-xl: 2rem;",
		"--layout-max-width: 1280px;",
		"--animation-fast: 150ms ease-in-out;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS missing %q", want)
		}
	}
}

func TestCompile_ResolvesReferences(t *testing.T) {
	css := Compile(siteconfig.DefaultTheme()).CSS

	rule := extractRule(t, css, ".btn-primary")
	for _, want := range []string{
		"background: var(--color-primary);",
		"color: var(--color-text-inverse);",
		"border-radius: var(--radius-lg);",
		"box-shadow: var(--shadow-md);",
		"transition: all var(--animation-normal);",
		"padding: 0.75rem 1.5rem;",
	} {
		if !strings.Contains(rule, want) {
			t.Errorf(".btn-primary missing %q in:\n%s", want, rule)
		}
	}

	hover := extractRule(t, css, ".btn-primary:hover")
	if !strings.Contains(hover, "background: var(--color-primary-dark);") {
		t.Errorf("hover rule should resolve primaryDark:\n%s", hover)
	}

	hero := extractRule(t, css, ".hero")
	if !strings.Contains(hero, "background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);") {
		t.Errorf("gradient literal should pass through:\n%s", hero)
	}
}

func TestCompile_UnknownReferencePassesThrough(t *testing.T) {
	th := siteconfig.DefaultTheme()
	th.Components.Buttons = map[string]siteconfig.Variant{
		"odd": {Background: "brandBlue", TextColor: "#fff"},
	}
	css := Compile(th).CSS

	rule := extractRule(t, css, ".btn-odd")
	if !strings.Contains(rule, "background: brandBlue;") {
		t.Errorf("unknown reference should be emitted literally:\n%s", rule)
	}
	if !strings.Contains(rule, "color: #fff;") {
		t.Errorf("hex literal should pass through:\n%s", rule)
	}
}

// TestCompile_ButtonIsolation checks that two button variants differing
// only in background compile to rules differing only in that declaration.
func TestCompile_ButtonIsolation(t *testing.T) {
	base := siteconfig.Variant{
		TextColor: "text.inverse", BorderRadius: "md", Padding: "md",
		FontSize: "base", FontWeight: "bold", Shadow: "sm", HoverShadow: "lg",
		Border: "1px solid", BorderColor: "border", Transition: "fast",
	}
	a, b := base, base
	a.Background = "primary"
	b.Background = "secondary"

	th := siteconfig.DefaultTheme()
	th.Components.Buttons = map[string]siteconfig.Variant{"a": a, "b": b}
	css := Compile(th).CSS

	ruleA := strings.Split(extractRule(t, css, ".btn-a"), "\n")
	ruleB := strings.Split(extractRule(t, css, ".btn-b"), "\n")
	if len(ruleA) != len(ruleB) {
		t.Fatalf("rules have different shapes:\n%v\n%v", ruleA, ruleB)
	}

	var diffs []string
	for i := range ruleA {
		la := strings.Replace(ruleA[i], ".btn-a", ".btn-x", 1)
		lb := strings.Replace(ruleB[i], ".btn-b", ".btn-x", 1)
		if la != lb {
			diffs = append(diffs, la+" | "+lb)
		}
	}
	if len(diffs) != 1 {
		t.Fatalf("expected exactly one differing line, got %d: %v", len(diffs), diffs)
	}
	if !strings.Contains(diffs[0], "background: var(--color-primary);") ||
		!strings.Contains(diffs[0], "background: var(--color-secondary);") {
		t.Errorf("differing line should be the background: %s", diffs[0])
	}
}

func TestCompile_CardDefaultSelector(t *testing.T) {
	css := Compile(siteconfig.DefaultTheme()).CSS
	if !strings.Contains(css, "\n.card {\n") {
		t.Error("default card variant should compile to .card")
	}
	if !strings.Contains(css, "\n.card-highlighted {\n") {
		t.Error("named card variant should compile to .card-<name>")
	}
}

func TestCompile_GridColumns(t *testing.T) {
	css := Compile(siteconfig.DefaultTheme()).CSS
	want := "@media (min-width: 768px) {\n  .feature-grid {\n    grid-template-columns: repeat(3, minmax(0, 1fr));"
	if !strings.Contains(css, want) {
		t.Errorf("feature grid columns missing:\n%s", css)
	}
}

func TestCompile_Sanitizes(t *testing.T) {
	th := siteconfig.DefaultTheme()
	th.Colors.Palette["primary"] = "red;} </style><script>alert(1)</script>"
	th.Components.Buttons = map[string]siteconfig.Variant{"x": {Padding: "1rem; color: red"}}
	out := Compile(th)

	for _, bad := range []string{"</style>", "<script>", "red;}"} {
		if strings.Contains(out.CSS, bad) {
			t.Errorf("CSS contains %q", bad)
		}
	}
	if strings.Contains(out.Tailwind, "</script>") {
		t.Error("tailwind config should not contain a closing script tag")
	}
}

func TestCompile_HostileTokenKey(t *testing.T) {
	th := siteconfig.DefaultTheme()
	hostile := "x</style><script>alert(1)</script>"
	th.Colors.Palette[hostile] = "#fff"
	th.Colors.Palette["<>{};"] = "#000"
	th.Components.Buttons = map[string]siteconfig.Variant{"evil": {Background: hostile}}
	out := Compile(th)

	for _, bad := range []string{"</style>", "<script>", "alert(1)</"} {
		if strings.Contains(out.CSS, bad) {
			t.Errorf("CSS contains %q", bad)
		}
	}
	if !strings.Contains(out.CSS, "--color-xstylescriptalert1script: #fff;") {
		t.Errorf("hostile key should be reduced to a safe property name:\n%s", out.CSS)
	}
	if !strings.Contains(extractRule(t, out.CSS, ".btn-evil"), "var(--color-xstylescriptalert1script)") {
		t.Error("reference to the reduced key should still resolve")
	}
	for _, p := range out.Properties {
		if p.Name == "--color-" {
			t.Error("key without usable characters should be skipped")
		}
	}
}

func TestCompile_NavClass(t *testing.T) {
	th := siteconfig.DefaultTheme()
	th.Layout.NavPosition = "sticky"
	out := Compile(th)
	if out.NavClass != "nav-sticky" {
		t.Errorf("NavClass: got %q, want nav-sticky", out.NavClass)
	}
	if !strings.Contains(out.CSS, ".nav-sticky {\n  position: sticky;") {
		t.Error("nav position rule missing")
	}

	th.Layout.NavPosition = "floating; color: red"
	if got := Compile(th).NavClass; got != "nav-static" {
		t.Errorf("unknown position: got %q, want nav-static", got)
	}
}

func TestTailwind(t *testing.T) {
	tw := Compile(siteconfig.DefaultTheme()).Tailwind
	if !strings.HasPrefix(tw, "tailwind.config = {") || !strings.HasSuffix(tw, "};") {
		t.Fatalf("unexpected statement shape: %s", tw)
	}
	for _, want := range []string{
		`"primary-dark":"#764ba2"`,
		`"text-inverse":"#ffffff"`,
		`"sans":["Inter","sans-serif"]`,
		`"borderRadius":{`,
		`"boxShadow":{`,
	} {
		if !strings.Contains(tw, want) {
			t.Errorf("tailwind config missing %s", want)
		}
	}
}

func TestFontImports(t *testing.T) {
	tests := []struct {
		name  string
		fonts siteconfig.Fonts
		want  []string
	}{
		{
			name:  "defaults",
			fonts: siteconfig.DefaultTheme().Typography.Fonts,
			want:  []string{"family=Inter:", "family=Poppins:", "family=Fira+Code:"},
		},
		{
			name:  "dedupe",
			fonts: siteconfig.Fonts{Primary: "'Inter', sans-serif", Heading: `"Inter", serif`},
			want:  []string{"family=Inter:"},
		},
		{
			name:  "generic only",
			fonts: siteconfig.Fonts{Primary: "sans-serif", Heading: "serif", Mono: "monospace"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FontImports(tt.fonts)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d imports %v, want %d", len(got), got, len(tt.want))
			}
			for i, frag := range tt.want {
				if !strings.Contains(got[i], frag) {
					t.Errorf("import %d: %q should contain %q", i, got[i], frag)
				}
			}
		})
	}
}

func TestDangling(t *testing.T) {
	th := siteconfig.DefaultTheme()
	if refs := Dangling(th); len(refs) != 0 {
		t.Fatalf("default theme should have no dangling references, got %v", refs)
	}

	th.Components.Buttons = map[string]siteconfig.Variant{
		"typo": {Background: "primry", BorderRadius: "3xl", Padding: "1rem", TextColor: "white"},
	}
	refs := Dangling(th)
	if len(refs) != 2 {
		t.Fatalf("got %d references %v, want 2", len(refs), refs)
	}
	if refs[0].Component != "buttons.typo" || refs[0].Field != "background" || refs[0].Value != "primry" {
		t.Errorf("first reference: got %+v", refs[0])
	}
	if refs[1].Field != "borderRadius" || refs[1].Value != "3xl" {
		t.Errorf("second reference: got %+v", refs[1])
	}
}

func TestKebab(t *testing.T) {
	tests := map[string]string{
		"primaryDark":   "primary-dark",
		"text.inverse":  "text-inverse",
		"2xl":           "2xl",
		"maxWidth":      "max-width",
		"already-kebab": "already-kebab",
		"a</style>b":    "astyleb",
		"x:y;z{}":       "xyz",
	}
	for in, want := range tests {
		if got := kebab(in); got != want {
			t.Errorf("kebab(%q) = %q, want %q", in, got, want)
		}
	}
}

// extractRule returns the rule block starting at selector, including its
// closing brace.
func extractRule(t *testing.T, css, selector string) string {
	t.Helper()
	start := strings.Index(css, "\n"+selector+" {\n")
	if start < 0 {
		t.Fatalf("rule %q not found in:\n%s", selector, css)
	}
	rest := css[start+1:]
	end := strings.Index(rest, "\n}\n")
	if end < 0 {
		t.Fatalf("rule %q not terminated", selector)
	}
	return rest[:end+2]
}
