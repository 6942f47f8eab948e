package theme

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"landingkit/internal/siteconfig"
)

// tailwindScript builds the statement that extends the Tailwind CDN theme
// with the site's palette and scales. encoding/json sorts map keys and
// escapes '<', so the output is deterministic and safe inside <script>.
func tailwindScript(t siteconfig.Theme) string {
	colors := map[string]string{}
	for k, v := range t.Colors.Palette {
		if s := Sanitize(v); s != "" {
			colors[kebab(k)] = s
		}
	}
	for k, v := range t.Colors.Text {
		if s := Sanitize(v); s != "" {
			colors["text-"+kebab(k)] = s
		}
	}

	fonts := t.Typography.Fonts
	extend := map[string]any{
		"colors": colors,
		"fontFamily": map[string][]string{
			"sans":    fontStack(fonts.Primary),
			"heading": fontStack(fonts.Heading),
			"mono":    fontStack(fonts.Mono),
		},
		"spacing":      scale(t.Spacing),
		"borderRadius": scale(t.BorderRadius),
		"boxShadow":    scale(t.Shadows),
		"fontSize":     scale(t.Typography.FontSizes),
	}
	descriptor := map[string]any{"theme": map[string]any{"extend": extend}}

	data, err := json.Marshal(descriptor)
	if err != nil {
		// Only string maps and slices are marshalled; this cannot fail.
		panic("theme: marshal tailwind config: " + err.Error())
	}
	return "tailwind.config = " + string(data) + ";"
}

func scale(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s := Sanitize(v); s != "" {
			out[k] = s
		}
	}
	return out
}

// fontStack splits a font-family declaration into its unquoted families.
func fontStack(decl string) []string {
	stack := []string{}
	for _, f := range strings.Split(decl, ",") {
		f = strings.Trim(strings.TrimSpace(f), `'"`)
		if f = Sanitize(f); f != "" {
			stack = append(stack, f)
		}
	}
	return stack
}

var genericFamilies = map[string]bool{
	"serif": true, "sans-serif": true, "monospace": true, "cursive": true,
	"fantasy": true, "system-ui": true, "ui-serif": true, "ui-sans-serif": true,
	"ui-monospace": true, "math": true, "emoji": true,
}

var familyNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// FontImports returns one Google Fonts URL per distinct leading family of
// the primary, heading, and mono declarations. Generic families are skipped.
func FontImports(f siteconfig.Fonts) []string {
	seen := map[string]bool{}
	var urls []string
	for _, decl := range []string{f.Primary, f.Heading, f.Mono} {
		stack := fontStack(decl)
		if len(stack) == 0 {
			continue
		}
		family := stack[0]
		if genericFamilies[strings.ToLower(family)] || !familyNameRe.MatchString(family) || seen[family] {
			continue
		}
		seen[family] = true
		urls = append(urls, "https://fonts.googleapis.com/css2?family="+
			strings.ReplaceAll(url.PathEscape(family), "%20", "+")+
			":wght@400;500;600;700;800;900&display=swap")
	}
	return urls
}
