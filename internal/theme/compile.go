// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"landingkit/internal/siteconfig"
)

// Stylesheet is the compiled form of a theme.
type Stylesheet struct {
	// CSS is the body of the page's <style> element: the :root custom
	// property block followed by base and component rules.
	CSS string

	// Tailwind is a script statement assigning the Tailwind CDN config.
	Tailwind string

	// FontImports are Google Fonts stylesheet URLs, one per family.
	FontImports []string

	// Properties is the flattened token table in emission order.
	Properties []Property

	// NavClass is the class applied to the navigation bar for its
	// configured position.
	NavClass string
}

// Compile turns t into a stylesheet. It never fails: unresolved references
// are emitted as literals.
func Compile(t siteconfig.Theme) *Stylesheet {
	r := NewResolver(t)
	props := Properties(t)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, p := range props {
		fmt.Fprintf(&b, "  %s: %s;\n", p.Name, p.Value)
	}
	b.WriteString("}\n")

	navPos := navPosition(t.Layout.NavPosition)
	writeBase(&b, navPos)

	for _, c := range components(t.Components) {
		writeVariant(&b, r, c)
	}

	return &Stylesheet{
		CSS:         b.String(),
		Tailwind:    tailwindScript(t),
		FontImports: FontImports(t.Typography.Fonts),
		Properties:  props,
		NavClass:    "nav-" + navPos,
	}
}

var navPositions = map[string]bool{"fixed": true, "sticky": true, "static": true, "absolute": true, "relative": true}

func navPosition(p string) string {
	if navPositions[p] {
		return p
	}
	return "static"
}

func writeBase(b *strings.Builder, navPos string) {
	b.WriteString(`
body {
  font-family: var(--font-primary);
  background-color: var(--color-background);
  color: var(--color-text-primary);
}

h1, h2, h3, h4, h5, h6 {
  font-family: var(--font-heading);
}

code, pre, kbd {
  font-family: var(--font-mono);
}

.gradient-bg {
  background: linear-gradient(135deg, var(--color-primary) 0%, var(--color-primary-dark) 100%);
}

.container-max {
  max-width: var(--layout-max-width);
}
`)
	fmt.Fprintf(b, "\n.nav-%s {\n  position: %s;\n  top: 0;\n  width: 100%%;\n  z-index: 50;\n}\n", navPos, navPos)
}

// component is one generated selector and the variant that styles it.
type component struct {
	key      string
	selector string
	variant  siteconfig.Variant
}

// components lists every styled component in emission order. Button and
// card registries are open: each declared name gets its own class.
func components(c siteconfig.Components) []component {
	var out []component
	for _, name := range sortedKeys(c.Buttons) {
		if cls := className(name); cls != "" {
			out = append(out, component{"buttons." + name, ".btn-" + cls, c.Buttons[name]})
		}
	}
	for _, name := range sortedKeys(c.Cards) {
		cls := className(name)
		switch cls {
		case "":
			continue
		case "default":
			out = append(out, component{"cards." + name, ".card", c.Cards[name]})
		default:
			out = append(out, component{"cards." + name, ".card-" + cls, c.Cards[name]})
		}
	}
	return append(out,
		component{"navbar", ".navbar", c.Navbar},
		component{"footer", ".site-footer", c.Footer},
		component{"forms", ".form-input", c.Forms},
		component{"hero", ".hero", c.Hero},
		component{"featureGrid", ".feature-grid", c.FeatureGrid},
		component{"pricingGrid", ".pricing-grid", c.PricingGrid},
		component{"testimonialGrid", ".testimonial-grid", c.TestimonialGrid},
	)
}

var classNameRe = regexp.MustCompile(`[^a-z0-9-]`)

func className(name string) string {
	return classNameRe.ReplaceAllString(kebab(name), "")
}

// refField is a variant field that may hold a token reference.
type refField struct {
	name string
	cat  Category
	get  func(siteconfig.Variant) string
}

var refFields = []refField{
	{"background", CatColor, func(v siteconfig.Variant) string { return v.Background }},
	{"hoverBackground", CatColor, func(v siteconfig.Variant) string { return v.HoverBackground }},
	{"textColor", CatColor, func(v siteconfig.Variant) string { return v.TextColor }},
	{"hoverTextColor", CatColor, func(v siteconfig.Variant) string { return v.HoverTextColor }},
	{"borderColor", CatColor, func(v siteconfig.Variant) string { return v.BorderColor }},
	{"borderRadius", CatRadius, func(v siteconfig.Variant) string { return v.BorderRadius }},
	{"padding", CatSpacing, func(v siteconfig.Variant) string { return v.Padding }},
	{"gap", CatSpacing, func(v siteconfig.Variant) string { return v.Gap }},
	{"fontSize", CatFontSize, func(v siteconfig.Variant) string { return v.FontSize }},
	{"fontWeight", CatFontWeight, func(v siteconfig.Variant) string { return v.FontWeight }},
	{"shadow", CatShadow, func(v siteconfig.Variant) string { return v.Shadow }},
	{"hoverShadow", CatShadow, func(v siteconfig.Variant) string { return v.HoverShadow }},
	{"transition", CatAnimation, func(v siteconfig.Variant) string { return v.Transition }},
}

// writeVariant emits the rule, hover rule, and responsive column rule for
// one component. Every component goes through this one procedure so a
// variant's output depends only on its own fields.
func writeVariant(b *strings.Builder, r *Resolver, c component) {
	v := c.variant
	if v.IsZero() {
		return
	}

	var decls []string
	add := func(prop, value string) {
		if value != "" {
			decls = append(decls, prop+": "+value)
		}
	}
	ref := func(cat Category, value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return r.Resolve(cat, value)
	}

	add("background", ref(CatColor, v.Background))
	add("color", ref(CatColor, v.TextColor))
	add("border-radius", ref(CatRadius, v.BorderRadius))
	add("padding", ref(CatSpacing, v.Padding))
	add("font-size", ref(CatFontSize, v.FontSize))
	add("font-weight", ref(CatFontWeight, v.FontWeight))
	add("box-shadow", ref(CatShadow, v.Shadow))
	switch border := Sanitize(v.Border); {
	case border != "":
		add("border", strings.TrimSpace(border+" "+ref(CatColor, v.BorderColor)))
	case v.BorderColor != "":
		add("border-color", ref(CatColor, v.BorderColor))
	}
	if v.Gap != "" || v.Columns != "" {
		add("display", "grid")
		add("gap", ref(CatSpacing, v.Gap))
		if v.Columns != "" {
			add("grid-template-columns", "minmax(0, 1fr)")
		}
	}
	if v.Transition != "" {
		if name, ok := r.Lookup(CatAnimation, v.Transition); ok {
			add("transition", "all var("+name+")")
		} else {
			add("transition", Sanitize(v.Transition))
		}
	}
	writeRule(b, c.selector, decls)

	var hover []string
	addHover := func(prop, value string) {
		if value != "" {
			hover = append(hover, prop+": "+value)
		}
	}
	addHover("background", ref(CatColor, v.HoverBackground))
	addHover("color", ref(CatColor, v.HoverTextColor))
	addHover("box-shadow", ref(CatShadow, v.HoverShadow))
	addHover("transform", Sanitize(v.HoverTransform))
	writeRule(b, c.selector+":hover", hover)

	if cols := columns(v.Columns); cols != "" {
		fmt.Fprintf(b, "\n@media (min-width: 768px) {\n  %s {\n    grid-template-columns: %s;\n  }\n}\n", c.selector, cols)
	}
}

func writeRule(b *strings.Builder, selector string, decls []string) {
	if len(decls) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s {\n", selector)
	for _, d := range decls {
		fmt.Fprintf(b, "  %s;\n", d)
	}
	b.WriteString("}\n")
}

// columns expands a bare count to an equal-width track list. Any other
// value is used as a literal grid-template-columns value.
func columns(v string) string {
	v = Sanitize(v)
	if v == "" {
		return ""
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return fmt.Sprintf("repeat(%d, minmax(0, 1fr))", n)
	}
	return v
}
