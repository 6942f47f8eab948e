// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme compiles a site's design tokens into CSS.
//
// Every token is flattened into a custom property named
// --<category>-<kebab key> ("primaryDark" in colors becomes
// --color-primary-dark, "text.inverse" becomes --color-text-inverse).
// Component variants refer to tokens by key; a reference that names a known
// token compiles to var(--...), anything else is emitted as a literal CSS
// value. Unknown references never fail compilation; Dangling reports them so
// the validator can warn about likely typos.
//
// Compile is a pure function of its input. Maps are always walked in sorted
// key order so the same theme produces byte-identical output.
package theme

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"landingkit/internal/siteconfig"
)

// Category is a token table. It is also the custom property prefix.
type Category string

const (
	CatColor         Category = "color"
	CatFont          Category = "font"
	CatFontSize      Category = "font-size"
	CatFontWeight    Category = "font-weight"
	CatLineHeight    Category = "line-height"
	CatLetterSpacing Category = "letter-spacing"
	CatRadius        Category = "radius"
	CatShadow        Category = "shadow"
	CatSpacing       Category = "spacing"
	CatLayout        Category = "layout"
	CatAnimation     Category = "animation"
)

// Property is one flattened custom property.
type Property struct {
	Name  string // including the leading "--"
	Value string
}

// table is one category's tokens keyed by their document key.
type table struct {
	cat    Category
	tokens map[string]string
}

// tables returns every token category in emission order.
func tables(t siteconfig.Theme) []table {
	text := make(map[string]string, len(t.Colors.Text))
	for k, v := range t.Colors.Text {
		text["text."+k] = v
	}
	colors := make(map[string]string, len(t.Colors.Palette)+len(text))
	for k, v := range t.Colors.Palette {
		colors[k] = v
	}
	for k, v := range text {
		colors[k] = v
	}

	fonts := map[string]string{}
	for k, v := range map[string]string{
		"primary": t.Typography.Fonts.Primary,
		"heading": t.Typography.Fonts.Heading,
		"mono":    t.Typography.Fonts.Mono,
	} {
		if v != "" {
			fonts[k] = v
		}
	}

	layout := map[string]string{}
	for k, v := range map[string]string{
		"maxWidth":     t.Layout.MaxWidth,
		"headerHeight": t.Layout.HeaderHeight,
		"navPosition":  t.Layout.NavPosition,
	} {
		if v != "" {
			layout[k] = v
		}
	}

	return []table{
		{CatColor, colors},
		{CatFont, fonts},
		{CatFontSize, t.Typography.FontSizes},
		{CatFontWeight, t.Typography.FontWeights},
		{CatLineHeight, t.Typography.LineHeights},
		{CatLetterSpacing, t.Typography.LetterSpacing},
		{CatRadius, t.BorderRadius},
		{CatShadow, t.Shadows},
		{CatSpacing, t.Spacing},
		{CatLayout, layout},
		{CatAnimation, t.Animation},
	}
}

// Resolver maps symbolic references to custom properties.
type Resolver struct {
	names map[Category]map[string]string
}

// NewResolver indexes every token of t. Each key is reachable by its
// document spelling and by its kebab-case form.
func NewResolver(t siteconfig.Theme) *Resolver {
	r := &Resolver{names: make(map[Category]map[string]string)}
	for _, tb := range tables(t) {
		m := make(map[string]string, len(tb.tokens)*2)
		for key := range tb.tokens {
			name := propertyName(tb.cat, key)
			if name == "" {
				continue
			}
			m[key] = name
			m[kebab(key)] = name
		}
		r.names[tb.cat] = m
	}
	return r
}

// Lookup returns the custom property name for ref in the given category.
func (r *Resolver) Lookup(cat Category, ref string) (string, bool) {
	name, ok := r.names[cat][strings.TrimSpace(ref)]
	return name, ok
}

// Resolve returns var(--...) for a known reference and the sanitised
// literal otherwise.
func (r *Resolver) Resolve(cat Category, ref string) string {
	if name, ok := r.Lookup(cat, ref); ok {
		return "var(" + name + ")"
	}
	return Sanitize(ref)
}

// Properties flattens t into custom properties in emission order.
func Properties(t siteconfig.Theme) []Property {
	var props []Property
	for _, tb := range tables(t) {
		for _, key := range sortedKeys(tb.tokens) {
			name := propertyName(tb.cat, key)
			v := Sanitize(tb.tokens[key])
			if name == "" || v == "" {
				continue
			}
			props = append(props, Property{Name: name, Value: v})
		}
	}
	return props
}

// propertyName is the custom property for key, or "" when key has no
// characters usable in a property name.
func propertyName(cat Category, key string) string {
	k := kebab(key)
	if k == "" {
		return ""
	}
	return "--" + string(cat) + "-" + k
}

// kebab converts "primaryDark" to "primary-dark" and "text.inverse" to
// "text-inverse". Keys that are already kebab-case are unchanged. Anything
// outside [a-z0-9-] is dropped, so the result is safe inside a style block.
func kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		switch {
		case r == '.' || r == '_' || r == ' ':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Sanitize strips characters that could end a declaration or the enclosing
// style element. Token values are configuration, not trusted CSS.
func Sanitize(v string) string {
	v = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '{', '}', ';', '\\', '\n', '\r':
			return -1
		}
		return r
	}, v)
	return strings.TrimSpace(v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reference is a variant field whose value looks like a token key but does
// not name one.
type Reference struct {
	Component string // e.g. "buttons.primary", "navbar"
	Field     string // e.g. "background"
	Value     string
}

var (
	identRe    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*([.-][A-Za-z0-9]+)*$`)
	sizeNameRe = regexp.MustCompile(`^[0-9]+x[sl]$`)
)

// keywords are bare identifiers that are valid CSS values on their own.
var keywords = map[string]bool{
	"transparent": true, "currentcolor": true, "inherit": true, "initial": true,
	"unset": true, "revert": true, "none": true, "auto": true, "normal": true,
	"white": true, "black": true, "bold": true, "bolder": true, "lighter": true,
	"ease": true, "linear": true, "ease-in": true, "ease-out": true, "ease-in-out": true,
}

// Dangling reports every symbolic-looking variant reference that does not
// resolve. Literals such as hex colors, lengths, gradients, and CSS keywords
// are not reported.
func Dangling(t siteconfig.Theme) []Reference {
	r := NewResolver(t)
	var refs []Reference
	for _, c := range components(t.Components) {
		for _, f := range refFields {
			v := strings.TrimSpace(f.get(c.variant))
			if v == "" || !symbolic(v) {
				continue
			}
			if _, ok := r.Lookup(f.cat, v); ok {
				continue
			}
			refs = append(refs, Reference{Component: c.key, Field: f.name, Value: v})
		}
	}
	return refs
}

func symbolic(v string) bool {
	if keywords[strings.ToLower(v)] {
		return false
	}
	return identRe.MatchString(v) || sizeNameRe.MatchString(v)
}
