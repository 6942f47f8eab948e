// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package siteconfig

// Theme is the design token tree compiled into CSS custom properties.
// Component variants refer to tokens by key ("primary", "lg", "text.inverse");
// anything that is not a known key is used as a literal CSS value.
type Theme struct {
	Colors       Colors            `yaml:"colors"`
	Typography   Typography        `yaml:"typography"`
	Spacing      map[string]string `yaml:"spacing"`
	BorderRadius map[string]string `yaml:"borderRadius"`
	Shadows      map[string]string `yaml:"shadows"`
	Layout       Layout            `yaml:"layout"`
	Animation    map[string]string `yaml:"animation"`
	Components   Components        `yaml:"components"`
}

// Colors is the palette. Text colors live under a nested "text" table and
// are referenced as "text.<name>".
type Colors struct {
	Palette map[string]string `yaml:",inline"`
	Text    map[string]string `yaml:"text"`
}

// Typography holds font families and type scales.
type Typography struct {
	Fonts         Fonts             `yaml:"fonts"`
	FontSizes     map[string]string `yaml:"fontSizes"`
	FontWeights   map[string]string `yaml:"fontWeights"`
	LineHeights   map[string]string `yaml:"lineHeights"`
	LetterSpacing map[string]string `yaml:"letterSpacing"`
}

// Fonts are CSS font-family declarations.
type Fonts struct {
	Primary string `yaml:"primary"`
	Heading string `yaml:"heading"`
	Mono    string `yaml:"mono"`
}

// Layout holds page-level dimensions.
type Layout struct {
	MaxWidth     string `yaml:"maxWidth"`
	HeaderHeight string `yaml:"headerHeight"`
	NavPosition  string `yaml:"navPosition"`
}

// Components holds per-component style variants. Buttons and Cards are open
// registries: every declared name becomes a generated class.
type Components struct {
	Buttons         map[string]Variant `yaml:"buttons"`
	Cards           map[string]Variant `yaml:"cards"`
	Navbar          Variant            `yaml:"navbar"`
	Footer          Variant            `yaml:"footer"`
	Forms           Variant            `yaml:"forms"`
	Hero            Variant            `yaml:"hero"`
	FeatureGrid     Variant            `yaml:"featureGrid"`
	PricingGrid     Variant            `yaml:"pricingGrid"`
	TestimonialGrid Variant            `yaml:"testimonialGrid"`
}

// Variant is the uniform style record shared by every component. Empty
// fields produce no declaration.
type Variant struct {
	Background      string `yaml:"background"`
	HoverBackground string `yaml:"hoverBackground"`
	TextColor       string `yaml:"textColor"`
	HoverTextColor  string `yaml:"hoverTextColor"`
	BorderRadius    string `yaml:"borderRadius"`
	Padding         string `yaml:"padding"`
	FontSize        string `yaml:"fontSize"`
	FontWeight      string `yaml:"fontWeight"`
	Shadow          string `yaml:"shadow"`
	HoverShadow     string `yaml:"hoverShadow"`
	Border          string `yaml:"border"`
	BorderColor     string `yaml:"borderColor"`
	Gap             string `yaml:"gap"`
	Columns         string `yaml:"columns"`
	HoverTransform  string `yaml:"hoverTransform"`
	Transition      string `yaml:"transition"`
}

// IsZero reports whether no field of the variant is set.
func (v Variant) IsZero() bool {
	return v == Variant{}
}

// DefaultTheme returns the built-in token set. Load merges it under the
// document's theme so a site only declares the tokens it changes.
func DefaultTheme() Theme {
	return Theme{
		Colors: Colors{
			Palette: map[string]string{
				"primary":     "#667eea",
				"primaryDark": "#764ba2",
				"secondary":   "#f093fb",
				"success":     "#10b981",
				"error":       "#ef4444",
				"warning":     "#f59e0b",
				"background":  "#ffffff",
				"surface":     "#f9fafb",
				"border":      "#e5e7eb",
			},
			Text: map[string]string{
				"primary":   "#111827",
				"secondary": "#4b5563",
				"light":     "#9ca3af",
				"inverse":   "#ffffff",
			},
		},
		Typography: Typography{
			Fonts: Fonts{
				Primary: "'Inter', sans-serif",
				Heading: "'Poppins', sans-serif",
				Mono:    "'Fira Code', monospace",
			},
			FontSizes: map[string]string{
				"xs": "0.75rem", "sm": "0.875rem", "base": "1rem", "lg": "1.125rem",
				"xl": "1.25rem", "2xl": "1.5rem", "3xl": "1.875rem", "4xl": "2.25rem", "5xl": "3rem",
			},
			FontWeights: map[string]string{
				"normal": "400", "medium": "500", "semibold": "600", "bold": "700", "extrabold": "800",
			},
			LineHeights: map[string]string{
				"tight": "1.25", "normal": "1.5", "relaxed": "1.75",
			},
			LetterSpacing: map[string]string{
				"tight": "-0.025em", "normal": "0", "wide": "0.025em",
			},
		},
		Spacing: map[string]string{
			"xs": "0.25rem", "sm": "0.5rem", "md": "1rem", "lg": "1.5rem",
			"xl": "2rem", "2xl": "3rem", "3xl": "4rem",
		},
		BorderRadius: map[string]string{
			"none": "0", "sm": "0.25rem", "md": "0.5rem", "lg": "0.75rem",
			"xl": "1rem", "2xl": "1.5rem", "full": "9999px",
		},
		Shadows: map[string]string{
			"sm": "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			"md": "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
			"lg": "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
			"xl": "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
		},
		Layout: Layout{
			MaxWidth:     "1280px",
			HeaderHeight: "64px",
			NavPosition:  "fixed",
		},
		Animation: map[string]string{
			"fast":   "150ms ease-in-out",
			"normal": "300ms ease-in-out",
			"slow":   "500ms ease-in-out",
		},
		Components: Components{
			Buttons: map[string]Variant{
				"primary": {
					Background: "primary", HoverBackground: "primaryDark", TextColor: "text.inverse",
					BorderRadius: "lg", Padding: "0.75rem 1.5rem", FontSize: "base", FontWeight: "semibold",
					Shadow: "md", HoverShadow: "lg", HoverTransform: "translateY(-2px)", Transition: "normal",
				},
				"secondary": {
					Background: "transparent", HoverBackground: "surface", TextColor: "primary",
					BorderRadius: "lg", Padding: "0.75rem 1.5rem", FontSize: "base", FontWeight: "semibold",
					Border: "2px solid", BorderColor: "primary", HoverTransform: "translateY(-2px)", Transition: "normal",
				},
				"light": {
					Background: "background", HoverBackground: "surface", TextColor: "primary",
					BorderRadius: "lg", Padding: "1rem 2rem", FontSize: "lg", FontWeight: "semibold",
					Shadow: "md", HoverShadow: "xl", Transition: "normal",
				},
			},
			Cards: map[string]Variant{
				"default": {
					Background: "surface", BorderRadius: "xl", Padding: "xl", Shadow: "sm",
					HoverShadow: "xl", HoverTransform: "translateY(-4px)", Transition: "normal",
				},
				"highlighted": {
					Background: "background", BorderRadius: "xl", Padding: "xl", Shadow: "lg",
					Border: "4px solid", BorderColor: "primary", HoverShadow: "xl", Transition: "normal",
				},
			},
			Navbar: Variant{Background: "background", TextColor: "text.secondary", Shadow: "sm"},
			Footer: Variant{Background: "#111827", TextColor: "text.light", Padding: "3rem 0"},
			Forms: Variant{
				Background: "background", TextColor: "text.primary", Border: "1px solid", BorderColor: "border",
				BorderRadius: "lg", Padding: "0.75rem 1rem", FontSize: "base",
			},
			Hero: Variant{
				Background: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
				TextColor:  "text.inverse", Padding: "8rem 0 5rem",
			},
			FeatureGrid:     Variant{Columns: "3", Gap: "xl"},
			PricingGrid:     Variant{Columns: "3", Gap: "xl"},
			TestimonialGrid: Variant{Columns: "3", Gap: "xl"},
		},
	}
}

// applyDefaults fills every token the document left out.
func (t *Theme) applyDefaults() {
	d := DefaultTheme()

	t.Colors.Palette = mergeTokens(t.Colors.Palette, d.Colors.Palette)
	t.Colors.Text = mergeTokens(t.Colors.Text, d.Colors.Text)

	fonts := &t.Typography.Fonts
	fonts.Primary = orDefault(fonts.Primary, d.Typography.Fonts.Primary)
	fonts.Heading = orDefault(fonts.Heading, d.Typography.Fonts.Heading)
	fonts.Mono = orDefault(fonts.Mono, d.Typography.Fonts.Mono)
	t.Typography.FontSizes = mergeTokens(t.Typography.FontSizes, d.Typography.FontSizes)
	t.Typography.FontWeights = mergeTokens(t.Typography.FontWeights, d.Typography.FontWeights)
	t.Typography.LineHeights = mergeTokens(t.Typography.LineHeights, d.Typography.LineHeights)
	t.Typography.LetterSpacing = mergeTokens(t.Typography.LetterSpacing, d.Typography.LetterSpacing)

	t.Spacing = mergeTokens(t.Spacing, d.Spacing)
	t.BorderRadius = mergeTokens(t.BorderRadius, d.BorderRadius)
	t.Shadows = mergeTokens(t.Shadows, d.Shadows)
	t.Animation = mergeTokens(t.Animation, d.Animation)

	t.Layout.MaxWidth = orDefault(t.Layout.MaxWidth, d.Layout.MaxWidth)
	t.Layout.HeaderHeight = orDefault(t.Layout.HeaderHeight, d.Layout.HeaderHeight)
	t.Layout.NavPosition = orDefault(t.Layout.NavPosition, d.Layout.NavPosition)

	// Variant registries are replaced, not merged: a site that declares its
	// own buttons gets exactly those classes.
	c := &t.Components
	if len(c.Buttons) == 0 {
		c.Buttons = d.Components.Buttons
	}
	if len(c.Cards) == 0 {
		c.Cards = d.Components.Cards
	}
	for _, pair := range []struct {
		v   *Variant
		def Variant
	}{
		{&c.Navbar, d.Components.Navbar},
		{&c.Footer, d.Components.Footer},
		{&c.Forms, d.Components.Forms},
		{&c.Hero, d.Components.Hero},
		{&c.FeatureGrid, d.Components.FeatureGrid},
		{&c.PricingGrid, d.Components.PricingGrid},
		{&c.TestimonialGrid, d.Components.TestimonialGrid},
	} {
		if pair.v.IsZero() {
			*pair.v = pair.def
		}
	}
}

// mergeTokens returns doc with every missing key filled from defaults.
func mergeTokens(doc, defaults map[string]string) map[string]string {
	out := make(map[string]string, len(doc)+len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
