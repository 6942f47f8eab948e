// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns the site document into complete HTML pages.
//
// Templates are embedded and parsed once by New. Pages that share the site
// chrome (home and custom pages) are paired with base.html, which wraps a
// "content" block with the navigation bar and footer. Login and signup are
// standalone documents that only reuse the <head> partial. All values are
// escaped by html/template; the only trusted fragments are the compiled
// theme CSS, the Tailwind config statement, and sanitised markdown.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"landingkit/internal/markdown"
	"landingkit/internal/siteconfig"
	"landingkit/internal/slug"
	"landingkit/internal/theme"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// ErrNotFound is returned by Render for a path that is neither a built-in
// page nor a configured custom page.
var ErrNotFound = errors.New("page not found")

// Built-in page paths.
const (
	PathHome   = "/"
	PathLogin  = "/login"
	PathSignup = "/signup"
)

// standaloneTemplates render as full documents without base.html.
var standaloneTemplates = map[string]bool{
	"login":  true,
	"signup": true,
}

// Renderer renders pages for one site. It is safe for concurrent use.
type Renderer struct {
	site      *siteconfig.Site
	style     *theme.Stylesheet
	templates map[string]*template.Template
}

// New compiles the site's theme and parses every page template.
func New(site *siteconfig.Site) (*Renderer, error) {
	rn := &Renderer{
		site:      site,
		style:     theme.Compile(site.Theme),
		templates: make(map[string]*template.Template),
	}

	funcMap := template.FuncMap{
		// priceID hides unfilled price identifiers so the client reports
		// that checkout is not configured instead of posting a token.
		"priceID": func(id string) string {
			if siteconfig.IsConfigured(id) {
				return id
			}
			return ""
		},
		"avatar": func(image, name string) string {
			if image != "" {
				return image
			}
			return avatarFallback(name)
		},
		"avatarFallback": avatarFallback,
		"stars": func(n int) []struct{} {
			if n < 0 {
				n = 0
			}
			return make([]struct{}, n)
		},
		"leadForm": func(id string, form siteconfig.LeadForm) formView {
			return formView{ID: id, Form: form}
		},
	}

	for _, name := range []string{"home", "page", "login", "signup"} {
		files := []string{"templates/site/partials.html", "templates/site/" + name + ".html"}
		root := name + ".html"
		if !standaloneTemplates[name] {
			files = append(files, "templates/site/base.html")
			root = "base.html"
		}

		tmpl, err := template.New(root).Funcs(funcMap).ParseFS(siteFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		rn.templates[name] = tmpl
	}

	return rn, nil
}

// Stylesheet returns the compiled theme.
func (rn *Renderer) Stylesheet() *theme.Stylesheet {
	return rn.style
}

// Render returns the complete HTML document for path. Unknown paths return
// ErrNotFound and no output.
func (rn *Renderer) Render(path string) ([]byte, error) {
	switch path {
	case PathHome:
		v := rn.baseView(rn.site.SEO.Title)
		v.Keywords = rn.site.SEO.Keywords
		v.OGImage = rn.site.SEO.OGImage
		return rn.execute("home", v)
	case PathLogin:
		return rn.execute("login", rn.baseView("Login - "+rn.site.Company.Name))
	case PathSignup:
		return rn.execute("signup", rn.baseView("Sign Up - "+rn.site.Company.Name))
	}

	page, ok := rn.site.FindPage(path)
	if !ok {
		return nil, ErrNotFound
	}

	v := rn.baseView(page.Title + " - " + rn.site.Company.Name)
	v.Page = page
	sections, err := buildSections(page.Content.Sections)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", path, err)
	}
	v.Sections = sections
	return rn.execute("page", v)
}

// Paths lists every renderable path: the built-in pages followed by custom
// pages in declaration order. A custom page shadowed by a built-in or by an
// earlier page with the same path is listed once.
func (rn *Renderer) Paths() []string {
	paths := []string{PathHome, PathLogin, PathSignup}
	seen := map[string]bool{PathHome: true, PathLogin: true, PathSignup: true}
	for _, p := range rn.site.Pages {
		if !seen[p.Path] {
			seen[p.Path] = true
			paths = append(paths, p.Path)
		}
	}
	return paths
}

func (rn *Renderer) execute(name string, v *view) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	root := "base.html"
	if standaloneTemplates[name] {
		root = name + ".html"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, root, v); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// view is the data passed to every page template.
type view struct {
	Site        *siteconfig.Site
	Title       string
	Description string
	Keywords    string
	OGImage     string
	Style       template.CSS
	Tailwind    template.JS
	Fonts       []string
	NavClass    string
	Nav         []navLink
	Social      []siteconfig.SocialLink
	AnalyticsID string
	StripeKey   string

	// Custom pages only.
	Page     *siteconfig.Page
	Sections []sectionView
}

type navLink struct {
	Text string
	URL  string
}

type formView struct {
	ID   string
	Form siteconfig.LeadForm
}

type sectionView struct {
	siteconfig.Section
	Anchor     string
	Paragraphs []string
	HTML       template.HTML
}

func (rn *Renderer) baseView(title string) *view {
	s := rn.site
	v := &view{
		Site:        s,
		Title:       title,
		Description: s.SEO.Description,
		Style:       template.CSS(rn.style.CSS),
		Tailwind:    template.JS(rn.style.Tailwind),
		Fonts:       rn.style.FontImports,
		NavClass:    rn.style.NavClass,
		Nav:         navigation(s),
		Social:      configuredSocial(s.Social),
	}
	if ga := s.Integrations.GoogleAnalytics; ga.Enabled && siteconfig.IsConfigured(ga.MeasurementID) {
		v.AnalyticsID = ga.MeasurementID
	}
	if key := s.Integrations.Stripe.PublishableKey; siteconfig.IsConfigured(key) {
		v.StripeKey = key
	}
	return v
}

// navigation is the fixed anchors followed by in-menu pages in declaration
// order.
func navigation(s *siteconfig.Site) []navLink {
	links := []navLink{
		{Text: "Home", URL: "/"},
		{Text: "Features", URL: "/#features"},
		{Text: "Pricing", URL: "/#pricing"},
	}
	for _, p := range s.MenuPages() {
		links = append(links, navLink{Text: p.Title, URL: p.Path})
	}
	return links
}

// configuredSocial drops links that still hold placeholders.
func configuredSocial(s siteconfig.Social) []siteconfig.SocialLink {
	var out []siteconfig.SocialLink
	for _, l := range s.Links() {
		if siteconfig.IsConfigured(l.URL) {
			out = append(out, l)
		}
	}
	return out
}

func buildSections(sections []siteconfig.Section) ([]sectionView, error) {
	views := make([]sectionView, 0, len(sections))
	var anchors slug.Set
	for i, sec := range sections {
		sv := sectionView{Section: sec, Anchor: anchors.Anchor(sec.Title, fmt.Sprintf("section-%d", i+1))}
		switch sec.Type {
		case siteconfig.SectionText:
			sv.Paragraphs = paragraphs(sec.Content)
		case siteconfig.SectionMarkdown:
			html, err := markdown.ToHTML(sec.Content)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", sec.Title, err)
			}
			sv.HTML = html
		}
		views = append(views, sv)
	}
	return views, nil
}

// paragraphs splits text content on line breaks, dropping blank lines.
func paragraphs(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// avatarFallback is a generated initials avatar for name.
func avatarFallback(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&size=128"
}
