// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package validate reports which parts of a site document still hold
// template placeholders.
//
// Each check lands in exactly one of three lists: blocking issues, warnings,
// or satisfied items. Required content (company identity, hero copy, SEO)
// produces issues; optional integrations produce warnings. The outcome is
// three-way and maps to the CLI exit code: any issue fails, warnings alone
// are acceptable.
package validate

import (
	"fmt"
	"math"

	"landingkit/internal/siteconfig"
	"landingkit/internal/theme"
)

// Outcome is the overall verdict of a report.
type Outcome int

const (
	// Complete means no issues and no warnings.
	Complete Outcome = iota
	// Acceptable means warnings but no blocking issues.
	Acceptable
	// Incomplete means at least one blocking issue.
	Incomplete
)

func (o Outcome) String() string {
	switch o {
	case Complete:
		return "complete"
	case Acceptable:
		return "acceptable"
	default:
		return "incomplete"
	}
}

// ExitCode is the process exit status for the outcome.
func (o Outcome) ExitCode() int {
	if o == Incomplete {
		return 1
	}
	return 0
}

// Report is the result of validating one site document. It is produced on
// demand and never persisted.
type Report struct {
	Issues    []string `json:"issues"`
	Warnings  []string `json:"warnings"`
	Satisfied []string `json:"satisfied"`
}

// Total is the number of checks performed.
func (r *Report) Total() int {
	return len(r.Issues) + len(r.Warnings) + len(r.Satisfied)
}

// Completion is the share of satisfied checks as a rounded percentage.
func (r *Report) Completion() int {
	total := r.Total()
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(len(r.Satisfied)) / float64(total) * 100))
}

// Outcome classifies the report.
func (r *Report) Outcome() Outcome {
	switch {
	case len(r.Issues) > 0:
		return Incomplete
	case len(r.Warnings) > 0:
		return Acceptable
	default:
		return Complete
	}
}

func (r *Report) issue(format string, args ...any) {
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
}

func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Report) ok(format string, args ...any) {
	r.Satisfied = append(r.Satisfied, fmt.Sprintf(format, args...))
}

// required records a blocking issue when value is still a placeholder.
func (r *Report) required(label, value string) {
	if siteconfig.IsPlaceholder(value) {
		r.issue("%s is not configured", label)
	} else {
		r.ok("%s configured", label)
	}
}

// Validate checks s. It has no side effects.
func Validate(s *siteconfig.Site) *Report {
	r := &Report{
		Issues:    []string{},
		Warnings:  []string{},
		Satisfied: []string{},
	}

	checkCompany(r, s.Company)
	checkHero(r, s.Hero)
	checkFeatures(r, s.Features)
	checkPricing(r, s.Pricing)
	checkTestimonials(r, s.Testimonials)
	checkLeadForm(r, s.LeadForm)
	checkSEO(r, s.SEO)
	checkIntegrations(r, s.Integrations)
	checkSocial(r, s.Social)
	checkPages(r, s.Pages)
	checkTheme(r, s.Theme)

	return r
}

func checkCompany(r *Report, c siteconfig.Company) {
	for _, f := range []struct{ name, value string }{
		{"name", c.Name},
		{"tagline", c.Tagline},
		{"description", c.Description},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
	} {
		r.required("Company "+f.name, f.value)
	}
}

func checkHero(r *Report, h siteconfig.Hero) {
	r.required("Hero headline", h.Headline)
	r.required("Hero subheadline", h.Subheadline)
	r.required("Hero CTA button text", h.CTAButton.Text)
}

func checkFeatures(r *Report, features []siteconfig.Feature) {
	n := 0
	for _, f := range features {
		if !siteconfig.IsPlaceholder(f.Title) && !siteconfig.IsPlaceholder(f.Description) {
			n++
		}
	}
	switch {
	case n == 0:
		r.issue("No features are configured")
	case n < 3:
		r.warn("Only %d features configured (recommend 6)", n)
	default:
		r.ok("%d features configured", n)
	}
}

func checkPricing(r *Report, p siteconfig.Pricing) {
	configured, withPrice := 0, 0
	for _, plan := range p.Plans {
		if siteconfig.IsPlaceholder(plan.Name) || siteconfig.IsPlaceholder(plan.Price) {
			continue
		}
		configured++
		if siteconfig.IsConfigured(plan.StripePriceID) {
			withPrice++
		}
	}
	if configured == 0 {
		r.issue("No pricing plans are configured")
		return
	}
	r.ok("%d pricing plans configured", configured)
	if missing := configured - withPrice; missing > 0 {
		r.warn("%d plans missing Stripe price IDs", missing)
	}
}

func checkTestimonials(r *Report, ts []siteconfig.Testimonial) {
	n := 0
	for _, t := range ts {
		if !siteconfig.IsPlaceholder(t.Name) && !siteconfig.IsPlaceholder(t.Content) {
			n++
		}
	}
	if n == 0 {
		r.warn("No testimonials configured (optional but recommended)")
		return
	}
	r.ok("%d testimonials configured", n)
}

func checkLeadForm(r *Report, f siteconfig.LeadForm) {
	if siteconfig.IsPlaceholder(f.Title) {
		r.warn("Lead form title not configured")
		return
	}
	r.ok("Lead form configured")
}

func checkSEO(r *Report, s siteconfig.SEO) {
	r.required("SEO title", s.Title)
	r.required("SEO description", s.Description)
	r.required("SEO keywords", s.Keywords)
}

func checkIntegrations(r *Report, in siteconfig.Integrations) {
	if siteconfig.IsPlaceholder(in.Stripe.PublishableKey) {
		r.warn("Stripe publishable key not configured")
	} else {
		r.ok("Stripe publishable key configured")
	}

	if siteconfig.IsPlaceholder(in.Email.FromEmail) || siteconfig.IsPlaceholder(in.Email.NotificationEmail) {
		r.warn("Email addresses not configured")
	} else {
		r.ok("Email addresses configured")
	}

	if ga := in.GoogleAnalytics; ga.Enabled {
		if siteconfig.IsConfigured(ga.MeasurementID) {
			r.ok("Google Analytics configured")
		} else {
			r.warn("Google Analytics is enabled but has no measurement ID")
		}
	}
}

func checkSocial(r *Report, s siteconfig.Social) {
	n := 0
	for _, v := range []string{s.Twitter, s.Facebook, s.LinkedIn, s.Instagram, s.GitHub} {
		if siteconfig.IsConfigured(v) {
			n++
		}
	}
	if n == 0 {
		r.warn("No social media links configured (optional)")
		return
	}
	r.ok("%d social media links configured", n)
}

// builtinPaths are served before custom pages are consulted.
var builtinPaths = map[string]bool{"/": true, "/login": true, "/signup": true}

// checkPages flags paths the router can never reach: duplicates, where only
// the first declaration is served, and paths taken by built-in pages.
func checkPages(r *Report, pages []siteconfig.Page) {
	if len(pages) == 0 {
		return
	}
	seen := make(map[string]bool, len(pages))
	bad := false
	for _, p := range pages {
		switch {
		case builtinPaths[p.Path]:
			r.issue("Page path %s is shadowed by a built-in page", p.Path)
			bad = true
		case seen[p.Path]:
			r.issue("Page path %s is declared more than once", p.Path)
			bad = true
		}
		seen[p.Path] = true
	}
	if !bad {
		r.ok("%d custom pages configured", len(pages))
	}
}

func checkTheme(r *Report, t siteconfig.Theme) {
	refs := theme.Dangling(t)
	for _, ref := range refs {
		r.warn("Theme %s.%s refers to unknown token %q", ref.Component, ref.Field, ref.Value)
	}
	if len(refs) == 0 {
		r.ok("Theme references resolve")
	}
}
