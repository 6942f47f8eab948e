// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package siteconfig

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed default.yaml
	defaultDocument []byte

	//go:embed example.yaml
	exampleDocument []byte
)

// DefaultDocument returns the embedded template document. Every operator
// supplied value in it is a placeholder token.
func DefaultDocument() []byte {
	return bytes.Clone(defaultDocument)
}

// ExampleDocument returns a fully populated document for a fictional
// product. It validates without issues or warnings.
func ExampleDocument() []byte {
	return bytes.Clone(exampleDocument)
}

// Example parses ExampleDocument. It panics if the embedded document is
// invalid, which would be a build defect.
func Example() *Site {
	site, err := Parse(exampleDocument)
	if err != nil {
		panic("siteconfig: embedded example: " + err.Error())
	}
	return site
}

// Load reads the site document at path. An empty path loads the embedded
// template document.
func Load(path string) (*Site, error) {
	if path == "" {
		return Parse(defaultDocument)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site config: %w", err)
	}

	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Parse decodes a YAML site document. Unknown keys are rejected so a typo in
// the document fails at startup instead of silently rendering a default.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("site config is empty")
		}
		return nil, fmt.Errorf("decoding site config: %w", err)
	}

	if err := site.check(); err != nil {
		return nil, err
	}
	site.applyDefaults()

	sum := sha256.Sum256(data)
	site.fingerprint = hex.EncodeToString(sum[:8])

	return &site, nil
}

// check rejects documents the renderer cannot serve and normalises page
// paths to the form the router matches. Content completeness is the
// validator's concern, not the loader's.
func (s *Site) check() error {
	for i, p := range s.Pages {
		if !strings.HasPrefix(p.Path, "/") {
			return fmt.Errorf("pages[%d]: path %q must start with /", i, p.Path)
		}
		s.Pages[i].Path = CleanPath(p.Path)
		switch p.Content.Type {
		case "", ContentSections, ContentBlogList, ContentContactForm:
		default:
			return fmt.Errorf("pages[%d]: unknown content type %q", i, p.Content.Type)
		}
	}
	for i, f := range s.LeadForm.Fields {
		if f.Name == "" {
			return fmt.Errorf("leadForm.fields[%d]: name is required", i)
		}
		if f.Type != "" && !f.Type.valid() {
			return fmt.Errorf("leadForm.fields[%d]: unknown field type %q", i, f.Type)
		}
	}
	return nil
}

// CleanPath drops trailing slashes so "/about/" and "/about" name the same
// page. The root path stays "/".
func CleanPath(p string) string {
	if p = strings.TrimRight(p, "/"); p == "" {
		return "/"
	}
	return p
}

func (s *Site) applyDefaults() {
	if s.Company.Logo == "" {
		s.Company.Logo = "/static/logo.png"
	}
	if s.Company.Favicon == "" {
		s.Company.Favicon = "/static/favicon.ico"
	}

	if s.Pricing.BadgeText == "" {
		s.Pricing.BadgeText = "Most Popular"
	}
	for i := range s.Pricing.Plans {
		if s.Pricing.Plans[i].CTAText == "" {
			s.Pricing.Plans[i].CTAText = "Get Started"
		}
	}

	for i := range s.Testimonials {
		r := &s.Testimonials[i].Rating
		switch {
		case *r <= 0:
			*r = 5
		case *r > 5:
			*r = 5
		}
	}

	if s.Auth.RedirectURLs.Success == "" {
		s.Auth.RedirectURLs.Success = "/dashboard"
	}
	if s.Auth.RedirectURLs.Error == "" {
		s.Auth.RedirectURLs.Error = "/login?error=auth_failed"
	}

	if len(s.LeadForm.Fields) == 0 {
		s.LeadForm.Fields = DefaultLeadFields()
	}
	for i := range s.LeadForm.Fields {
		if s.LeadForm.Fields[i].Type == "" {
			s.LeadForm.Fields[i].Type = FieldText
		}
	}
	if s.LeadForm.SubmitButton == "" {
		s.LeadForm.SubmitButton = "Submit"
	}
	if s.LeadForm.SuccessMessage == "" {
		s.LeadForm.SuccessMessage = "Thanks! We'll be in touch soon."
	}

	if s.Integrations.Email.Provider == "" {
		s.Integrations.Email.Provider = "resend"
	}

	for i := range s.Pages {
		if s.Pages[i].Content.Type == "" {
			s.Pages[i].Content.Type = ContentSections
		}
	}

	s.Theme.applyDefaults()
}

// DefaultLeadFields is the lead form schema used when the document declares
// none.
func DefaultLeadFields() []FormField {
	return []FormField{
		{Name: "name", Label: "Full Name", Type: FieldText, Required: true, Placeholder: "John Doe"},
		{Name: "email", Label: "Work Email", Type: FieldEmail, Required: true, Placeholder: "john@company.com"},
		{Name: "company", Label: "Company Name", Type: FieldText, Required: true, Placeholder: "Acme Inc."},
		{Name: "phone", Label: "Phone Number", Type: FieldTel, Placeholder: "+1 (555) 123-4567"},
		{Name: "company_size", Label: "Company Size", Type: FieldSelect, Required: true, Options: []FieldOption{
			{Value: "1-10", Label: "1-10 employees"},
			{Value: "11-50", Label: "11-50 employees"},
			{Value: "51-200", Label: "51-200 employees"},
			{Value: "201-500", Label: "201-500 employees"},
			{Value: "501+", Label: "501+ employees"},
		}},
		{Name: "message", Label: "How can we help?", Type: FieldTextarea, Placeholder: "Tell us about your needs..."},
	}
}
