package siteconfig

import "regexp"

// placeholderRe matches an unfilled template token such as {{COMPANY_NAME}}
// or {{FEATURE_1_TITLE}}.
var placeholderRe = regexp.MustCompile(`\{\{[A-Z][A-Z0-9_]*\}\}`)

// IsPlaceholder reports whether s still contains a template token.
func IsPlaceholder(s string) bool {
	return placeholderRe.MatchString(s)
}

// IsConfigured reports whether s holds a real value: non-empty and free of
// template tokens.
func IsConfigured(s string) bool {
	return s != "" && !IsPlaceholder(s)
}
