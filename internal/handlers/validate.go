package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"landingkit/internal/siteconfig"
)

// Input limits for API payloads.
const (
	maxBodyBytes    = 64 << 10
	maxLeadValueLen = 5_000
	maxEmailLen     = 254
)

// cleanLeadValue trims a submitted value and caps its length.
func cleanLeadValue(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= maxLeadValueLen {
		return s
	}
	return string([]rune(s)[:maxLeadValueLen])
}

// validatePriceID checks a checkout price against the configured plans and
// returns the first error found.
func validatePriceID(id string, plans []siteconfig.Plan) string {
	id = strings.TrimSpace(id)
	if !siteconfig.IsConfigured(id) {
		return "A price ID is required."
	}
	for _, p := range plans {
		if p.StripePriceID == id {
			return ""
		}
	}
	return "Unknown price ID."
}

// validateEmail accepts an empty address; anything else must parse.
func validateEmail(email string) string {
	if email == "" {
		return ""
	}
	if len(email) > maxEmailLen {
		return "Email address is too long."
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "Email address is invalid."
	}
	return ""
}
