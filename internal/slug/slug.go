// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives fragment identifiers from section headings so that
// pages can link to /about#meet-the-team.
package slug

import (
	"strconv"
	"strings"
	"unicode"
)

// Generate lowercases s, keeps letters and digits, turns runs of spaces and
// separators (- _ / | . :) into a single hyphen, and drops everything else.
// Example: "Meet the Team / 2026" → "meet-the-team-2026"
func Generate(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || strings.ContainsRune("-_/|.:", r):
			pendingHyphen = true
		}
	}
	return b.String()
}

// Set hands out anchors that are unique within one page. The zero value is
// ready to use.
type Set struct {
	seen map[string]int
}

// Anchor returns Generate(title), or fallback when that is empty, with a
// numeric suffix if the result was already issued: "faq", "faq-2".
func (s *Set) Anchor(title, fallback string) string {
	base := Generate(title)
	if base == "" {
		base = fallback
	}
	if s.seen == nil {
		s.seen = make(map[string]int)
	}
	s.seen[base]++
	if n := s.seen[base]; n > 1 {
		candidate := base + "-" + strconv.Itoa(n)
		for s.seen[candidate] > 0 {
			n++
			candidate = base + "-" + strconv.Itoa(n)
		}
		s.seen[candidate]++
		return candidate
	}
	return base
}
