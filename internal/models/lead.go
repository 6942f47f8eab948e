// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead field names with dedicated storage columns. Any other schema field
// is kept only in Fields.
const (
	LeadName        = "name"
	LeadEmail       = "email"
	LeadCompany     = "company"
	LeadPhone       = "phone"
	LeadCompanySize = "company_size"
	LeadMessage     = "message"
)

// LeadField is one submitted value, labelled the way the form showed it.
type LeadField struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Lead is a contact-form submission. Fields follow the order of the
// configured form schema.
type Lead struct {
	ID        uuid.UUID   `json:"id"`
	Fields    []LeadField `json:"fields"`
	Source    string      `json:"source,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Value returns the submitted value for the named field, or "" when the
// field was not part of the submission.
func (l *Lead) Value(name string) string {
	for _, f := range l.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Values returns the submission as a name to value map.
func (l *Lead) Values() map[string]string {
	m := make(map[string]string, len(l.Fields))
	for _, f := range l.Fields {
		m[f.Name] = f.Value
	}
	return m
}
