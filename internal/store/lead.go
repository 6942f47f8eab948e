// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists leads in PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"landingkit/internal/models"
)

// LeadStore handles lead database operations.
type LeadStore struct {
	db *sql.DB
}

// NewLeadStore creates a new LeadStore with the given database connection.
func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{db: db}
}

// SaveLead inserts a lead. The well-known fields go to their own columns;
// the full ordered submission is stored as JSON. A missing ID or creation
// time is filled in.
func (s *LeadStore) SaveLead(ctx context.Context, lead *models.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	fields, err := json.Marshal(lead.Fields)
	if err != nil {
		return fmt.Errorf("encode lead fields: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO leads (id, name, email, company, phone, company_size, message, fields, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		lead.ID,
		lead.Value(models.LeadName),
		lead.Value(models.LeadEmail),
		lead.Value(models.LeadCompany),
		lead.Value(models.LeadPhone),
		lead.Value(models.LeadCompanySize),
		lead.Value(models.LeadMessage),
		string(fields),
		lead.Source,
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// Recent returns up to limit leads, newest first.
func (s *LeadStore) Recent(ctx context.Context, limit int) ([]models.Lead, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, fields, source, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var (
			l      models.Lead
			fields []byte
		)
		if err := rows.Scan(&l.ID, &fields, &l.Source, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		if err := json.Unmarshal(fields, &l.Fields); err != nil {
			return nil, fmt.Errorf("decode lead %s fields: %w", l.ID, err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// Count returns the number of stored leads.
func (s *LeadStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}
