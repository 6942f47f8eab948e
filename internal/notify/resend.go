// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify sends lead notification emails through the Resend API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"landingkit/internal/models"
)

// Config holds the Resend credentials and addresses.
type Config struct {
	APIKey  string
	BaseURL string
	From    string
	To      string
}

// Resend delivers lead notifications via POST /emails.
type Resend struct {
	config Config
	client *http.Client
}

// NewResend creates a Resend notifier.
func NewResend(cfg Config) *Resend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.resend.com"
	}
	return &Resend{
		config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Message is one outgoing email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

var leadTmpl = template.Must(template.New("lead").Parse(`<h2>New Lead Submission</h2>
{{- range .}}
<p><strong>{{.Label}}:</strong> {{if .Value}}{{.Value}}{{else}}N/A{{end}}</p>
{{- end}}
`))

// LeadMessage builds the notification for lead. Submitted values are
// HTML-escaped.
func LeadMessage(from, to string, lead *models.Lead) (Message, error) {
	var body bytes.Buffer
	if err := leadTmpl.Execute(&body, lead.Fields); err != nil {
		return Message{}, fmt.Errorf("render lead email: %w", err)
	}
	return Message{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("New Lead: %s from %s", lead.Value(models.LeadName), lead.Value(models.LeadCompany)),
		HTML:    body.String(),
	}, nil
}

// NotifyLead emails the configured notification address about lead.
func (r *Resend) NotifyLead(ctx context.Context, lead *models.Lead) error {
	msg, err := LeadMessage(r.config.From, r.config.To, lead)
	if err != nil {
		return err
	}
	return r.Send(ctx, msg)
}

// Send posts msg to the Resend API.
func (r *Resend) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("resend marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.config.BaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.config.APIKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}
