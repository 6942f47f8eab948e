// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"landingkit/internal/models"
	"landingkit/internal/siteconfig"
)

// sideEffectTimeout bounds lead persistence and notification. The bound is
// detached from the client request so a dropped connection does not cancel
// work that is already under way.
const sideEffectTimeout = 10 * time.Second

// LeadSink persists lead submissions.
type LeadSink interface {
	SaveLead(ctx context.Context, lead *models.Lead) error
}

// Notifier tells the site owner about a new lead.
type Notifier interface {
	NotifyLead(ctx context.Context, lead *models.Lead) error
}

// CheckoutProvider creates hosted checkout sessions.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
}

// APIOptions carries the optional collaborators. A nil collaborator disables
// the corresponding side effect or endpoint.
type APIOptions struct {
	Leads     LeadSink
	Notifier  Notifier
	Checkout  CheckoutProvider
	PublicURL string
}

// API groups the JSON endpoints under /api.
type API struct {
	site       *siteconfig.Site
	opts       APIOptions
	publicJSON []byte
}

// NewAPI creates the API handler group. The public configuration projection
// is encoded once here since the site document never changes.
func NewAPI(site *siteconfig.Site, opts APIOptions) (*API, error) {
	data, err := json.Marshal(site.Public())
	if err != nil {
		return nil, fmt.Errorf("encode public config: %w", err)
	}
	opts.PublicURL = strings.TrimRight(opts.PublicURL, "/")
	return &API{site: site, opts: opts, publicJSON: data}, nil
}

// Config serves the redacted configuration projection.
func (a *API) Config(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write(a.publicJSON)
}

// SubmitLead accepts a lead form submission as JSON or form data. Only
// names declared by the form schema are kept. Persistence and notification
// are best-effort: their failures are logged and the caller always sees the
// configured success message.
func (a *API) SubmitLead(w http.ResponseWriter, r *http.Request) {
	values, err := readPayload(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	lead := &models.Lead{
		ID:        uuid.New(),
		Source:    leadSource(r),
		CreatedAt: time.Now().UTC(),
	}
	var missing []string
	for _, field := range a.site.LeadForm.Fields {
		v := cleanLeadValue(values[field.Name])
		if v == "" && field.Required {
			missing = append(missing, field.Name)
		}
		lead.Fields = append(lead.Fields, models.LeadField{Name: field.Name, Label: field.Label, Value: v})
	}
	if len(missing) > 0 {
		slog.Warn("lead missing required fields", "lead_id", lead.ID, "fields", missing)
	}

	a.recordLead(r.Context(), lead)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": a.site.LeadForm.SuccessMessage,
	})
}

// recordLead runs the configured side effects concurrently and waits for
// both to finish or time out.
func (a *API) recordLead(ctx context.Context, lead *models.Lead) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	var wg sync.WaitGroup
	if a.opts.Leads != nil {
		wg.Go(func() {
			if err := a.opts.Leads.SaveLead(ctx, lead); err != nil {
				slog.Error("save lead failed", "error", err, "lead_id", lead.ID)
			}
		})
	}
	if a.opts.Notifier != nil {
		wg.Go(func() {
			if err := a.opts.Notifier.NotifyLead(ctx, lead); err != nil {
				slog.Error("lead notification failed", "error", err, "lead_id", lead.ID)
			}
		})
	}
	wg.Wait()
	slog.Info("lead received", "lead_id", lead.ID, "fields", len(lead.Fields))
}

// Signup is a placeholder that answers like a successful registration.
// No account is created; the response says so with "mock": true.
func (a *API) Signup(w http.ResponseWriter, r *http.Request) {
	if _, err := readPayload(w, r); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid request body"})
		return
	}
	slog.Warn("mock signup used, no account was created")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"mock":    true,
		"message": "Account created successfully",
		"userId":  "user_" + uuid.NewString(),
	})
}

// Login is a placeholder that answers like a successful sign-in. The token
// it returns is not a credential.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	values, err := readPayload(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid request body"})
		return
	}
	slog.Warn("mock login used, no credentials were checked")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"mock":    true,
		"token":   "mock_token_" + uuid.NewString(),
		"user": map[string]string{
			"email": strings.TrimSpace(values["email"]),
			"name":  "User",
		},
	})
}

// OAuth returns a handler for a third-party sign-in provider that is not
// integrated yet.
func (a *API) OAuth(provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotImplemented, map[string]any{
			"success": false,
			"error":   provider + " sign-in is not yet configured",
		})
	}
}

// Verify reports that token verification is unavailable.
func (a *API) Verify(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, map[string]any{
		"valid": false,
		"error": "Token verification is not yet configured",
	})
}

// CreateCheckoutSession asks the payment provider for a hosted checkout
// page for one of the configured plans.
func (a *API) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	if a.opts.Checkout == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"success": false,
			"error":   "Stripe not configured",
		})
		return
	}

	values, err := readPayload(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid request body"})
		return
	}

	req := models.CheckoutRequest{
		PriceID:    strings.TrimSpace(values["priceId"]),
		Email:      strings.TrimSpace(values["email"]),
		SuccessURL: a.opts.PublicURL + "/?checkout=success&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  a.opts.PublicURL + "/#pricing",
	}
	if msg := validatePriceID(req.PriceID, a.site.Pricing.Plans); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": msg})
		return
	}
	if msg := validateEmail(req.Email); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": msg})
		return
	}

	session, err := a.opts.Checkout.CreateCheckoutSession(r.Context(), req)
	if err != nil {
		slog.Error("create checkout session failed", "error", err, "price_id", req.PriceID)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"success": false,
			"error":   "Failed to create checkout session",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"sessionId": session.ID,
		"url":       session.URL,
	})
}

// StripeWebhook is a stub until subscription events are handled.
func (a *API) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, map[string]any{
		"received": false,
		"error":    "Webhook handling is not yet configured",
	})
}

// readPayload decodes a JSON object or a URL-encoded/multipart form into
// string values. Non-string JSON scalars are formatted; nested values are
// dropped.
func readPayload(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, err
		}
		return firstValues(r.PostForm), nil
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			values[k] = v
		case float64, bool:
			values[k] = fmt.Sprint(v)
		}
	}
	return values, nil
}

func firstValues(form url.Values) map[string]string {
	values := make(map[string]string, len(form))
	for k, v := range form {
		if len(v) > 0 {
			values[k] = v[0]
		}
	}
	return values
}

// leadSource records the page a lead was submitted from.
func leadSource(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" {
		return "api"
	}
	return ref.Path
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
