// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// landing page server. Routes are split into rendered pages and the JSON
// API under /api, each with its own middleware stack.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"landingkit/internal/handlers"
	"landingkit/internal/middleware"
)

// Options carries the handler groups and middleware settings.
type Options struct {
	Public *handlers.Public
	API    *handlers.API

	// Static is served under /static/. May be nil.
	Static fs.FS

	CORSOrigins []string
	HSTS        bool

	// TrustProxy rewrites RemoteAddr from forwarding headers. Leave it off
	// unless a proxy in front sets them, or clients can pick their own
	// rate-limit key.
	TrustProxy bool

	// LeadLimiter and AuthLimiter throttle form endpoints per client IP.
	// Either may be nil.
	LeadLimiter *middleware.RateLimiter
	AuthLimiter *middleware.RateLimiter
}

// New creates the router with every middleware and route wired up. The
// returned handler is instrumented for tracing.
func New(opts Options) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(opts.HSTS))

	r.Get("/health", healthHandler)

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(opts.Static)))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(opts.CORSOrigins))

		r.Get("/config", opts.API.Config)
		r.With(limit(opts.LeadLimiter)...).Post("/leads", opts.API.SubmitLead)

		r.Route("/auth", func(r chi.Router) {
			r.With(limit(opts.AuthLimiter)...).Post("/signup", opts.API.Signup)
			r.With(limit(opts.AuthLimiter)...).Post("/login", opts.API.Login)
			r.Post("/google", opts.API.OAuth("Google"))
			r.Post("/github", opts.API.OAuth("GitHub"))
			r.Get("/verify", opts.API.Verify)
		})

		r.Route("/stripe", func(r chi.Router) {
			r.Post("/create-checkout-session", opts.API.CreateCheckoutSession)
			r.Post("/webhook", opts.API.StripeWebhook)
		})

		// Unknown API paths answer in JSON rather than with an HTML page.
		r.NotFound(apiNotFound)
		r.MethodNotAllowed(apiMethodNotAllowed)
	})

	// Rendered pages. The catch-all resolves custom pages and 404s.
	r.Get("/", opts.Public.Page)
	r.Get("/login", opts.Public.Page)
	r.Get("/signup", opts.Public.Page)
	r.Get("/*", opts.Public.Page)
	r.NotFound(opts.Public.NotFound)

	return otelhttp.NewHandler(r, "landingkit",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

func limit(rl *middleware.RateLimiter) []func(http.Handler) http.Handler {
	if rl == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{rl.Middleware}
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"success":false,"error":"Not found"}`))
}

func apiMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"success":false,"error":"Method not allowed"}`))
}
