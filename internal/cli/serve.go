// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"landingkit/internal/cache"
	"landingkit/internal/config"
	"landingkit/internal/database"
	"landingkit/internal/handlers"
	"landingkit/internal/middleware"
	"landingkit/internal/notify"
	"landingkit/internal/payment"
	"landingkit/internal/render"
	"landingkit/internal/router"
	"landingkit/internal/siteconfig"
	"landingkit/internal/store"
	"landingkit/internal/telemetry"
	"landingkit/internal/validate"
	"landingkit/web"
)

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	site, err := loadSite(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, site)
}

// serve runs the HTTP server until ctx is cancelled, then drains
// connections and releases every collaborator.
func serve(ctx context.Context, cfg *config.Config, site *siteconfig.Site) error {
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	shutdownTracing, err := telemetry.Init(ctx, cfg.OTelEndpoint, cfg.OTelServiceName)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			slog.Warn("tracing shutdown failed", "error", err)
		}
	}()

	if rep := validate.Validate(site); rep.Outcome() == validate.Incomplete {
		slog.Warn("site document is incomplete, run landingkit validate",
			"issues", len(rep.Issues), "completion", rep.Completion())
	}

	renderer, err := render.New(site)
	if err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}

	apiOpts := handlers.APIOptions{PublicURL: cfg.PublicURL}

	// PostgreSQL lead storage (optional).
	if cfg.HasDatabase() {
		db, err := database.Connect(ctx, cfg.DSN())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		apiOpts.Leads = store.NewLeadStore(db)
	} else {
		slog.Warn("database not configured, leads will only be logged")
	}

	// Lead notification email (optional).
	email := site.Integrations.Email
	switch {
	case cfg.ResendAPIKey == "":
		slog.Warn("resend not configured, lead notifications disabled")
	case !siteconfig.IsConfigured(email.FromEmail) || !siteconfig.IsConfigured(email.NotificationEmail):
		slog.Warn("notification addresses not set in site document, lead notifications disabled")
	default:
		apiOpts.Notifier = notify.NewResend(notify.Config{
			APIKey:  cfg.ResendAPIKey,
			BaseURL: cfg.ResendBaseURL,
			From:    email.FromEmail,
			To:      email.NotificationEmail,
		})
	}

	// Stripe checkout (optional).
	if cfg.StripeSecretKey != "" {
		apiOpts.Checkout = payment.NewStripe(cfg.StripeSecretKey, cfg.StripeBaseURL)
	} else {
		slog.Warn("stripe not configured, checkout disabled")
	}

	// Valkey page cache (optional).
	var pageCache handlers.PageCache
	if cfg.HasCache() {
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return fmt.Errorf("connect to valkey: %w", err)
		}
		defer client.Close()
		pc := cache.NewPageCache(client, cache.DefaultPageTTL)
		if n := pc.PurgeStale(ctx, site.Fingerprint()); n > 0 {
			slog.Info("purged stale cached pages", "count", n)
		}
		pageCache = pc
	}

	api, err := handlers.NewAPI(site, apiOpts)
	if err != nil {
		return err
	}

	leadLimiter := middleware.NewRateLimiter(cfg.LeadRateLimit, time.Minute)
	defer leadLimiter.Stop()
	authLimiter := middleware.NewRateLimiter(cfg.LeadRateLimit, time.Minute)
	defer authLimiter.Stop()

	handler := router.New(router.Options{
		Public:      handlers.NewPublic(renderer, site.Fingerprint(), site.Company.Name, pageCache),
		API:         api,
		Static:      web.Static(),
		CORSOrigins: cfg.CORSOrigins,
		HSTS:        !cfg.IsDev(),
		TrustProxy:  cfg.TrustProxy,
		LeadLimiter: leadLimiter,
		AuthLimiter: authLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "public_url", cfg.PublicURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	sctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
