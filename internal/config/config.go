// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles process configuration loading from environment
// variables. The site document itself lives in package siteconfig; this
// package only covers where things run and which collaborators to reach.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFiles are loaded, in order, before the environment is read. Variables
// already set in the process environment win over file values.
var EnvFiles = []string{".env", ".dev.vars"}

// Config holds all process configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host      string
	Port      string
	Env       string // "development", "production", "testing"
	PublicURL string // base URL used for checkout return links

	// Site document path; empty selects the embedded template document.
	SiteConfig string

	LogLevel  string
	LogFormat string

	CORSOrigins   []string
	LeadRateLimit int // lead and auth submissions per client per minute

	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxy bool

	// PostgreSQL lead storage. Disabled when DBHost is empty.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey page cache. Disabled when ValkeyHost is empty.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Payment and notification providers.
	StripeSecretKey string
	StripeBaseURL   string
	ResendAPIKey    string
	ResendBaseURL   string

	// S3-compatible bucket for static exports. Disabled when S3Bucket is empty.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// OpenTelemetry trace export. Disabled when OTelEndpoint is empty.
	OTelEndpoint    string
	OTelServiceName string
}

// Load reads configuration from env files and environment variables,
// applying development defaults where appropriate. Returns an error if
// critical values are unsafe in production mode.
func Load() (*Config, error) {
	if err := loadEnvFiles(EnvFiles...); err != nil {
		return nil, err
	}

	rateLimit, err := strconv.Atoi(envOrDefault("LEAD_RATE_LIMIT", "10"))
	if err != nil {
		return nil, fmt.Errorf("LEAD_RATE_LIMIT: %w", err)
	}

	cfg := &Config{
		Host:      envOrDefault("APP_HOST", "0.0.0.0"),
		Port:      envOrDefault("APP_PORT", "8080"),
		Env:       envOrDefault("APP_ENV", "development"),
		PublicURL: os.Getenv("PUBLIC_URL"),

		SiteConfig: os.Getenv("SITE_CONFIG"),

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),

		CORSOrigins:   splitList(envOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		LeadRateLimit: rateLimit,
		TrustProxy:    os.Getenv("TRUST_PROXY") == "true",

		DBHost:     os.Getenv("POSTGRES_HOST"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "landingkit"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "landingkit"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripeBaseURL:   envOrDefault("STRIPE_BASE_URL", "https://api.stripe.com"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		ResendBaseURL:   envOrDefault("RESEND_BASE_URL", "https://api.resend.com"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		OTelEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTelServiceName: envOrDefault("OTEL_SERVICE_NAME", "landingkit"),
	}

	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://localhost:" + cfg.Port
	}
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")

	if cfg.Env == "production" && cfg.HasDatabase() && cfg.DBPassword == "changeme" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string. Credentials are escaped.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasDatabase reports whether lead storage is configured.
func (c *Config) HasDatabase() bool { return c.DBHost != "" }

// HasCache reports whether the Valkey page cache is configured.
func (c *Config) HasCache() bool { return c.ValkeyHost != "" }

// HasStorage reports whether export uploads can be made. Endpoint and keys
// are optional; without them the default AWS chain applies.
func (c *Config) HasStorage() bool { return c.S3Bucket != "" }

// loadEnvFiles loads each existing file into the environment. Missing files
// are skipped; malformed ones are errors.
func loadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
