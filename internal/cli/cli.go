// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cli provides the landingkit command-line interface: the HTTP
// server, the site document validator, the static exporter, and small
// operator helpers.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"landingkit/internal/config"
	"landingkit/internal/logger"
	"landingkit/internal/siteconfig"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// NewApp creates the CLI application. Exit codes are reported through
// cli.ExitCoder errors returned from Run; the caller decides how to exit.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "landingkit",
		Usage:   "Serve a configuration-driven SaaS landing site",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "site",
				Aliases: []string{"s"},
				Usage:   "path to the site document (default: embedded template)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text, json)",
			},
		},
		Action: serveCommand,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP server",
				Action: serveCommand,
			},
			{
				Name:  "validate",
				Usage: "Report unfilled placeholders in the site document",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print the report as JSON"},
				},
				Action: validateCommand,
			},
			{
				Name:  "export",
				Usage: "Render every page to a static directory tree",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "dist", Usage: "output directory"},
					&cli.BoolFlag{Name: "upload", Usage: "upload the exported tree to the S3 bucket"},
				},
				Action: exportCommand,
			},
			{
				Name:  "leads",
				Usage: "List recent lead submissions",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 20, Usage: "number of leads to show"},
				},
				Action: leadsCommand,
			},
			{
				Name:      "init",
				Usage:     "Write the template site document to start from",
				ArgsUsage: "[path]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "example", Usage: "write the filled-in example instead of the template"},
					&cli.BoolFlag{Name: "force", Usage: "overwrite an existing file"},
				},
				Action: initCommand,
			},
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// loadConfig reads process configuration, applies global flag overrides,
// and installs the logger.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if c.IsSet("site") {
		cfg.SiteConfig = c.String("site")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}

	if _, err := logger.New(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSite reads the site document named by the configuration.
func loadSite(cfg *config.Config) (*siteconfig.Site, error) {
	site, err := siteconfig.Load(cfg.SiteConfig)
	if err != nil {
		return nil, err
	}
	source := cfg.SiteConfig
	if source == "" {
		source = "embedded template"
	}
	slog.Debug("site document loaded", "source", source, "fingerprint", site.Fingerprint())
	return site, nil
}
