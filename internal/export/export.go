// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export writes the rendered site to a directory tree that any
// static file host can serve, and optionally uploads it to a bucket.
//
// Each page path becomes <path>/index.html, the public configuration is
// written to api/config.json, and browser assets go under static/.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"landingkit/internal/render"
	"landingkit/internal/siteconfig"
)

// Uploader stores one exported file under key.
type Uploader interface {
	Upload(ctx context.Context, key, contentType, cacheControl string, body io.Reader, size int64) error
}

// Options controls an export run.
type Options struct {
	OutDir string
	Static fs.FS    // assets copied to static/; may be nil
	Upload Uploader // nil skips the upload step
	Logger *slog.Logger
}

// Result lists the files written, as slash-separated paths relative to the
// output directory, in write order.
type Result struct {
	Files    []string
	Written  int // files whose content changed
	Uploaded int
}

// Export renders every page of site into opts.OutDir.
func Export(ctx context.Context, rn *render.Renderer, site *siteconfig.Site, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.OutDir == "" {
		return nil, fmt.Errorf("export: output directory is required")
	}

	res := &Result{}
	write := func(rel string, data []byte) error {
		changed, err := writeFileIfChanged(filepath.Join(opts.OutDir, filepath.FromSlash(rel)), data)
		if err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		if changed {
			res.Written++
			logger.Debug("file written", "path", rel)
		}
		res.Files = append(res.Files, rel)
		return nil
	}

	for _, p := range rn.Paths() {
		rel, err := pageFile(p)
		if err != nil {
			return nil, err
		}
		html, err := rn.Render(p)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", p, err)
		}
		if err := write(rel, html); err != nil {
			return nil, err
		}
	}

	cfg, err := json.MarshalIndent(site.Public(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode public config: %w", err)
	}
	if err := write("api/config.json", cfg); err != nil {
		return nil, err
	}

	if opts.Static != nil {
		err := fs.WalkDir(opts.Static, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			data, err := fs.ReadFile(opts.Static, p)
			if err != nil {
				return err
			}
			return write(path.Join("static", p), data)
		})
		if err != nil {
			return nil, fmt.Errorf("copy static assets: %w", err)
		}
	}

	logger.Info("site exported", "dir", opts.OutDir, "files", len(res.Files), "changed", res.Written)

	if opts.Upload == nil {
		return res, nil
	}
	for _, rel := range res.Files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		data, err := os.ReadFile(filepath.Join(opts.OutDir, filepath.FromSlash(rel)))
		if err != nil {
			return res, fmt.Errorf("read %s: %w", rel, err)
		}
		if err := opts.Upload.Upload(ctx, rel, contentType(rel), cacheControl(rel), bytes.NewReader(data), int64(len(data))); err != nil {
			return res, err
		}
		res.Uploaded++
	}
	logger.Info("site uploaded", "files", res.Uploaded)

	return res, nil
}

// pageFile maps a page path to its index.html location.
func pageFile(p string) (string, error) {
	clean := path.Clean("/" + p)
	if clean != p && clean+"/" != p {
		return "", fmt.Errorf("page path %q is not canonical", p)
	}
	if clean == "/" {
		return "index.html", nil
	}
	return strings.TrimPrefix(clean, "/") + "/index.html", nil
}

func contentType(rel string) string {
	if ct := mime.TypeByExtension(path.Ext(rel)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// cacheControl keeps pages fresh and lets assets be cached longer.
func cacheControl(rel string) string {
	if strings.HasPrefix(rel, "static/") {
		return "public, max-age=86400"
	}
	return "public, max-age=300"
}

// writeFileIfChanged writes content only when it differs from what is on
// disk, so re-exporting an unchanged site leaves file times alone.
func writeFileIfChanged(p string, content []byte) (bool, error) {
	if existing, err := os.ReadFile(p); err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return false, err
	}
	if err := os.WriteFile(p, content, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
