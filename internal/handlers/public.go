// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"net/http"

	"landingkit/internal/render"
	"landingkit/internal/siteconfig"
)

// PageCache stores rendered pages keyed by document fingerprint and path.
type PageCache interface {
	Get(ctx context.Context, fingerprint, path string) ([]byte, bool)
	Set(ctx context.Context, fingerprint, path string, html []byte)
}

// Public serves the rendered site. It checks the page cache, when one is
// configured, before invoking the renderer and stores results on miss.
type Public struct {
	renderer    *render.Renderer
	fingerprint string
	pageCache   PageCache
	companyName string
}

// NewPublic creates the page handler group. pageCache may be nil.
func NewPublic(renderer *render.Renderer, fingerprint, companyName string, pageCache PageCache) *Public {
	return &Public{
		renderer:    renderer,
		fingerprint: fingerprint,
		pageCache:   pageCache,
		companyName: companyName,
	}
}

// Page renders the page at the request path: home, login, signup, or a
// configured custom page. Anything else is a 404.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	path := siteconfig.CleanPath(r.URL.Path)

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, p.fingerprint, path); ok {
			writeHTML(w, http.StatusOK, cached)
			return
		}
	}

	rendered, err := p.renderer.Render(path)
	if errors.Is(err, render.ErrNotFound) {
		p.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("render page failed", "error", err, "path", path)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, p.fingerprint, path, rendered)
	}
	writeHTML(w, http.StatusOK, rendered)
}

// NotFound answers with a small standalone 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	name := html.EscapeString(p.companyName)
	writeHTML(w, http.StatusNotFound, []byte(`<!DOCTYPE html>
<html lang="en"><head><meta charset="UTF-8"><title>Page Not Found - `+name+`</title>
<script src="https://cdn.tailwindcss.com"></script></head>
<body class="bg-gray-100 flex items-center justify-center min-h-screen">
<div class="text-center">
<h1 class="text-6xl font-bold text-gray-900">404</h1>
<p class="mt-2 text-gray-500">The page you are looking for does not exist.</p>
<a href="/" class="mt-4 inline-block text-indigo-600 hover:text-indigo-800">Back to `+name+`</a>
</div></body></html>`))
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
