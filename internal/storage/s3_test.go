// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type recordedPut struct {
	path         string
	contentType  string
	cacheControl string
	acl          string
	body         string
}

// fakeS3 accepts PutObject and DeleteObject requests.
func fakeS3(t *testing.T, status int) (*httptest.Server, *[]recordedPut) {
	t.Helper()
	var mu sync.Mutex
	var puts []recordedPut
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(status)
			io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if r.Method == http.MethodPut {
			mu.Lock()
			puts = append(puts, recordedPut{
				path:         r.URL.Path,
				contentType:  r.Header.Get("Content-Type"),
				cacheControl: r.Header.Get("Cache-Control"),
				acl:          r.Header.Get("X-Amz-Acl"),
				body:         string(body),
			})
			mu.Unlock()
		}
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, &puts
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	c, err := New(context.Background(), Options{
		Endpoint:  endpoint + "/",
		Region:    "us-east-1",
		AccessKey: "AKIATEST",
		SecretKey: "secret",
		Bucket:    "site",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_RequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Options{Endpoint: "http://localhost"}); err == nil {
		t.Error("expected error for missing bucket")
	}
}

func TestUpload(t *testing.T) {
	srv, puts := fakeS3(t, http.StatusOK)
	c := newTestClient(t, srv.URL)

	html := "<!DOCTYPE html><title>x</title>"
	err := c.Upload(context.Background(), "about/index.html", "text/html; charset=utf-8", "public, max-age=300", strings.NewReader(html), int64(len(html)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if len(*puts) != 1 {
		t.Fatalf("puts: got %d, want 1", len(*puts))
	}
	got := (*puts)[0]
	if got.path != "/site/about/index.html" {
		t.Errorf("path: got %q, want path-style %q", got.path, "/site/about/index.html")
	}
	if got.contentType != "text/html; charset=utf-8" {
		t.Errorf("content-type: got %q", got.contentType)
	}
	if got.cacheControl != "public, max-age=300" {
		t.Errorf("cache-control: got %q", got.cacheControl)
	}
	if got.acl != "public-read" {
		t.Errorf("acl: got %q, want public-read", got.acl)
	}
	if !strings.Contains(got.body, html) {
		t.Errorf("body: got %q", got.body)
	}
}

func TestUpload_APIError(t *testing.T) {
	srv, _ := fakeS3(t, http.StatusForbidden)
	c := newTestClient(t, srv.URL)

	err := c.Upload(context.Background(), "index.html", "text/html", "", strings.NewReader("x"), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "AccessDenied") {
		t.Errorf("error should carry the S3 error code, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	srv, _ := fakeS3(t, http.StatusOK)
	c := newTestClient(t, srv.URL)
	if err := c.Delete(context.Background(), "old/index.html"); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestFileURL(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"public url", Options{Endpoint: "https://s3.example.com", PublicURL: "https://cdn.example.com/", Bucket: "site", AccessKey: "k"}, "https://cdn.example.com/index.html"},
		{"path style", Options{Endpoint: "https://s3.example.com/", Bucket: "site", AccessKey: "k"}, "https://s3.example.com/site/index.html"},
		{"aws", Options{Bucket: "site", AccessKey: "k", Region: "eu-west-1"}, "https://site.s3.amazonaws.com/index.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := c.FileURL("index.html"); got != tt.want {
				t.Errorf("FileURL: got %q, want %q", got, tt.want)
			}
		})
	}
}
