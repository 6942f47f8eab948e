package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"landingkit/internal/render"
	"landingkit/internal/siteconfig"
)

type memUploader struct {
	keys  []string
	types map[string]string
	err   error
}

func (m *memUploader) Upload(ctx context.Context, key, contentType, cacheControl string, body io.Reader, size int64) error {
	if m.err != nil {
		return m.err
	}
	data, _ := io.ReadAll(body)
	if int64(len(data)) != size {
		return errors.New("size mismatch")
	}
	m.keys = append(m.keys, key)
	m.types[key] = contentType
	return nil
}

func exportExample(t *testing.T, opts Options) *Result {
	t.Helper()
	site := siteconfig.Example()
	rn, err := render.New(site)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	res, err := Export(context.Background(), rn, site, opts)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	return res
}

func TestExport_WritesEveryPage(t *testing.T) {
	dir := t.TempDir()
	res := exportExample(t, Options{
		OutDir: dir,
		Static: fstest.MapFS{"app.js": {Data: []byte("// app")}},
	})

	for _, rel := range []string{
		"index.html",
		"login/index.html",
		"signup/index.html",
		"about/index.html",
		"blog/index.html",
		"contact/index.html",
		"careers/index.html",
		"api/config.json",
		"static/app.js",
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if res.Written != len(res.Files) {
		t.Errorf("first export: written %d, files %d", res.Written, len(res.Files))
	}

	about, _ := os.ReadFile(filepath.Join(dir, "about", "index.html"))
	if !strings.Contains(string(about), "<title>About Us - CloudFlow</title>") {
		t.Error("about page has wrong content")
	}

	var cfg map[string]any
	data, _ := os.ReadFile(filepath.Join(dir, "api", "config.json"))
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("config.json: %v", err)
	}
	if _, ok := cfg["seo"]; ok {
		t.Error("exported config should be the redacted projection")
	}
}

func TestExport_Idempotent(t *testing.T) {
	dir := t.TempDir()
	exportExample(t, Options{OutDir: dir})
	res := exportExample(t, Options{OutDir: dir})
	if res.Written != 0 {
		t.Errorf("second export rewrote %d files", res.Written)
	}
}

func TestExport_Upload(t *testing.T) {
	up := &memUploader{types: map[string]string{}}
	res := exportExample(t, Options{
		OutDir: t.TempDir(),
		Static: fstest.MapFS{"styles.css": {Data: []byte("body{}")}},
		Upload: up,
	})

	if res.Uploaded != len(res.Files) {
		t.Errorf("uploaded %d of %d files", res.Uploaded, len(res.Files))
	}
	if up.keys[0] != "index.html" {
		t.Errorf("first key: got %q, want index.html", up.keys[0])
	}
	if ct := up.types["index.html"]; !strings.HasPrefix(ct, "text/html") {
		t.Errorf("html content type: got %q", ct)
	}
	if ct := up.types["static/styles.css"]; !strings.HasPrefix(ct, "text/css") {
		t.Errorf("css content type: got %q", ct)
	}
}

func TestExport_UploadError(t *testing.T) {
	site := siteconfig.Example()
	rn, err := render.New(site)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	_, err = Export(context.Background(), rn, site, Options{
		OutDir: t.TempDir(),
		Upload: &memUploader{types: map[string]string{}, err: errors.New("denied")},
	})
	if err == nil || !strings.Contains(err.Error(), "denied") {
		t.Errorf("got %v, want upload error", err)
	}
}

func TestExport_RequiresOutDir(t *testing.T) {
	site := siteconfig.Example()
	rn, _ := render.New(site)
	if _, err := Export(context.Background(), rn, site, Options{}); err == nil {
		t.Error("expected error without output directory")
	}
}

func TestPageFile(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"/", "index.html", false},
		{"/about", "about/index.html", false},
		{"/docs/intro", "docs/intro/index.html", false},
		{"/about/", "about/index.html", false},
		{"/../etc", "", true},
		{"/a//b", "", true},
	}
	for _, tt := range tests {
		got, err := pageFile(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("pageFile(%q): err %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("pageFile(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
