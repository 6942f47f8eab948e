package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"landingkit/internal/siteconfig"
	"landingkit/internal/validate"
)

// runApp runs the CLI with args from a scratch directory so no env files
// are picked up, and returns its output.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("SITE_CONFIG", "")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "text")

	var out bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"landingkit"}, args...))
	return out.String(), err
}

func writeSite(t *testing.T, doc []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}

func TestValidateCommand_Example(t *testing.T) {
	site := writeSite(t, siteconfig.ExampleDocument())
	out, err := runApp(t, "--site", site, "validate")

	if code := exitCode(err); code != 0 {
		t.Fatalf("exit code: got %d, want 0 (%v)", code, err)
	}
	for _, want := range []string{"VALIDATION RESULTS", "CONFIGURED ITEMS:", "COMPLETION: 100%", "Configuration COMPLETE"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "CRITICAL ISSUES") {
		t.Error("complete document should have no issues section")
	}
}

func TestValidateCommand_Template(t *testing.T) {
	out, err := runApp(t, "validate")

	if code := exitCode(err); code != 1 {
		t.Fatalf("exit code: got %d, want 1 (%v)", code, err)
	}
	if !strings.Contains(out, "CRITICAL ISSUES (must fix):") {
		t.Error("template document should list critical issues")
	}
	if !strings.Contains(out, "Configuration INCOMPLETE") {
		t.Error("template document should be reported incomplete")
	}
}

func TestValidateCommand_JSON(t *testing.T) {
	out, err := runApp(t, "validate", "--json")
	if code := exitCode(err); code != 1 {
		t.Fatalf("exit code: got %d, want 1", code)
	}

	var rep jsonReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if rep.Outcome != validate.Incomplete.String() {
		t.Errorf("outcome: got %q, want %q", rep.Outcome, validate.Incomplete.String())
	}
	if rep.Total != len(rep.Issues)+len(rep.Warnings)+len(rep.Configured) {
		t.Errorf("total %d does not match the three lists", rep.Total)
	}
	if len(rep.Issues) == 0 {
		t.Error("expected issues for the template document")
	}
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := runApp(t, "--site", "/does/not/exist.yaml", "validate")
	if err == nil {
		t.Fatal("expected error for missing site document")
	}
	if exitCode(err) == 0 {
		t.Error("missing document should not exit 0")
	}
}

func TestWriteReport_Acceptable(t *testing.T) {
	var buf bytes.Buffer
	writeReport(&buf, &validate.Report{
		Warnings:  []string{"No testimonials configured"},
		Satisfied: []string{"Company name configured", "Hero headline configured", "SEO title configured"},
	})
	out := buf.String()

	for _, want := range []string{"WARNINGS (recommended to fix):", "No testimonials configured", "COMPLETION: 75% (3/4)", "ACCEPTABLE"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportCommand(t *testing.T) {
	site := writeSite(t, siteconfig.ExampleDocument())
	out := filepath.Join(t.TempDir(), "dist")

	msg, err := runApp(t, "--site", site, "export", "--out", out)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(msg, "exported") {
		t.Errorf("output: got %q", msg)
	}
	for _, rel := range []string{"index.html", "about/index.html", "api/config.json", "static/app.js"} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing %s", rel)
		}
	}
}

func TestExportCommand_UploadNeedsBucket(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	_, err := runApp(t, "export", "--out", t.TempDir(), "--upload")
	if err == nil || !strings.Contains(err.Error(), "S3_BUCKET") {
		t.Errorf("got %v, want S3_BUCKET error", err)
	}
}

func TestLeadsCommand_NeedsDatabase(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "")
	_, err := runApp(t, "leads")
	if err == nil || !strings.Contains(err.Error(), "POSTGRES_HOST") {
		t.Errorf("got %v, want POSTGRES_HOST error", err)
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")

	if _, err := runApp(t, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, siteconfig.DefaultDocument()) {
		t.Error("init should write the template document")
	}

	if _, err := runApp(t, "init", path); err == nil {
		t.Error("init should refuse to overwrite without --force")
	}

	if _, err := runApp(t, "init", "--force", "--example", path); err != nil {
		t.Fatalf("init --force: %v", err)
	}
	data, _ = os.ReadFile(path)
	if !bytes.Equal(data, siteconfig.ExampleDocument()) {
		t.Error("init --example should write the example document")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runApp(t, "--log-level", "loud", "validate")
	if err == nil || !strings.Contains(err.Error(), "log level") {
		t.Errorf("got %v, want log level error", err)
	}
}
