package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formwidget.yaml")
	content := `
server:
  addr: 127.0.0.1:9000
  submit_endpoint: http://localhost:9999/hook
  read_header_timeout: 2s
log:
  level: debug
  format: json
theme:
  name: acme
  variant: dark
  css_vars:
    --brand: "#123456"
tui:
  output: pretty
terms:
  html: 'I agree to the <a href="/terms">terms</a>'
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Server.SubmitEndpoint != "http://localhost:9999/hook" {
		t.Fatalf("unexpected submit endpoint %q", cfg.Server.SubmitEndpoint)
	}
	if cfg.Server.ReadHeaderTimeout != 2*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Theme.Name != "acme" || cfg.Theme.Variant != "dark" || cfg.Theme.CSSVars["--brand"] != "#123456" {
		t.Fatalf("unexpected theme config %+v", cfg.Theme)
	}
	if cfg.TUI.Output != "pretty" {
		t.Fatalf("unexpected tui output %q", cfg.TUI.Output)
	}
	if !strings.Contains(cfg.Terms.HTML, `href="/terms"`) {
		t.Fatalf("unexpected terms html %q", cfg.Terms.HTML)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FORMWIDGET_SERVER_ADDR", ":7070")
	t.Setenv("FORMWIDGET_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("expected env addr, got %q", cfg.Server.Addr)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected env log level, got %q", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = " "
	cfg.Log.Format = "xml"
	cfg.TUI.Output = "csv"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"server.addr", "log.format", "tui.output"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}
