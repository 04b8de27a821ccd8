package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LISTEN_ADDR", "SHEETS_CACHE_TTL", "FILTER_COLUMNS", "GOOGLE_SHEETS_CREDENTIALS_FILE", "GOOGLE_SHEETS_CREDENTIALS_JSON"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("listen=%q", cfg.ListenAddr)
	}
	if cfg.SheetsCacheTTL != 10*time.Minute {
		t.Fatalf("ttl=%s", cfg.SheetsCacheTTL)
	}
	if len(cfg.FilterColumns) != 2 || cfg.FilterColumns[0] != "assessor" || cfg.FilterColumns[1] != "occr_country" {
		t.Fatalf("filters=%v", cfg.FilterColumns)
	}
	if cfg.SheetsConfigured() {
		t.Fatalf("no credentials should be configured by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("SHEETS_CACHE_TTL", "90s")
	t.Setenv("FILTER_COLUMNS", "assessor, status ,")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_FILE", "/run/secrets/sa.json")
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" || cfg.SheetsCacheTTL != 90*time.Second {
		t.Fatalf("cfg=%+v", cfg)
	}
	if len(cfg.FilterColumns) != 2 || cfg.FilterColumns[1] != "status" {
		t.Fatalf("filters=%v", cfg.FilterColumns)
	}
	if cfg.MaxUploadMB != 64 {
		t.Fatalf("bad int should fall back, got %d", cfg.MaxUploadMB)
	}
	if !cfg.SheetsConfigured() {
		t.Fatalf("credentials file should count as configured")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faersview.yaml")
	content := "listen_addr: \":9999\"\nsheets_cache_ttl: 5m\nfilter_columns:\n  - assessor\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{ListenAddr: ":8080", LogFormat: "text", MaxUploadMB: 64, SheetsCacheTTL: 10 * time.Minute, FilterColumns: []string{"assessor", "occr_country"}}
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":9999" || cfg.SheetsCacheTTL != 5*time.Minute {
		t.Fatalf("cfg=%+v", cfg)
	}
	if len(cfg.FilterColumns) != 1 {
		t.Fatalf("filters=%v", cfg.FilterColumns)
	}
	if cfg.LogFormat != "text" {
		t.Fatalf("absent keys must keep their value, got log format %q", cfg.LogFormat)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{LogFormat: "text", MaxUploadMB: 64, SheetsCacheTTL: time.Minute}

	if err := cfg.LoadFromFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("sheets_cache_ttl: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFromFile(bad); err == nil {
		t.Fatal("expected error for bad duration")
	}

	badFormat := filepath.Join(dir, "format.yaml")
	if err := os.WriteFile(badFormat, []byte("log_format: xml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFromFile(badFormat); err == nil {
		t.Fatal("expected validation error for log format")
	}

	cfg = Config{LogFormat: "text", MaxUploadMB: 64, SheetsCacheTTL: time.Minute}
	badColumn := filepath.Join(dir, "column.yaml")
	if err := os.WriteFile(badColumn, []byte("filter_columns: [reviewer]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFromFile(badColumn); err == nil {
		t.Fatal("expected validation error for unknown filter column")
	}
}
