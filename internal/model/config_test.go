package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
	if !cfg.Storage.Seed || filepath.Base(cfg.Storage.Path) != "inawo.db" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &AppConfig{
		Storage: StorageConfig{Path: "/tmp/planner.db", Seed: false},
		Log:     LogConfig{Level: "debug", Format: "json"},
		Display: DisplayConfig{Timezone: "Africa/Lagos"},
	}
	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" || !cfg.Storage.Seed {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("INAWO_DB_PATH", "/data/inawo.db")
	t.Setenv("INAWO_LOG_FORMAT", "json")

	cfg := defaultAppConfig()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Storage.Path != "/data/inawo.db" || cfg.Log.Format != "json" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unset variables must keep file values, got level %q", cfg.Log.Level)
	}
}

func TestDisplayLocation(t *testing.T) {
	if got := (DisplayConfig{Timezone: "UTC"}).Location(); got != time.UTC {
		t.Fatalf("expected UTC, got %v", got)
	}
	if got := (DisplayConfig{Timezone: "Not/AZone"}).Location(); got != time.Local {
		t.Fatalf("expected fallback to Local, got %v", got)
	}
	if got := (DisplayConfig{}).Location(); got != time.Local {
		t.Fatalf("expected Local for empty zone, got %v", got)
	}
}
