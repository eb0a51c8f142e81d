package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.ListLimit = 5
	cfg.Appearance.Theme = "catppuccin-mocha"
	cfg.Appearance.Currency = "€"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "tally"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tally", "config.toml"), []byte("not valid toml ["), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
	// Broken config still yields usable defaults for the caller.
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults alongside error", cfg)
	}
}

func TestDataDirOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/xdg/data", "tally") {
		t.Fatalf("DataDir() = %q", got)
	}

	cfg.General.DataDir = "/custom"
	if got := DataDir(cfg); got != "/custom" {
		t.Fatalf("DataDir() = %q, want /custom", got)
	}
	if got := DBPath(cfg); got != filepath.Join("/custom", "tally.db") {
		t.Fatalf("DBPath() = %q", got)
	}
}
