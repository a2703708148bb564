package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/constants"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != constants.DefaultAddr {
		t.Fatalf("expected default address, got %q", cfg.ServerAddress)
	}
	if cfg.SpeciesBaseURL != constants.DefaultSpeciesURL {
		t.Fatalf("expected default species url, got %q", cfg.SpeciesBaseURL)
	}
	if cfg.CatalogTimeout() <= 0 {
		t.Fatalf("expected a positive catalog timeout")
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"server_address": ":9999", "player_name": "Rivka", "catalog_timeout_seconds": 3}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	t.Setenv("SARANDA_ADDR", ":7777")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Env beats file, file beats defaults.
	if cfg.ServerAddress != ":7777" {
		t.Fatalf("expected the env override, got %q", cfg.ServerAddress)
	}
	if cfg.PlayerName != "Rivka" {
		t.Fatalf("expected the file value, got %q", cfg.PlayerName)
	}
	if cfg.CatalogTimeoutSeconds != 3 {
		t.Fatalf("expected 3 second timeout, got %d", cfg.CatalogTimeoutSeconds)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}
