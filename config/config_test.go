package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("does-not-exist.yml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfigBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte("server:\n  port: 8080\narena:\n  maxActiveDebates: 5\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Arena.MaxActiveDebates != 5 {
		t.Errorf("Expected maxActiveDebates 5, got %d", cfg.Arena.MaxActiveDebates)
	}
	// Values the file omits fall back to defaults.
	if cfg.Arena.ChallengeTTLMinutes != 5 {
		t.Errorf("Expected challenge TTL default 5, got %d", cfg.Arena.ChallengeTTLMinutes)
	}
	if cfg.Arena.DefaultDurationMinutes != 30 {
		t.Errorf("Expected default duration 30, got %d", cfg.Arena.DefaultDurationMinutes)
	}
}

func TestDefaultMatchesLifecycleContract(t *testing.T) {
	cfg := Default()
	if cfg.Arena.MinDurationMinutes != 5 || cfg.Arena.MaxDurationMinutes != 60 {
		t.Errorf("Duration bounds should be 5-60, got %d-%d",
			cfg.Arena.MinDurationMinutes, cfg.Arena.MaxDurationMinutes)
	}
	if cfg.Arena.MaxActiveDebates != 3 {
		t.Errorf("Expected active debate cap 3, got %d", cfg.Arena.MaxActiveDebates)
	}
}
