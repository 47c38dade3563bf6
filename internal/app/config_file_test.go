package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("userAgent: test-agent\nasOfYear: 2026\nfetch:\n  ratePerSecond: 0.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if fc.UserAgent != "test-agent" {
		t.Fatalf("unexpected userAgent: %q", fc.UserAgent)
	}
	if fc.AsOfYear != 2026 {
		t.Fatalf("unexpected asOfYear: %d", fc.AsOfYear)
	}
	if fc.Fetch.RatePerSecond != 0.5 {
		t.Fatalf("unexpected rate: %v", fc.Fetch.RatePerSecond)
	}
}

func TestApplyFileConfig_OverlaysOnlySetValues(t *testing.T) {
	cfg := Config{
		UserAgent:    "flag-agent",
		FetchTimeout: 10 * time.Second,
		AsOfYear:     2025,
	}
	var fc FileConfig
	fc.AsOfYear = 2026
	ApplyFileConfig(fc, &cfg)

	if cfg.AsOfYear != 2026 {
		t.Fatalf("file value should win: %d", cfg.AsOfYear)
	}
	if cfg.UserAgent != "flag-agent" {
		t.Fatalf("unset file value must not clobber flag: %q", cfg.UserAgent)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("unset file value must not clobber timeout: %v", cfg.FetchTimeout)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
