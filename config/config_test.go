package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yml")
	data := []byte("quicksand:\n  sink_rate: 1.0\nwalk:\n  hard_cap: 60\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quicksand.SinkRate != 1.0 {
		t.Fatalf("override not applied: %v", cfg.Quicksand.SinkRate)
	}
	if cfg.Walk.HardCap != 60 {
		t.Fatalf("override not applied: %v", cfg.Walk.HardCap)
	}
	// Untouched keys keep their defaults.
	if cfg.Gravity.Terminal != Default().Gravity.Terminal {
		t.Fatalf("default lost: %v", cfg.Gravity.Terminal)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yml")
	if err := os.WriteFile(path, []byte("gravity:\n  terminal: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for positive terminal velocity")
	}
}
