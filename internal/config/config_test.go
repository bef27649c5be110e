package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orbital/internal/celestial"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Catalog != "solar" {
		t.Errorf("expected catalog solar, got %s", cfg.Catalog)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero dt")
	}

	cfg = DefaultConfig()
	cfg.Duration = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative duration")
	}

	cfg = DefaultConfig()
	cfg.Catalog = "andromeda"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown catalog")
	}
}

func TestLoadNormalizesUnits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("catalog: inner\ndt_hours: 3\nduration_years: 10\nrecord_every: 10\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Catalog != "inner" {
		t.Errorf("expected catalog inner, got %s", cfg.Catalog)
	}
	if math.Abs(cfg.Dt-3*3600) > 1e-9 {
		t.Errorf("expected dt 10800, got %g", cfg.Dt)
	}
	if math.Abs(cfg.Duration-10*celestial.Year) > 1 {
		t.Errorf("expected 10 year duration, got %g", cfg.Duration)
	}
	if cfg.RecordEvery != 10 {
		t.Errorf("expected record_every 10, got %d", cfg.RecordEvery)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("inner", "year")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Catalog != "inner" {
		t.Errorf("expected catalog inner, got %s", cfg.Catalog)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("solar", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "year"); cfg != nil {
		t.Error("expected nil for nonexistent catalog")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("solar"); len(presets) == 0 {
		t.Error("expected presets for solar")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent catalog")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for catalog, group := range Presets {
		for name, cfg := range group {
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s/%s: %v", catalog, name, err)
			}
		}
	}
}
