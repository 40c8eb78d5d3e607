package config_test

import (
	"strings"
	"testing"

	"stillwave.dev/internal/config"
)

func TestLoadFromReader_OverridesDefaults(t *testing.T) {
	t.Parallel()
	yaml := `
breath:
  inhale: 4
  hold_in: 7
  exhale: 8
  hold_out: 0
target_fps: 60
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Breath.HoldIn != 7 {
		t.Errorf("hold_in = %v, want 7", cfg.Breath.HoldIn)
	}
	if cfg.TargetFPS != 60 {
		t.Errorf("target_fps = %d, want 60", cfg.TargetFPS)
	}
	// Untouched sections keep their defaults.
	if cfg.Classifier.HighDowngradeFPS != 45 {
		t.Errorf("high_downgrade_fps = %v, want default 45", cfg.Classifier.HighDowngradeFPS)
	}
}

func TestLoadFromReader_EmptyInputYieldsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Breath != config.Default().Breath {
		t.Errorf("breath config = %+v, want defaults", cfg.Breath)
	}
}

func TestValidate_RejectsZeroCycle(t *testing.T) {
	t.Parallel()
	yaml := `
breath:
  inhale: 0
  hold_in: 0
  exhale: 0
  hold_out: 0
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for zero breath cycle, got nil")
	}
	if !strings.Contains(err.Error(), "sum to zero") {
		t.Errorf("error should mention zero sum, got: %v", err)
	}
}

func TestValidate_RejectsCollapsedDeadBand(t *testing.T) {
	t.Parallel()
	yaml := `
classifier:
  medium_upgrade_fps: 40
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for upgrade threshold at or below downgrade threshold, got nil")
	}
	if !strings.Contains(err.Error(), "medium_upgrade_fps") {
		t.Errorf("error should name the offending field, got: %v", err)
	}
}

func TestLoadFromReader_RejectsUnknownFields(t *testing.T) {
	t.Parallel()
	_, err := config.LoadFromReader(strings.NewReader("shininess: 11\n"))
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load("/nonexistent/stillwave.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetFPS != config.TargetFPS {
		t.Errorf("target_fps = %d, want default %d", cfg.TargetFPS, config.TargetFPS)
	}
}
