package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg HomeboundConfig
	if err := yaml.Unmarshal(defaultHomeboundYAML, &cfg); err != nil {
		t.Fatalf("Embedded default YAML failed to parse: %v", err)
	}

	want := DefaultHomeboundConfig()
	if cfg.Field.Width != want.Field.Width || cfg.Field.Height != want.Field.Height {
		t.Errorf("Field = %+v, want %+v", cfg.Field, want.Field)
	}
	if cfg.Player.Speed != want.Player.Speed {
		t.Errorf("Player speed = %f, want %f", cfg.Player.Speed, want.Player.Speed)
	}
	if cfg.Enemies.PerLevel != want.Enemies.PerLevel {
		t.Errorf("Enemies per level = %d, want %d", cfg.Enemies.PerLevel, want.Enemies.PerLevel)
	}
	if cfg.Enemies.HitPadding != want.Enemies.HitPadding {
		t.Errorf("Hit padding = %f, want %f", cfg.Enemies.HitPadding, want.Enemies.HitPadding)
	}
	if len(cfg.Enemies.Sizes) != 3 || len(cfg.Enemies.Colors) != 3 {
		t.Errorf("Spawn table = %v / %v, want 3 sizes and 3 colors", cfg.Enemies.Sizes, cfg.Enemies.Colors)
	}
}

func TestLoadHomeboundDefault(t *testing.T) {
	cfg, err := LoadHomebound("")
	if err != nil {
		t.Fatalf("LoadHomebound(\"\") failed: %v", err)
	}
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		t.Errorf("Loaded config has invalid field %+v", cfg.Field)
	}
	if cfg.Difficulty.StartLevel < 1 {
		t.Errorf("Start level = %d, want >= 1", cfg.Difficulty.StartLevel)
	}
}

func TestLoadHomeboundMissingCustomPath(t *testing.T) {
	if _, err := LoadHomebound("/nonexistent/homebound.yaml"); err == nil {
		t.Error("LoadHomebound with missing custom path should fail")
	}
}

func TestApplyHomeboundPreset(t *testing.T) {
	tests := []struct {
		preset          DifficultyPreset
		wantLevel       int
		wantProgression bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 2, true},
		{DifficultyHard, 5, true},
	}

	for _, tt := range tests {
		cfg := DefaultHomeboundConfig()
		ApplyHomeboundPreset(&cfg, tt.preset)
		if cfg.Difficulty.StartLevel != tt.wantLevel {
			t.Errorf("%s: start level = %d, want %d", tt.preset, cfg.Difficulty.StartLevel, tt.wantLevel)
		}
		if cfg.Difficulty.Progression != tt.wantProgression {
			t.Errorf("%s: progression = %v, want %v", tt.preset, cfg.Difficulty.Progression, tt.wantProgression)
		}
	}
}

func TestApplyFixedPresetKeepsStartLevel(t *testing.T) {
	cfg := DefaultHomeboundConfig()
	cfg.Difficulty.StartLevel = 4

	ApplyHomeboundPreset(&cfg, DifficultyFixed)

	if cfg.Difficulty.Progression {
		t.Error("Fixed preset should disable progression")
	}
	if cfg.Difficulty.StartLevel != 4 {
		t.Errorf("Fixed preset should keep start level, got %d", cfg.Difficulty.StartLevel)
	}
}

func TestApplyEmptyPresetIsNoOp(t *testing.T) {
	cfg := DefaultHomeboundConfig()
	before := cfg.Difficulty
	ApplyHomeboundPreset(&cfg, "")
	if cfg.Difficulty != before {
		t.Errorf("Empty preset changed difficulty: %+v -> %+v", before, cfg.Difficulty)
	}
}
