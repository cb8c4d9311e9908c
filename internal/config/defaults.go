package config

import (
	_ "embed"
)

//go:embed defaults/homebound.yaml
var defaultHomeboundYAML []byte

// DefaultHomeboundConfig returns the default homebound configuration.
// Kept in sync with defaults/homebound.yaml as a fallback if the embedded
// YAML fails to parse.
func DefaultHomeboundConfig() HomeboundConfig {
	return HomeboundConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 500,
		},
		Player: PlayerConfig{
			Speed:  180,
			StartX: 50,
		},
		Home: HomeConfig{
			Size:       20,
			EdgeMargin: 100,
		},
		Enemies: EnemiesConfig{
			PerLevel:      3,
			SpawnWindowMs: 3000,
			Sizes:         []float64{15, 20, 30},
			Colors:        []string{"red", "green", "blue"},
			BaseSpeed:     150,
			SpeedJitter:   30,
			HitPadding:    9,
			FenceRadius:   RangeF{Min: 60, Max: 100},
		},
		Timing: TimingConfig{
			WinBannerMs: 2000,
		},
		Difficulty: DifficultyConfig{
			StartLevel:  1,
			Progression: true,
		},
	}
}
