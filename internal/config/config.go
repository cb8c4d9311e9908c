// Package config provides YAML-based game configuration loading and
// difficulty management for the homebound game.
package config

// HomeboundConfig contains all tunables for the homebound game.
type HomeboundConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Home       HomeConfig       `yaml:"home"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the simulation field dimensions in field units.
// The field is independent of terminal size; the platform scales it.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player movement parameters.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`   // Field units per second
	StartX float64 `yaml:"start_x"` // Start column; start row is mid-field
}

// HomeConfig defines the home square.
type HomeConfig struct {
	Size       float64 `yaml:"size"`        // Full side length of the square
	EdgeMargin float64 `yaml:"edge_margin"` // Distance of its center from the right edge
}

// EnemiesConfig defines the spawn table and enemy behavior parameters.
type EnemiesConfig struct {
	PerLevel      int       `yaml:"per_level"`       // Capacity is per_level * level
	SpawnWindowMs int       `yaml:"spawn_window_ms"` // All enemies of a level spawn within this window
	Sizes         []float64 `yaml:"sizes"`           // Candidate enemy sizes, chosen uniformly
	Colors        []string  `yaml:"colors"`          // Candidate enemy colors, chosen uniformly
	BaseSpeed     float64   `yaml:"base_speed"`      // Minimum enemy speed
	SpeedJitter   float64   `yaml:"speed_jitter"`    // Uniform random addition to base speed
	HitPadding    float64   `yaml:"hit_padding"`     // Fixed player-sprite allowance added to size/2
	FenceRadius   RangeF    `yaml:"fence_radius"`    // Patrol radius range for fencing enemies
}

// RangeF is an inclusive float range.
type RangeF struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// TimingConfig defines UI-facing delays driven by the simulation clock.
type TimingConfig struct {
	WinBannerMs int `yaml:"win_banner_ms"` // How long "You Win" stays before the next level
}

// DifficultyConfig defines where a run starts and whether it escalates.
type DifficultyConfig struct {
	StartLevel  int  `yaml:"start_level"` // Level the run begins at (>= 1)
	Progression bool `yaml:"progression"` // Whether winning advances the level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 5
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyHomeboundPreset modifies the config based on a difficulty preset.
func ApplyHomeboundPreset(cfg *HomeboundConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Progression = false
		return
	}
	cfg.Difficulty.Progression = true
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
}
