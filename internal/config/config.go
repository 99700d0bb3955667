// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

import "fmt"

// FlappyConfig contains all configuration for the game. Distances are in
// world units (the play field is Field.Width x Field.Height), velocities in
// units per second and accelerations in units per second squared.
type FlappyConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Pipes      PipesConfig      `yaml:"pipes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play field.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Ground strip at the bottom of the field
}

// GroundY returns the y coordinate of the ground surface.
func (f FieldConfig) GroundY() float64 {
	return f.Height - f.GroundHeight
}

// PhysicsConfig defines the player physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration once play starts
	FlapVelocity float64 `yaml:"flap_velocity"` // Vertical velocity set by a flap (negative = up)
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	X          float64 `yaml:"x"`            // Horizontal center, fixed for the whole run
	RestYRatio float64 `yaml:"rest_y_ratio"` // Idle vertical center as a fraction of field height
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// PipesConfig defines obstacle geometry.
type PipesConfig struct {
	Width        float64 `yaml:"width"`
	Length       float64 `yaml:"length"`        // Height of each pipe body
	Gap          float64 `yaml:"gap"`           // Vertical gap between the pair
	SpawnOffset  float64 `yaml:"spawn_offset"`  // Pipe center x = field width + offset
	TopMargin    float64 `yaml:"top_margin"`    // Minimum distance from the top to the gap
	BottomMargin float64 `yaml:"bottom_margin"` // Minimum distance from the bottom to the gap
}

// DifficultyConfig defines the step-wise difficulty progression.
type DifficultyConfig struct {
	Enabled     bool    `yaml:"enabled"`
	BaseSpeed   float64 `yaml:"base_speed"`    // Obstacle speed at score 0
	SpeedStep   float64 `yaml:"speed_step"`    // Added to speed on every step
	BaseSpawnMs int     `yaml:"base_spawn_ms"` // Spawn interval at score 0
	SpawnStepMs int     `yaml:"spawn_step_ms"` // Subtracted from the interval on every step
	MinSpawnMs  int     `yaml:"min_spawn_ms"`  // Floor for the spawn interval
	Every       int     `yaml:"every"`         // A step is applied at every positive multiple of this score
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input yields the
// empty preset, which leaves the loaded config untouched.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Pipes.Gap += 30
		cfg.Difficulty.BaseSpeed -= 30
		cfg.Difficulty.BaseSpawnMs += 200
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Pipes.Gap -= 20
		cfg.Difficulty.BaseSpeed += 40
		cfg.Difficulty.BaseSpawnMs -= 150
		if cfg.Difficulty.BaseSpawnMs < cfg.Difficulty.MinSpawnMs {
			cfg.Difficulty.BaseSpawnMs = cfg.Difficulty.MinSpawnMs
		}
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}
