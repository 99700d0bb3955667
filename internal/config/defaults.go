package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default game configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 64,
		},
		Physics: PhysicsConfig{
			Gravity:      1100,
			FlapVelocity: -320,
		},
		Player: PlayerConfig{
			X:          140,
			RestYRatio: 0.45,
			Width:      48,
			Height:     36,
		},
		Pipes: PipesConfig{
			Width:        80,
			Length:       600,
			Gap:          170,
			SpawnOffset:  40,
			TopMargin:    40,
			BottomMargin: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			BaseSpeed:   200,
			SpeedStep:   15,
			BaseSpawnMs: 1400,
			SpawnStepMs: 60,
			MinSpawnMs:  950,
			Every:       5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
