package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Difficulty tracks obstacle speed and spawn interval for one session.
// The values only move towards harder and are advanced one step per
// qualifying scoring event, never recomputed from the score.
type Difficulty struct {
	cfg     config.DifficultyConfig
	speed   float64
	spawnMs int
	steps   int
}

// NewDifficulty returns the base difficulty for cfg.
func NewDifficulty(cfg config.DifficultyConfig) Difficulty {
	return Difficulty{
		cfg:     cfg,
		speed:   cfg.BaseSpeed,
		spawnMs: cfg.BaseSpawnMs,
	}
}

// Speed returns the current leftward obstacle speed in units per second.
func (d *Difficulty) Speed() float64 {
	return d.speed
}

// SpawnMs returns the current spawn interval in milliseconds.
func (d *Difficulty) SpawnMs() int {
	return d.spawnMs
}

// SpawnInterval returns the current spawn interval.
func (d *Difficulty) SpawnInterval() time.Duration {
	return time.Duration(d.spawnMs) * time.Millisecond
}

// Steps returns how many times the difficulty has been raised.
func (d *Difficulty) Steps() int {
	return d.steps
}

// Apply raises the difficulty by one step if score is a positive multiple
// of the configured cadence. It must be called exactly once per scoring
// event. Reports whether anything changed.
func (d *Difficulty) Apply(score int) bool {
	if !d.cfg.Enabled || d.cfg.Every <= 0 {
		return false
	}
	if score <= 0 || score%d.cfg.Every != 0 {
		return false
	}
	d.steps++
	d.speed += d.cfg.SpeedStep
	d.spawnMs = max(d.cfg.MinSpawnMs, d.spawnMs-d.cfg.SpawnStepMs)
	return true
}

// DifficultyAt returns the speed and spawn interval a session reaches at
// the given score when it scored one point at a time.
func DifficultyAt(cfg config.DifficultyConfig, score int) (speed float64, spawnMs int) {
	if !cfg.Enabled || cfg.Every <= 0 || score <= 0 {
		return cfg.BaseSpeed, cfg.BaseSpawnMs
	}
	steps := score / cfg.Every
	return cfg.BaseSpeed + cfg.SpeedStep*float64(steps), max(cfg.MinSpawnMs, cfg.BaseSpawnMs-cfg.SpawnStepMs*steps)
}
