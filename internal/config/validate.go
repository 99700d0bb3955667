package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) for any configuration that cannot
// produce a playable field.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0, "field.width must be positive, got %v", c.Field.Width)
	check(c.Field.Height > 0, "field.height must be positive, got %v", c.Field.Height)
	check(c.Field.GroundHeight >= 0 && c.Field.GroundHeight < c.Field.Height,
		"field.ground_height must be in [0, height), got %v", c.Field.GroundHeight)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.FlapVelocity < 0, "physics.flap_velocity must be negative (upward), got %v", c.Physics.FlapVelocity)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.X > 0 && c.Player.X < c.Field.Width, "player.x must be inside the field, got %v", c.Player.X)
	check(c.Player.RestYRatio > 0 && c.Player.RestYRatio < 1, "player.rest_y_ratio must be in (0, 1), got %v", c.Player.RestYRatio)

	check(c.Pipes.Width > 0, "pipes.width must be positive, got %v", c.Pipes.Width)
	check(c.Pipes.Length > 0, "pipes.length must be positive, got %v", c.Pipes.Length)
	check(c.Pipes.Gap > 0, "pipes.gap must be positive, got %v", c.Pipes.Gap)
	check(c.Pipes.TopMargin >= 0 && c.Pipes.BottomMargin >= 0, "pipes margins must not be negative")
	lo, hi := c.GapRange()
	check(lo <= hi, "pipes.gap %v does not fit between margins (gap center range [%v, %v])", c.Pipes.Gap, lo, hi)

	d := c.Difficulty
	check(d.BaseSpeed > 0, "difficulty.base_speed must be positive, got %v", d.BaseSpeed)
	check(d.SpeedStep >= 0, "difficulty.speed_step must not be negative, got %v", d.SpeedStep)
	check(d.MinSpawnMs > 0, "difficulty.min_spawn_ms must be positive, got %d", d.MinSpawnMs)
	check(d.BaseSpawnMs >= d.MinSpawnMs, "difficulty.base_spawn_ms (%d) must be >= min_spawn_ms (%d)", d.BaseSpawnMs, d.MinSpawnMs)
	check(d.SpawnStepMs >= 0, "difficulty.spawn_step_ms must not be negative, got %d", d.SpawnStepMs)
	check(d.Every > 0, "difficulty.every must be positive, got %d", d.Every)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// GapRange returns the inclusive range for the gap center of a pipe pair.
func (c FlappyConfig) GapRange() (lo, hi float64) {
	half := c.Pipes.Gap / 2
	return c.Pipes.TopMargin + half, c.Field.Height - c.Pipes.BottomMargin - half
}
