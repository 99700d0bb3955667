package flappy

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Spawner creates pipe pairs on a repeating clock event.
type Spawner struct {
	cfg   config.PipesConfig
	width float64
	lo    float64 // Gap center range, inclusive
	hi    float64

	clock *engine.Clock
	field *Field
	rng   *rand.Rand
	event *engine.TimerEvent
}

// NewSpawner creates an idle spawner. Nothing spawns until Start.
func NewSpawner(cfg config.FlappyConfig, clock *engine.Clock, field *Field, rng *rand.Rand) *Spawner {
	lo, hi := cfg.GapRange()
	return &Spawner{
		cfg:   cfg.Pipes,
		width: cfg.Field.Width,
		lo:    lo,
		hi:    hi,
		clock: clock,
		field: field,
		rng:   rng,
	}
}

// Start schedules onTick every interval. Calling Start while running
// is a no-op.
func (s *Spawner) Start(interval time.Duration, onTick func()) {
	if s.Running() {
		return
	}
	s.event = s.clock.AddEvent(engine.TimerConfig{
		Delay:    interval,
		Loop:     true,
		Callback: onTick,
	})
}

// Running reports whether the spawn event is scheduled.
func (s *Spawner) Running() bool {
	return s.event != nil && !s.event.Removed()
}

// Interval returns the current spawn interval, or 0 when not running.
func (s *Spawner) Interval() time.Duration {
	if !s.Running() {
		return 0
	}
	return s.event.Delay()
}

// SetInterval changes the delay of the running event. Time already
// accumulated towards the next spawn is kept.
func (s *Spawner) SetInterval(d time.Duration) {
	if s.Running() {
		s.event.SetDelay(d)
	}
}

// Stop cancels the spawn event. It reports true only the first time.
func (s *Spawner) Stop() bool {
	if !s.Running() {
		return false
	}
	s.event.Remove()
	return true
}

// RandomGapY draws an integer gap center uniformly from the allowed range.
func (s *Spawner) RandomGapY() float64 {
	lo := math.Ceil(s.lo)
	hi := math.Floor(s.hi)
	if hi <= lo {
		return lo
	}
	return lo + float64(s.rng.Intn(int(hi-lo)+1))
}

// Spawn creates a pipe pair at a random gap position.
func (s *Spawner) Spawn(speed float64) (top, bottom *Obstacle) {
	return s.SpawnAt(s.RandomGapY(), speed)
}

// SpawnAt creates a pipe pair whose gap is centered on gapY. Both pipes
// start just beyond the right edge of the field.
func (s *Spawner) SpawnAt(gapY, speed float64) (top, bottom *Obstacle) {
	half := s.cfg.Gap / 2
	left := s.width + s.cfg.SpawnOffset - s.cfg.Width/2

	top = s.field.Add(KindTop, engine.Box{
		X: left,
		Y: gapY - half - s.cfg.Length,
		W: s.cfg.Width,
		H: s.cfg.Length,
	}, speed)
	bottom = s.field.Add(KindBottom, engine.Box{
		X: left,
		Y: gapY + half,
		W: s.cfg.Width,
		H: s.cfg.Length,
	}, speed)
	return top, bottom
}
