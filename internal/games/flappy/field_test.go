package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

func newTestSpawner(seed int64) (*engine.World, *Field, *Spawner) {
	cfg := config.DefaultFlappyConfig()
	world := engine.NewWorld(cfg.Field.Width, cfg.Field.Height)
	field := NewField(world)
	sp := NewSpawner(cfg, world.Clock(), field, rand.New(rand.NewSource(seed)))
	return world, field, sp
}

func TestSpawnAtGeometry(t *testing.T) {
	_, field, sp := newTestSpawner(1)

	top, bottom := sp.SpawnAt(300, 200)

	if got := top.Bounds().Bottom(); got != 215 {
		t.Errorf("top pipe bottom edge = %v, expected 215", got)
	}
	if got := bottom.Bounds().Y; got != 385 {
		t.Errorf("bottom pipe top edge = %v, expected 385", got)
	}
	if top.X() != 800 || bottom.X() != 800 {
		t.Errorf("pipe left edges = %v/%v, expected 800", top.X(), bottom.X())
	}
	if top.VelocityX() != -200 || bottom.VelocityX() != -200 {
		t.Errorf("pipe velocities = %v/%v, expected -200", top.VelocityX(), bottom.VelocityX())
	}
	if top.Scorable {
		t.Error("top pipe should not be scorable")
	}
	if !bottom.Scorable {
		t.Error("bottom pipe should be scorable")
	}
	if field.Len() != 2 {
		t.Errorf("field.Len() = %d, expected 2", field.Len())
	}
}

func TestRandomGapYRange(t *testing.T) {
	_, _, sp := newTestSpawner(42)

	seen := make(map[float64]bool)
	for i := 0; i < 5000; i++ {
		y := sp.RandomGapY()
		if y < 125 || y > 395 {
			t.Fatalf("RandomGapY() = %v, outside [125, 395]", y)
		}
		if y != float64(int(y)) {
			t.Fatalf("RandomGapY() = %v, expected an integer", y)
		}
		seen[y] = true
	}
	if !seen[125] || !seen[395] {
		t.Error("range endpoints never drawn")
	}
}

func TestSpawnerTimer(t *testing.T) {
	world, _, sp := newTestSpawner(1)

	ticks := 0
	sp.Start(1400*msec, func() { ticks++ })
	sp.Start(100*msec, func() { t.Error("second Start should be ignored") })

	world.Step(1399 * msec)
	if ticks != 0 {
		t.Errorf("ticks = %d before the first interval, expected 0", ticks)
	}
	world.Step(1 * msec)
	if ticks != 1 {
		t.Errorf("ticks = %d after one interval, expected 1", ticks)
	}

	sp.SetInterval(1340 * msec)
	if sp.Interval() != 1340*msec {
		t.Errorf("Interval() = %v, expected 1340ms", sp.Interval())
	}

	if !sp.Stop() {
		t.Error("first Stop() should report true")
	}
	if sp.Stop() {
		t.Error("second Stop() should report false")
	}
	world.Step(10000 * msec)
	if ticks != 1 {
		t.Errorf("ticks = %d after Stop, expected 1", ticks)
	}
}

func TestFieldUpdate(t *testing.T) {
	world, field, sp := newTestSpawner(1)
	top, bottom := sp.SpawnAt(300, 200)

	if n := field.Update(140); n != 0 {
		t.Errorf("Update before passing = %d, expected 0", n)
	}

	// Right edge at 139: passed.
	top.body.X = 59
	bottom.body.X = 59
	if n := field.Update(140); n != 1 {
		t.Errorf("Update after passing = %d, expected 1", n)
	}
	if !bottom.Scored || top.Scored {
		t.Errorf("scored flags top=%v bottom=%v, expected false/true", top.Scored, bottom.Scored)
	}
	if n := field.Update(140); n != 0 {
		t.Errorf("second Update = %d, expected 0", n)
	}

	// Fully off the left edge.
	world.Step(1000 * msec)
	field.Update(140)
	if field.Len() != 0 {
		t.Errorf("field.Len() = %d after leaving the screen, expected 0", field.Len())
	}
	if bottom.Alive() {
		t.Error("retired obstacle still alive")
	}
}

func TestFieldSetSpeedAndFreeze(t *testing.T) {
	_, field, sp := newTestSpawner(1)
	sp.SpawnAt(200, 200)
	sp.SpawnAt(300, 200)

	field.SetSpeed(215)
	for _, o := range field.Obstacles() {
		if o.VelocityX() != -215 {
			t.Errorf("velocity after SetSpeed = %v, expected -215", o.VelocityX())
		}
	}

	field.Freeze()
	for _, o := range field.Obstacles() {
		if o.VelocityX() != 0 {
			t.Errorf("velocity after Freeze = %v, expected 0", o.VelocityX())
		}
	}
}
