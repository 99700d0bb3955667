package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// playTo starts a run, scores n points and ends it.
func playTo(c *Controller, n int) {
	c.Dispatch(Flap{})
	hover(c.Session())
	for i := 0; i < n; i++ {
		c.Session().addPoint()
	}
	c.Dispatch(Collision{With: HitPipe})
}

func TestControllerRestart(t *testing.T) {
	c := NewController(config.DefaultFlappyConfig(), 1)
	playTo(c, 7)

	old := c.Session()
	if old.Speed() != 215 {
		t.Fatalf("Speed() = %v before restart, expected 215", old.Speed())
	}

	c.Dispatch(Restart{})

	s := c.Session()
	if s == old {
		t.Fatal("restart reused the old session")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", s.Phase())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.Speed() != 200 || s.SpawnMs() != 1400 {
		t.Errorf("difficulty = %v/%d, expected 200/1400", s.Speed(), s.SpawnMs())
	}
	if s.BestScore() != 7 {
		t.Errorf("BestScore() = %d, expected 7", s.BestScore())
	}
	if s.Field().Len() != 0 {
		t.Errorf("field.Len() = %d, expected 0", s.Field().Len())
	}
	if c.Runs() != 2 {
		t.Errorf("Runs() = %d, expected 2", c.Runs())
	}
	if old.Spawner().Running() {
		t.Error("old spawn timer still scheduled")
	}
}

func TestControllerRestartIgnoredUnlessOver(t *testing.T) {
	c := NewController(config.DefaultFlappyConfig(), 1)
	first := c.Session()

	c.Dispatch(Restart{})
	if c.Session() != first {
		t.Error("restart honored while idle")
	}

	c.Dispatch(Flap{})
	c.Dispatch(Restart{})
	if c.Session() != first || c.Runs() != 1 {
		t.Error("restart honored while running")
	}
}

func TestControllerBestScoreMonotonic(t *testing.T) {
	c := NewController(config.DefaultFlappyConfig(), 1)

	scores := []int{3, 9, 2, 0, 9, 4, 12, 1}
	best := 0
	for _, score := range scores {
		playTo(c, score)
		best = max(best, score)
		if c.BestScore() != best {
			t.Errorf("BestScore() = %d after a run of %d, expected %d", c.BestScore(), score, best)
		}
		c.Dispatch(Restart{})
		if c.BestScore() != best {
			t.Errorf("BestScore() = %d after restart, expected %d", c.BestScore(), best)
		}
	}

	if fresh := NewController(config.DefaultFlappyConfig(), 1); fresh.BestScore() != 0 {
		t.Errorf("new controller BestScore() = %d, expected 0", fresh.BestScore())
	}
}

func TestControllerPointer(t *testing.T) {
	c := NewController(config.DefaultFlappyConfig(), 1)

	// Idle: a click starts the run.
	c.Dispatch(Pointer{X: 10, Y: 10})
	if c.Session().Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v after click, expected running", c.Session().Phase())
	}
	if c.Session().Player().VelocityY() != -320 {
		t.Errorf("VelocityY() = %v after click, expected -320", c.Session().Player().VelocityY())
	}

	c.Dispatch(Collision{With: HitGround})
	over := c.Session()

	// Over: clicks outside the restart control are ignored.
	c.Dispatch(Pointer{X: 10, Y: 10})
	if c.Session() != over || over.Phase() != PhaseOver {
		t.Error("click outside the restart control was not ignored")
	}

	btn := over.RestartButton()
	c.Dispatch(Pointer{X: btn.CenterX(), Y: btn.CenterY()})
	if c.Session() == over {
		t.Fatal("click on the restart control did not restart")
	}
	if c.Session().Phase() != PhaseIdle {
		t.Errorf("Phase() = %v after restart, expected idle", c.Session().Phase())
	}
}

func TestControllerDeterministicSeed(t *testing.T) {
	gaps := func(seed int64) []float64 {
		c := NewController(config.DefaultFlappyConfig(), seed)
		c.Dispatch(Flap{})
		hover(c.Session())
		for i := 0; i < 4; i++ {
			c.Step(1400 * time.Millisecond)
		}
		var out []float64
		for _, o := range c.Session().Field().Obstacles() {
			if o.Kind == KindBottom {
				out = append(out, o.Bounds().Y)
			}
		}
		return out
	}

	a, b := gaps(7), gaps(7)
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("spawned %d and %d pairs, expected equal non-zero counts", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("pair %d gap differs: %v vs %v", i, a[i], b[i])
		}
	}
}
