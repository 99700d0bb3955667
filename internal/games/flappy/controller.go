package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Controller owns the current Session and replaces it on restart. The best
// score lives here between sessions and is 0 for a new Controller.
type Controller struct {
	cfg     config.FlappyConfig
	rng     *rand.Rand
	session *Session
	runs    int
}

// NewController creates a controller with a fresh Idle session. The seed
// drives gap placement; equal seeds and inputs give equal runs.
func NewController(cfg config.FlappyConfig, seed int64) *Controller {
	c := &Controller{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	c.session = NewSession(cfg, c.rng, 0)
	c.runs = 1
	return c
}

// Session returns the current session.
func (c *Controller) Session() *Session {
	return c.session
}

// Config returns the configuration sessions are built from.
func (c *Controller) Config() config.FlappyConfig {
	return c.cfg
}

// Runs returns how many sessions have been created, the first included.
func (c *Controller) Runs() int {
	return c.runs
}

// BestScore returns the best score of this controller's lifetime.
func (c *Controller) BestScore() int {
	return c.session.BestScore()
}

// Dispatch routes one input event. Restart is only honored after game over;
// a pointer activates the restart control when it is visible and hit,
// otherwise it flaps. Pointer presses elsewhere while over are ignored.
func (c *Controller) Dispatch(ev Event) {
	switch e := ev.(type) {
	case Restart:
		if c.session.Over() {
			c.restart()
		}
	case Pointer:
		if c.session.Over() {
			if c.session.RestartVisible() && c.session.RestartButton().Contains(e.X, e.Y) {
				c.restart()
			}
			return
		}
		c.session.Handle(Flap{})
	default:
		c.session.Handle(ev)
	}
}

// Step advances the current session by dt.
func (c *Controller) Step(dt time.Duration) {
	c.session.Step(dt)
}

func (c *Controller) restart() {
	best := c.session.BestScore()
	c.session.destroy()
	c.session = NewSession(c.cfg, c.rng, best)
	c.runs++
}
