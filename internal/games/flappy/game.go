// Package flappy implements a Flappy Bird-style game: a bird falls under
// gravity and flaps through a stream of gapped pipe pairs that speed up as
// the score grows.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Registered game IDs.
const (
	GameID      = "flappy"
	FixedGameID = "flappy_fixed"
)

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// Game adapts a Controller to the registry interface: it maps screen cells
// to world units and runs one fixed step per tick.
type Game struct {
	id    string
	title string
	fixed bool

	ctrl    *Controller
	runtime core.RuntimeConfig
	view    viewport
	dt      time.Duration
	last    core.RunSummary
}

// New creates the standard game with rising difficulty.
func New() *Game {
	return &Game{id: GameID, title: "Flappy Bird"}
}

// NewFixed creates a variant whose speed and spawn interval never change.
func NewFixed() *Game {
	return &Game{id: FixedGameID, title: "Flappy Bird (fixed pace)", fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and builds a new Controller. The best
// score starts from zero.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadWithPreset(configPath, difficultyPreset)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	g.ResetWithConfig(rt, cfg)
}

// ResetWithConfig is Reset with an explicit configuration.
func (g *Game) ResetWithConfig(rt core.RuntimeConfig, cfg config.FlappyConfig) {
	if g.fixed {
		config.ApplyPreset(&cfg, config.DifficultyFixed)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rt
	g.dt = time.Second / time.Duration(rt.TickRate)
	g.ctrl = NewController(cfg, rt.Seed)
	g.view = newViewport(cfg.Field.Width, cfg.Field.Height, rt.ScreenW, rt.ScreenH)
	g.last = core.RunSummary{}
}

// Resize rescales the view without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.view = newViewport(g.view.worldW, g.view.worldH, w, h)
}

// Controller returns the underlying controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Step applies the frame's input in order (restart, pointers, flap) and
// then advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	wasOver := g.ctrl.Session().Over()

	if in.Has(core.ActionRestart) {
		g.ctrl.Dispatch(Restart{})
	}
	for _, p := range in.Pointers {
		x, y := g.view.toWorld(p.X, p.Y)
		g.ctrl.Dispatch(Pointer{X: x, Y: y})
	}
	if in.Has(core.ActionJump) {
		g.ctrl.Dispatch(Flap{})
	}
	g.ctrl.Step(g.dt)

	if s := g.ctrl.Session(); s.Over() && !wasOver {
		g.last = s.Summary(g.id)
	}
	return core.StepResult{State: g.State()}
}

// LastRun returns the summary of the most recently finished run.
func (g *Game) LastRun() core.RunSummary {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	s := g.ctrl.Session()
	return core.GameState{
		Score:     s.Score(),
		BestScore: s.BestScore(),
		Started:   s.Started(),
		GameOver:  s.Over(),
		Runs:      g.ctrl.Runs(),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(FixedGameID, func() registry.Game {
		return NewFixed()
	})
}
