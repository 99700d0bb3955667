package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Phase is the session state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Texts shown by the presentation layer.
const (
	StartPrompt  = "Press SPACE or Click to Start"
	GameOverText = "Game Over! Press R or Click Restart"
	RestartLabel = "Restart"
)

// Restart control geometry, centered horizontally, in world units.
const (
	restartOffsetY = 120
	restartWidth   = 200
	restartHeight  = 50
	overOffsetY    = 60
)

// Session is one run from the start prompt to game over. A session is never
// reused: restart builds a new one together with its world and timers.
type Session struct {
	cfg        config.FlappyConfig
	world      *engine.World
	player     *Player
	ground     *engine.Body
	field      *Field
	spawner    *Spawner
	difficulty Difficulty

	phase   Phase
	score   int
	best    int
	elapsed time.Duration
	hit     HitKind

	prompt         string
	overText       string
	restartVisible bool
}

// NewSession builds an Idle session. best is the best score carried over
// from the previous session of the same process.
func NewSession(cfg config.FlappyConfig, rng *rand.Rand, best int) *Session {
	world := engine.NewWorld(cfg.Field.Width, cfg.Field.Height)

	s := &Session{
		cfg:        cfg,
		world:      world,
		player:     NewPlayer(cfg),
		field:      NewField(world),
		difficulty: NewDifficulty(cfg.Difficulty),
		best:       max(best, 0),
		prompt:     StartPrompt,
	}
	s.spawner = NewSpawner(cfg, world.Clock(), s.field, rng)

	ground := engine.NewBody(0, cfg.Field.GroundY(), cfg.Field.Width, cfg.Field.GroundHeight)
	ground.Static = true
	s.ground = world.AddBody(ground)
	world.AddBody(s.player.Body())

	world.AddCollider(s.player.Body(), s.ground, func(_, _ *engine.Body) {
		s.Handle(Collision{With: HitGround})
	})
	world.AddCollider(s.player.Body(), s.field.Group(), func(_, _ *engine.Body) {
		s.Handle(Collision{With: HitPipe})
	})
	return s
}

// Handle applies one event. Events that make no sense in the current phase
// are ignored. Restart and Pointer belong to the Controller.
func (s *Session) Handle(ev Event) {
	switch e := ev.(type) {
	case Flap:
		s.flap()
	case Collision:
		s.gameOver(e.With)
	case spawnTick:
		if s.phase == PhaseRunning {
			s.spawner.Spawn(s.difficulty.Speed())
		}
	}
}

// Step advances the session by dt: timers, physics and collisions, then
// the field and scoring.
func (s *Session) Step(dt time.Duration) {
	if s.world.Destroyed() {
		return
	}
	s.world.Step(dt)
	if s.phase != PhaseRunning {
		return
	}
	s.elapsed += dt
	for i, n := 0, s.field.Update(s.player.CenterX()); i < n; i++ {
		s.addPoint()
	}
}

func (s *Session) flap() {
	switch s.phase {
	case PhaseIdle:
		s.phase = PhaseRunning
		s.prompt = ""
		s.player.EnableGravity()
		s.spawner.Start(s.difficulty.SpawnInterval(), func() {
			s.Handle(spawnTick{})
		})
		s.player.Flap()
	case PhaseRunning:
		s.player.Flap()
	}
}

// gameOver ends the run. Only the first call has an effect.
func (s *Session) gameOver(hit HitKind) {
	if s.phase != PhaseRunning {
		return
	}
	s.phase = PhaseOver
	s.hit = hit
	s.spawner.Stop()
	s.field.Freeze()
	s.player.Freeze()
	s.overText = GameOverText
	s.restartVisible = true
}

func (s *Session) addPoint() {
	s.score++
	s.best = max(s.best, s.score)
	if s.difficulty.Apply(s.score) {
		s.field.SetSpeed(s.difficulty.Speed())
		s.spawner.SetInterval(s.difficulty.SpawnInterval())
	}
}

// destroy releases the world, its bodies and timers.
func (s *Session) destroy() {
	s.world.Destroy()
}

// Phase returns the current state.
func (s *Session) Phase() Phase { return s.phase }

// Started reports whether the first flap has happened.
func (s *Session) Started() bool { return s.phase != PhaseIdle }

// Over reports whether the run has ended.
func (s *Session) Over() bool { return s.phase == PhaseOver }

// Score returns the points of this run.
func (s *Session) Score() int { return s.score }

// BestScore returns the best score of the process so far.
func (s *Session) BestScore() int { return s.best }

// Speed returns the current obstacle speed.
func (s *Session) Speed() float64 { return s.difficulty.Speed() }

// SpawnMs returns the current spawn interval in milliseconds.
func (s *Session) SpawnMs() int { return s.difficulty.SpawnMs() }

// Elapsed returns the time spent Running.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Hit returns what ended the run, or HitNone.
func (s *Session) Hit() HitKind { return s.hit }

// Player returns the player body.
func (s *Session) Player() *Player { return s.player }

// Field returns the obstacle field.
func (s *Session) Field() *Field { return s.field }

// Spawner returns the pipe spawner.
func (s *Session) Spawner() *Spawner { return s.spawner }

// Ground returns the ground rectangle.
func (s *Session) Ground() engine.Box { return s.ground.Bounds() }

// Prompt returns the start prompt, empty once running.
func (s *Session) Prompt() string { return s.prompt }

// OverText returns the game over message, empty until the run ends.
func (s *Session) OverText() string { return s.overText }

// RestartVisible reports whether the restart control is shown.
func (s *Session) RestartVisible() bool { return s.restartVisible }

// OverTextY returns the vertical center of the game over message.
func (s *Session) OverTextY() float64 {
	return s.cfg.Field.Height/2 + overOffsetY
}

// RestartButton returns the clickable restart control rectangle.
func (s *Session) RestartButton() engine.Box {
	return engine.Box{
		X: s.cfg.Field.Width/2 - restartWidth/2,
		Y: s.cfg.Field.Height/2 + restartOffsetY - restartHeight/2,
		W: restartWidth,
		H: restartHeight,
	}
}

// Summary describes the run for the journal.
func (s *Session) Summary(gameID string) core.RunSummary {
	return core.RunSummary{
		Game:     gameID,
		Score:    s.score,
		Best:     s.best,
		Speed:    s.difficulty.Speed(),
		SpawnMs:  s.difficulty.SpawnMs(),
		Duration: s.elapsed,
		Hit:      s.hit.String(),
	}
}
