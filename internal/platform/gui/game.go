// Package gui runs the game in a desktop window with ebiten. The logical
// screen is the play field itself, so cursor positions are world units.
package gui

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	skyColor     = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	groundColor  = color.RGBA{0xde, 0xd8, 0x95, 0xff}
	grassColor   = color.RGBA{0x73, 0xbf, 0x2e, 0xff}
	pipeColor    = color.RGBA{0x55, 0x8b, 0x2f, 0xff}
	pipeCapColor = color.RGBA{0x73, 0xbf, 0x2e, 0xff}
	birdColor    = color.RGBA{0xf7, 0xd3, 0x08, 0xff}
	beakColor    = color.RGBA{0xf0, 0x6c, 0x2a, 0xff}
	bestColor    = color.RGBA{0xff, 0xff, 0x00, 0xff}
	buttonColor  = color.RGBA{0x00, 0x00, 0x00, 0xaa}
	restartColor = color.RGBA{0x00, 0xff, 0x00, 0xff}
)

// Options configure a window game.
type Options struct {
	GameID string         // Journal game ID, "flappy" when empty
	Store  *storage.Store // Nil disables the journal
	Logger *log.Logger    // Nil discards
}

// Game implements ebiten.Game around a flappy Controller.
type Game struct {
	ctrl     *flappy.Controller
	cfg      config.FlappyConfig
	gameID   string
	store    *storage.Store
	logger   *log.Logger
	face     *text.GoTextFace
	small    *text.GoTextFace
	wasOver  bool
	runSaved bool
}

// New creates a window game.
func New(cfg config.FlappyConfig, seed int64, opts Options) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("gui: cannot load font: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := opts.GameID
	if id == "" {
		id = flappy.GameID
	}
	return &Game{
		ctrl:   flappy.NewController(cfg, seed),
		cfg:    cfg,
		gameID: id,
		store:  opts.Store,
		logger: logger,
		face:   &text.GoTextFace{Source: src, Size: 20},
		small:  &text.GoTextFace{Source: src, Size: 14},
	}, nil
}

// Update dispatches this frame's input and advances one fixed step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Dispatch(flappy.Restart{})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.ctrl.Dispatch(flappy.Pointer{X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.ctrl.Dispatch(flappy.Pointer{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.ctrl.Dispatch(flappy.Flap{})
	}

	g.ctrl.Step(time.Second / time.Duration(ebiten.TPS()))
	g.afterStep()
	return nil
}

// afterStep logs the game over transition and journals the run once.
func (g *Game) afterStep() {
	s := g.ctrl.Session()
	if !s.Over() {
		g.wasOver = false
		g.runSaved = false
		return
	}
	if g.wasOver {
		return
	}
	g.wasOver = true
	g.logger.Info("run over", "score", s.Score(), "best", s.BestScore(), "hit", s.Hit())

	if g.store == nil || g.runSaved {
		return
	}
	g.runSaved = true
	if _, err := g.store.SaveRun(storage.RunFromSummary("local", s.Summary(g.gameID))); err != nil {
		g.logger.Warn("could not save run", "error", err)
	}
}

// Draw renders the field, the HUD and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	s := g.ctrl.Session()

	for _, o := range s.Field().Obstacles() {
		b := o.Bounds()
		fillBox(screen, b, pipeColor)
		lip := engine.Box{X: b.X - 4, W: b.W + 8, H: 24}
		if o.Kind == flappy.KindTop {
			lip.Y = b.Bottom() - lip.H
		} else {
			lip.Y = b.Y
		}
		fillBox(screen, lip, pipeCapColor)
	}

	ground := s.Ground()
	fillBox(screen, ground, groundColor)
	fillBox(screen, engine.Box{X: ground.X, Y: ground.Y, W: ground.W, H: 8}, grassColor)

	bird := s.Player().Bounds()
	fillBox(screen, bird, birdColor)
	fillBox(screen, engine.Box{X: bird.Right() - 10, Y: bird.CenterY() - 4, W: 14, H: 8}, beakColor)

	g.drawText(screen, fmt.Sprintf("Score: %d", s.Score()), 16, 16, g.face, color.White, text.AlignStart)
	g.drawText(screen, fmt.Sprintf("Best: %d", s.BestScore()), 16, 48, g.small, bestColor, text.AlignStart)

	cx := g.cfg.Field.Width / 2
	if p := s.Prompt(); p != "" {
		g.drawText(screen, p, cx, g.cfg.Field.Height/2, g.small, color.White, text.AlignCenter)
	}
	if t := s.OverText(); t != "" {
		g.drawText(screen, t, cx, s.OverTextY(), g.small, color.White, text.AlignCenter)
	}
	if s.RestartVisible() {
		btn := s.RestartButton()
		fillBox(screen, btn, buttonColor)
		g.drawText(screen, flappy.RestartLabel, btn.CenterX(), btn.CenterY(), g.face, restartColor, text.AlignCenter)
	}
}

func (g *Game) drawText(dst *ebiten.Image, msg string, x, y float64, face *text.GoTextFace, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, msg, face, op)
}

func fillBox(dst *ebiten.Image, b engine.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

// Layout fixes the logical screen to the play field.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Field.Width), int(g.cfg.Field.Height)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(int(g.cfg.Field.Width), int(g.cfg.Field.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
