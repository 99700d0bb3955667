package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Visual characters for rendering
const (
	BirdChar      = '█'
	BirdBeakChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	GroundFill    = '░'
)

// viewport maps world units onto screen cells. The whole field is always
// visible, stretched to the screen.
type viewport struct {
	worldW, worldH float64
	cols, rows     int
	sx, sy         float64 // Cells per world unit
}

func newViewport(worldW, worldH float64, cols, rows int) viewport {
	v := viewport{worldW: worldW, worldH: worldH, cols: cols, rows: rows}
	if worldW > 0 && worldH > 0 {
		v.sx = float64(cols) / worldW
		v.sy = float64(rows) / worldH
	}
	return v
}

// toCells returns the cells covered by box, at least one cell in each
// direction when the box is on screen.
func (v viewport) toCells(b engine.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// toWorld returns the world position of a cell's center.
func (v viewport) toWorld(col, row int) (x, y float64) {
	if v.sx == 0 || v.sy == 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) / v.sx, (float64(row) + 0.5) / v.sy
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	if g.ctrl == nil {
		return
	}
	v := g.view
	if v.cols != dst.Width() || v.rows != dst.Height() {
		v = newViewport(v.worldW, v.worldH, dst.Width(), dst.Height())
	}
	s := g.ctrl.Session()

	renderGround(dst, v, s.Ground())
	for _, o := range s.Field().Obstacles() {
		renderPipe(dst, v, o)
	}
	renderBird(dst, v, s.Player())

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score()), core.ColorText)
	dst.DrawTextColored(1, 1, fmt.Sprintf("Best: %d", s.BestScore()), core.ColorHighlight)

	if p := s.Prompt(); p != "" {
		dst.DrawTextCentered(dst.Height()/2, p, core.ColorText)
	}
	if t := s.OverText(); t != "" {
		dst.DrawTextCentered(v.row(s.OverTextY()), t, core.ColorText)
	}
	if s.RestartVisible() {
		renderButton(dst, v, s.RestartButton(), RestartLabel)
	}
}

func renderGround(dst *core.Screen, v viewport, ground engine.Box) {
	top := v.row(ground.Y)
	dst.DrawHLine(0, top, dst.Width(), GroundChar, core.ColorGround)
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundFill, core.ColorSoil)
	}
}

func renderPipe(dst *core.Screen, v viewport, o *Obstacle) {
	r := v.toCells(o.Bounds())
	dst.DrawRect(r, PipeChar, core.ColorPipe)
	switch o.Kind {
	case KindTop:
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapTop, core.ColorPipeCap)
	case KindBottom:
		dst.DrawHLine(r.X, r.Y, r.W, PipeCapBottom, core.ColorPipeCap)
	}
}

func renderBird(dst *core.Screen, v viewport, p *Player) {
	r := v.toCells(p.Bounds())
	dst.DrawRect(r, BirdChar, core.ColorBird)
	dst.SetColored(r.Right()-1, r.Y, BirdBeakChar, core.ColorBeak)
}

func renderButton(dst *core.Screen, v viewport, b engine.Box, label string) {
	r := v.toCells(b)
	dst.DrawRect(r, ' ', core.ColorDefault)
	text := "[ " + label + " ]"
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawTextColored(max(x, 0), r.Y+r.H/2, text, core.ColorButton)
}
