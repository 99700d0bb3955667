package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Player is the controllable bird. Only its vertical position changes.
type Player struct {
	body *engine.Body
	flap float64
}

// NewPlayer creates the player at its rest position with gravity off.
func NewPlayer(cfg config.FlappyConfig) *Player {
	p := cfg.Player
	body := engine.NewBody(
		p.X-p.Width/2,
		cfg.Field.Height*p.RestYRatio-p.Height/2,
		p.Width,
		p.Height,
	)
	body.GravityY = cfg.Physics.Gravity
	body.CollideWorldBounds = true
	return &Player{body: body, flap: cfg.Physics.FlapVelocity}
}

// Body returns the engine body.
func (p *Player) Body() *engine.Body {
	return p.body
}

// Bounds returns the player rectangle in world units.
func (p *Player) Bounds() engine.Box {
	return p.body.Bounds()
}

// CenterX returns the fixed horizontal center.
func (p *Player) CenterX() float64 {
	return p.body.Bounds().CenterX()
}

// CenterY returns the vertical center.
func (p *Player) CenterY() float64 {
	return p.body.Bounds().CenterY()
}

// VelocityY returns the vertical velocity (negative = up).
func (p *Player) VelocityY() float64 {
	return p.body.VY
}

// Falling reports whether gravity is applied.
func (p *Player) Falling() bool {
	return p.body.AllowGravity
}

// EnableGravity starts the fall.
func (p *Player) EnableGravity() {
	p.body.SetAllowGravity(true)
}

// Flap replaces the vertical velocity with the flap impulse.
func (p *Player) Flap() {
	p.body.SetVelocityY(p.flap)
}

// Freeze stops the player where it is.
func (p *Player) Freeze() {
	p.body.SetAllowGravity(false)
	p.body.SetVelocity(0, 0)
}
