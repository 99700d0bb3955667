package engine

// Box is an axis-aligned rectangle in world units. X, Y is the top-left corner.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Body is a moving or static rectangle in a World.
type Body struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	VX, VY float64 // Velocity in units per second

	// AllowGravity enables vertical acceleration by World.Gravity + GravityY.
	AllowGravity bool
	GravityY     float64

	// Static bodies never move and are skipped by integration.
	Static bool

	// CollideWorldBounds keeps the body inside the world rectangle.
	CollideWorldBounds bool

	// Data carries the owner's per-body state (e.g. obstacle metadata).
	Data any

	destroyed bool
	group     *Group
}

// NewBody creates a body with its top-left corner at (x, y).
func NewBody(x, y, w, h float64) *Body {
	return &Body{X: x, Y: y, W: w, H: h}
}

// Bounds returns the body's current rectangle.
func (b *Body) Bounds() Box {
	return Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// SetVelocityX sets the horizontal velocity.
func (b *Body) SetVelocityX(vx float64) { b.VX = vx }

// SetVelocityY sets the vertical velocity.
func (b *Body) SetVelocityY(vy float64) { b.VY = vy }

// SetAllowGravity toggles gravity for this body.
func (b *Body) SetAllowGravity(allow bool) { b.AllowGravity = allow }

// Destroy marks the body as dead and detaches it from its group.
// Destroyed bodies are ignored by integration and collision. Calling Destroy
// more than once is safe.
func (b *Body) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.group != nil {
		b.group.remove(b)
	}
}

// Active reports whether the body has not been destroyed.
func (b *Body) Active() bool {
	return !b.destroyed
}

func (b *Body) bodies() []*Body {
	if b.destroyed {
		return nil
	}
	return []*Body{b}
}
