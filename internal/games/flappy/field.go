package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// ObstacleKind tells which half of a pipe pair an obstacle is.
type ObstacleKind int

const (
	KindTop ObstacleKind = iota
	KindBottom
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindTop:
		return "top"
	case KindBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Obstacle is one pipe of a pair. Its position lives in the engine body.
type Obstacle struct {
	Kind     ObstacleKind
	Scorable bool // Only the bottom pipe of a pair awards a point
	Scored   bool

	body *engine.Body
}

// Bounds returns the obstacle rectangle in world units.
func (o *Obstacle) Bounds() engine.Box {
	return o.body.Bounds()
}

// X returns the left edge.
func (o *Obstacle) X() float64 {
	return o.body.X
}

// VelocityX returns the horizontal velocity (negative = leftwards).
func (o *Obstacle) VelocityX() float64 {
	return o.body.VX
}

// Alive reports whether the obstacle is still in the field.
func (o *Obstacle) Alive() bool {
	return o.body.Active()
}

// Field is the set of live obstacles. The engine moves them; the field only
// retires them and detects when the player has passed one.
type Field struct {
	group *engine.Group
}

// NewField creates a field whose obstacles are integrated by world.
func NewField(world *engine.World) *Field {
	g := engine.NewGroup()
	world.AddGroup(g)
	return &Field{group: g}
}

// Group returns the engine group, for collider registration.
func (f *Field) Group() *engine.Group {
	return f.group
}

// Add creates an obstacle with the given rectangle moving left at speed.
func (f *Field) Add(kind ObstacleKind, box engine.Box, speed float64) *Obstacle {
	body := f.group.Create(box.X, box.Y, box.W, box.H)
	body.SetVelocityX(-speed)
	o := &Obstacle{
		Kind:     kind,
		Scorable: kind == KindBottom,
		body:     body,
	}
	body.Data = o
	return o
}

// Obstacles returns the live obstacles in spawn order.
func (f *Field) Obstacles() []*Obstacle {
	children := f.group.Children()
	out := make([]*Obstacle, 0, len(children))
	for _, b := range children {
		if o, ok := b.Data.(*Obstacle); ok {
			out = append(out, o)
		}
	}
	return out
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return f.group.Len()
}

// Update retires obstacles that are fully off the left edge and marks
// scorable ones whose right edge has passed playerX. It returns the number
// of points earned this frame.
func (f *Field) Update(playerX float64) int {
	passed := 0
	for _, o := range f.Obstacles() {
		box := o.Bounds()
		if box.Right() < 0 {
			o.body.Destroy()
			continue
		}
		if o.Scorable && !o.Scored && box.Right() < playerX {
			o.Scored = true
			passed++
		}
	}
	return passed
}

// SetSpeed re-applies a leftward speed to every live obstacle.
func (f *Field) SetSpeed(speed float64) {
	for _, b := range f.group.Children() {
		b.SetVelocityX(-speed)
	}
}

// Freeze stops every obstacle in place.
func (f *Field) Freeze() {
	for _, b := range f.group.Children() {
		b.SetVelocity(0, 0)
	}
}
