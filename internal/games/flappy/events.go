package flappy

// Event is an input or simulation event routed to a session.
type Event interface {
	event()
}

// Flap is a flap request from keyboard or pointer.
type Flap struct{}

// Restart asks for a new session. Honored only after game over.
type Restart struct{}

// Pointer is a click or tap at a position in world units.
type Pointer struct {
	X, Y float64
}

// Collision reports that the player hit something.
type Collision struct {
	With HitKind
}

// spawnTick is emitted by the spawn timer.
type spawnTick struct{}

func (Flap) event()      {}
func (Restart) event()   {}
func (Pointer) event()   {}
func (Collision) event() {}
func (spawnTick) event() {}

// HitKind tells what ended a run.
type HitKind int

const (
	HitNone HitKind = iota
	HitGround
	HitPipe
)

// String returns a human-readable name for the hit.
func (h HitKind) String() string {
	switch h {
	case HitGround:
		return "ground"
	case HitPipe:
		return "pipe"
	default:
		return "none"
	}
}
