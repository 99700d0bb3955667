package core

// Action is a platform-neutral input intent. Frontends translate keys into
// actions so games never see raw key names.
type Action uint8

const (
	ActionNone Action = iota
	ActionJump
	ActionRestart
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionJump:    "Jump",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Point is a pointer press, in screen cells.
type Point struct {
	X, Y int
}

// InputFrame collects everything one player triggered during a tick.
// The zero value is an empty frame.
type InputFrame struct {
	actions uint32

	// Pointers holds pointer presses in arrival order.
	Pointers []Point
}

func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (f *InputFrame) Set(a Action) {
	if a != ActionNone {
		f.actions |= 1 << a
	}
}

func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.actions&(1<<a) != 0
}

func (f *InputFrame) AddPointer(x, y int) {
	f.Pointers = append(f.Pointers, Point{X: x, Y: y})
}

func (f InputFrame) Empty() bool {
	return f.actions == 0 && len(f.Pointers) == 0
}

// Clear empties the frame for reuse, keeping the pointer buffer.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.Pointers = f.Pointers[:0]
}
