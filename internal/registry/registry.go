// Package registry maps game IDs to factories. Game variants register
// themselves in init() so the platform can build them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// DefaultGame is the ID played when none is given.
const DefaultGame = "flappy"

// Game is what the platform drives. Games know nothing about terminals or
// windows: the platform maps input to actions, owns the frame clock and
// displays the screen buffer.
type Game interface {
	// ID returns the unique identifier used by the CLI and the run journal.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset builds a fresh instance for the given runtime. Called once
	// before the first Step; restarts after game over happen inside Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick after applying input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and phase flags.
	State() core.GameState
}

// Resizer is implemented by games that rescale their view when the screen
// size changes instead of being reset.
type Resizer interface {
	Resize(w, h int)
}

// Reporter is implemented by games that can describe their last run.
type Reporter interface {
	LastRun() core.RunSummary
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
