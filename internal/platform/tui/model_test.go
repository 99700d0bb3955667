package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *flappy.Game) {
	t.Helper()
	game := flappy.New()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	m := NewModel(game, store, cfg, Options{ScreenshotDir: t.TempDir(), Player: "tester"})
	// Reset with the built-in config so a user config on disk cannot interfere.
	game.ResetWithConfig(m.config, config.DefaultFlappyConfig())
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func TestModelReservesHelpLine(t *testing.T) {
	m, _ := newTestModel(t, nil)

	if m.screen.Height() != 24 {
		t.Errorf("screen height = %d, expected 24", m.screen.Height())
	}
	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 25 {
		t.Errorf("view has %d lines, expected 25", lines)
	}
	if !strings.Contains(view, "flap") {
		t.Error("help line missing")
	}
}

func TestModelFlapStartsRun(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg{})

	if !m.State().Started {
		t.Error("Started = false after space and a tick, expected true")
	}
}

func TestModelClickStartsRun(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	if !m.State().Started {
		t.Error("Started = false after a click and a tick, expected true")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 600 && !m.State().GameOver; i++ {
		m = update(t, m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("run never ended")
	}
	for i := 0; i < 30; i++ {
		m = update(t, m, TickMsg{})
	}

	runs, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("journal has %d runs, expected 1", len(runs))
	}
	if runs[0].Player != "tester" || runs[0].GameID != "flappy" || runs[0].Hit != "ground" {
		t.Errorf("saved run = %+v", runs[0])
	}

	// Restart, play again: a second entry.
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if m.State().GameOver || m.State().Runs != 2 {
		t.Fatalf("state after restart = %+v", m.State())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 600 && !m.State().GameOver; i++ {
		m = update(t, m, TickMsg{})
	}
	runs, _ = store.RecentRuns("", 10)
	if len(runs) != 2 {
		t.Errorf("journal has %d runs after the second game, expected 2", len(runs))
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg{})
	session := game.Controller().Session()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.Controller().Session() != session {
		t.Error("resize restarted the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t, nil)

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read screenshot: %v", err)
	}
	if !strings.Contains(string(data), flappy.StartPrompt) {
		t.Error("screenshot missing the start prompt")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}
}
