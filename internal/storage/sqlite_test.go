package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	summary := core.RunSummary{
		Game:     "flappy",
		Score:    12,
		Best:     15,
		Speed:    230,
		SpawnMs:  1280,
		Duration: 21500 * time.Millisecond,
		Hit:      "pipe",
	}
	id, err := store.SaveRun(RunFromSummary("", summary))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if r.Player != "local" {
		t.Errorf("Expected player local, got %q", r.Player)
	}
	if r.Score != 12 || r.Best != 15 || r.Speed != 230 || r.SpawnMs != 1280 || r.Hit != "pipe" {
		t.Errorf("Stored run mismatch: %+v", r)
	}
	if r.Duration != 21500*time.Millisecond {
		t.Errorf("Expected duration 21.5s, got %v", r.Duration)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRun(Run{GameID: "flappy", Score: i})
	}
	store.SaveRun(Run{GameID: "flappy_fixed", Score: 99})

	runs, err := store.RecentRuns("flappy", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 5 || runs[1].Score != 4 || runs[2].Score != 3 {
		t.Errorf("Runs not newest first: %v", runs)
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 runs across games, got %d", len(all))
	}
	if all[0].GameID != "flappy_fixed" {
		t.Errorf("Expected newest run first, got %q", all[0].GameID)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 50, 30, 0, 40} {
		store.SaveRun(Run{GameID: "flappy", Score: score})
	}

	runs, err := store.TopRuns("flappy", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "flappy", Score: 4, Duration: time.Second})
	store.SaveRun(Run{GameID: "flappy", Score: 8, Duration: 2 * time.Second})
	store.SaveRun(Run{GameID: "flappy_fixed", Score: 1})

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 8 || stats.AvgScore != 6 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.TotalTime != 3*time.Second {
		t.Errorf("Expected total time 3s, got %v", stats.TotalTime)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 games, got %d", len(all))
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "flappy", Score: 1})
	store.SaveRun(Run{GameID: "flappy_fixed", Score: 2})

	if err := store.ClearRuns("flappy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("", 10)
	if len(runs) != 1 || runs[0].GameID != "flappy_fixed" {
		t.Errorf("Expected only the fixed run to survive, got %v", runs)
	}
}
