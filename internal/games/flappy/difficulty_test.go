package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestDifficultyAt(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Difficulty

	tests := []struct {
		score   int
		speed   float64
		spawnMs int
	}{
		{0, 200, 1400},
		{4, 200, 1400},
		{5, 215, 1340},
		{9, 215, 1340},
		{10, 230, 1280},
		{30, 290, 1040},
		{45, 335, 950},
		{500, 1700, 950},
	}

	for _, tt := range tests {
		speed, spawnMs := DifficultyAt(cfg, tt.score)
		if speed != tt.speed {
			t.Errorf("DifficultyAt(%d) speed = %v, expected %v", tt.score, speed, tt.speed)
		}
		if spawnMs != tt.spawnMs {
			t.Errorf("DifficultyAt(%d) spawnMs = %d, expected %d", tt.score, spawnMs, tt.spawnMs)
		}
	}
}

func TestDifficultyApplyMatchesClosedForm(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Difficulty
	d := NewDifficulty(cfg)

	prevSpeed, prevSpawn := d.Speed(), d.SpawnMs()
	for score := 1; score <= 120; score++ {
		d.Apply(score)

		speed, spawnMs := DifficultyAt(cfg, score)
		if d.Speed() != speed || d.SpawnMs() != spawnMs {
			t.Fatalf("after score %d got %v/%d, expected %v/%d", score, d.Speed(), d.SpawnMs(), speed, spawnMs)
		}
		if d.Speed() < prevSpeed || d.SpawnMs() > prevSpawn {
			t.Fatalf("difficulty got easier at score %d", score)
		}
		prevSpeed, prevSpawn = d.Speed(), d.SpawnMs()
	}
	if d.Steps() != 24 {
		t.Errorf("Steps() = %d, expected 24", d.Steps())
	}
}

func TestDifficultyApply(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Difficulty
	d := NewDifficulty(cfg)

	if d.Apply(0) {
		t.Error("Apply(0) should not step")
	}
	if d.Apply(3) {
		t.Error("Apply(3) should not step")
	}
	if !d.Apply(5) {
		t.Error("Apply(5) should step")
	}
	if d.SpawnInterval().Milliseconds() != 1340 {
		t.Errorf("SpawnInterval = %v, expected 1340ms", d.SpawnInterval())
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	d := NewDifficulty(cfg.Difficulty)

	for score := 1; score <= 50; score++ {
		if d.Apply(score) {
			t.Fatalf("Apply(%d) stepped with difficulty disabled", score)
		}
	}
	if d.Speed() != 200 || d.SpawnMs() != 1400 {
		t.Errorf("fixed difficulty = %v/%d, expected 200/1400", d.Speed(), d.SpawnMs())
	}

	speed, spawnMs := DifficultyAt(cfg.Difficulty, 30)
	if speed != 200 || spawnMs != 1400 {
		t.Errorf("DifficultyAt(30) with difficulty disabled = %v/%d, expected 200/1400", speed, spawnMs)
	}
}
