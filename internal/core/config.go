package core

import "time"

// RuntimeConfig is what a frontend tells a game on Reset: the drawable area
// in cells, the frame rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // frames per second
	Seed     int64 // 0 asks the frontend to pick one
}

// DefaultConfig is an 80x24 terminal at 60 fps.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the part of a game's state frontends care about.
type GameState struct {
	Score     int  // Current score
	BestScore int  // Best score seen by this game instance
	Started   bool // Whether play has begun
	GameOver  bool // Whether the current run has ended
	Runs      int  // Number of runs started since the instance was created
}

// StepResult is what Game.Step reports after a frame.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished run for the run journal.
type RunSummary struct {
	Game     string        // Game ID
	Score    int           // Points scored in the run
	Best     int           // Best score of the instance when the run ended
	Speed    float64       // Obstacle speed when the run ended
	SpawnMs  int           // Spawn interval when the run ended
	Duration time.Duration // Time spent playing
	Hit      string        // What ended the run (ground, pipe)
}
