package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var flagSteps int

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the way 'flappy play' does and print it as
YAML, followed by the pipe speed and spawn interval reached at each
difficulty step.

Config search order:
  1. --config <path>
  2. ~/.flappy/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml
  flappy config --difficulty hard --steps 10`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().IntVar(&flagSteps, "steps", 8, "Number of difficulty steps to tabulate")
}

func runConfig(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadWithPreset(flagConfig, preset)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	os.Stdout.Write(data)

	d := cfg.Difficulty
	fmt.Println()
	if !d.Enabled {
		fmt.Printf("# fixed pace: speed %.0f, spawn every %dms\n", d.BaseSpeed, d.BaseSpawnMs)
		return nil
	}
	fmt.Println("# score  speed  spawn_ms")
	for step := 0; step <= flagSteps; step++ {
		score := step * d.Every
		speed, spawnMs := flappy.DifficultyAt(d, score)
		fmt.Printf("# %5d  %5.0f  %8d\n", score, speed, spawnMs)
	}
	return nil
}
