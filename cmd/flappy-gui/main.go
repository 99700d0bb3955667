// flappy-gui plays the game in a desktop window.
//
// Usage:
//
//	flappy-gui [--config path] [--difficulty easy|normal|hard|fixed] [--seed n]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy-gui",
	Short: "Play Flappy in a desktop window",
	Long: `Open an 800x600 window and play.

Controls:
  Space/Up/W  - Flap (the first flap starts the run)
  Click/Tap   - Flap, or press the Restart button after game over
  R           - Restart (after game over)
  Esc/Q       - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the run journal database")
}

func run(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadWithPreset(flagConfig, preset)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-gui",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run journal unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	gameID := flappy.GameID
	if preset == config.DifficultyFixed {
		gameID = flappy.FixedGameID
	}
	game, err := gui.New(cfg, seed, gui.Options{GameID: gameID, Store: store, Logger: logger})
	if err != nil {
		return err
	}
	return gui.Run(game, "Flappy Bird")
}
