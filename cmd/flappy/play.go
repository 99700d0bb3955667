package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "flappy".

Controls:
  Space/Up/W  - Flap (the first flap starts the run)
  Click       - Flap, or press the Restart button after game over
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot to ~/.flappy/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wider gaps, slower pipes, longer spawn interval
  normal - The configured values
  hard   - Narrower gaps, faster pipes, shorter spawn interval
  fixed  - No speed-up while scoring

Examples:
  flappy play
  flappy play flappy_fixed
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := registry.DefaultGame
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'flappy list' to see available games)", gameID)
	}

	// Fail early on a broken config instead of silently playing defaults.
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if _, err := config.LoadWithPreset(flagConfig, preset); err != nil {
		return err
	}
	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("run journal unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, tui.Options{Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
