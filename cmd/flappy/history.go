package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagTop   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Browse past runs",
	Long: `Show the run journal: every finished run with its score, the best
score of that sitting, the final pipe speed and spawn interval, how long
it lasted and what ended it.

The journal is a record only. The in-game best score always starts
from zero when the game is launched.

In a terminal this opens an interactive table (tab switches games,
t toggles recent/best). Use --plain or a pipe for plain text.

Examples:
  flappy history
  flappy history flappy --top --limit 10
  flappy history --plain | less`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	historyCmd.Flags().BoolVar(&flagTop, "top", false, "Show best runs instead of latest (plain mode, needs a game)")
}

func runHistory(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q (run 'flappy list' to see available games)", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run journal: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunHistory(store, flagLimit, width, height)
	}
	return printHistory(store, gameID)
}

func printHistory(store *storage.Store, gameID string) error {
	var (
		runs []storage.Run
		err  error
	)
	if flagTop && gameID != "" {
		runs, err = store.TopRuns(gameID, flagLimit)
	} else {
		runs, err = store.RecentRuns(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("reading runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to fill the journal!")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-4s  %-5s  %-6s  %-7s  %-6s  %-12s  %-12s  %s\n",
		"#", "Score", "Best", "Speed", "Spawn", "Time", "Hit", "Game", "Player", "Date")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-4d  %-5.0f  %-6d  %-7s  %-6s  %-12s  %-12s  %s\n",
			i+1, r.Score, r.Best, r.Speed, r.SpawnMs, r.Duration.Round(100*time.Millisecond), r.Hit,
			r.GameID, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if gameID != "" {
		stats, err := store.Stats(gameID)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}
		fmt.Println()
		fmt.Printf("  %d runs, high score %d, average %.1f\n", stats.Runs, stats.HighScore, stats.AvgScore)
	}
	return nil
}
