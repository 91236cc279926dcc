package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/games/neonbounce"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/platform/tui"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/storage"
)

var (
	flagInteractive bool
	flagPlayer      string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs with level reached and max combo.

Examples:
  neonbounce scores
  neonbounce scores --player alice
  neonbounce scores --interactive
  neonbounce scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table view")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(neonbounce.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, neonbounce.GameID, flagPlayer, cfg.TickRate, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(neonbounce.GameID, flagPlayer, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Neon Bounce")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neonbounce play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Combo", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  x%-4d  %s\n", i+1, r.Player, r.Score, r.Level, r.MaxCombo, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(neonbounce.GameID); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
}
