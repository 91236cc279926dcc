package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/games/neonbounce"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Neon Bounce with a menu",
	Long: `Start Neon Bounce in interactive menu mode.

Pick a difficulty to play, or open the high score table.
After a game ends, press Esc or B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  neonbounce menu
  neonbounce menu --fps 30
  neonbounce menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)
	newGame := gameFactory(flagConfig)
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, neonbounce.GameID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, neonbounce.GameID, "local", cfg.TickRate, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		game, err := newGame(string(menuResult.Preset))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "difficulty", menuResult.Preset, "seed", cfg.Seed)
		if err := tui.Run(game, cfg, tui.ModelOptions{Store: store, Logger: logger}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
