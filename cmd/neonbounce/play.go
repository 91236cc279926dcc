package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Neon Bounce",
	Long: `Start playing Neon Bounce in the terminal.

Controls:
  A/D or Left/Right - Move paddle
  Space             - Start / restart after game over
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 lives, wider paddle, lighter gravity
  normal - Config values as loaded (3 lives by default)
  hard   - 2 lives, narrower paddle, heavier gravity

Examples:
  neonbounce play
  neonbounce play --difficulty easy
  neonbounce play --config ./my-neonbounce.yaml
  neonbounce play --seed 42 --log-file game.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := gameFactory(flagConfig)(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	logger.Info("starting game", "difficulty", flagDifficulty, "seed", flagSeed)
	runErr := tui.Run(game, runtimeConfig(), tui.ModelOptions{
		Store:  store,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
