// neonbounce is a neon arcade bouncing-ball game for the terminal.
//
// Usage:
//
//	neonbounce play          - Play a game
//	neonbounce menu          - Start menu to pick a difficulty interactively
//	neonbounce scores        - Show high scores
//	neonbounce serve         - Start SSH server for remote play
//	neonbounce sim           - Run a headless game with the autopilot
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.neonbounce/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Log gameplay events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonbounce",
	Short: "Neon Bounce - Ultimate Bouncing Ball Game",
	Long: `NEON BOUNCE - Ultimate Bouncing Ball Game

Keep gravity-driven balls in play with your paddle, chain hits for combo
points and dodge the moving obstacles as the levels climb.

Game Features:
  - Multiple power-ups (Multi-ball, Slow Time, Shield, etc.)
  - Dynamic obstacles and increasing difficulty
  - Combo system for higher scores
  - Neon visual effects with particles and ball trails

Controls:
  Arrow Keys or A/D  - Move paddle
  P                  - Pause game
  SPACE              - Start/Restart game
  R                  - Restart after game over
  Esc/B              - Back (when paused or after game over)
  Q/Ctrl+C           - Quit

Power-Ups:
  CYAN    M  Multi-ball  - Spawns extra balls
  PURPLE  S  Slow Time   - Slows down ball movement
  YELLOW  B  Mega Bounce - Super jump for all balls
  GREEN   H  Shield      - Protects from losing lives
  ORANGE  2  2X Points   - Double score multiplier

Examples:
  neonbounce play
  neonbounce play --difficulty hard
  neonbounce menu
  neonbounce scores
  neonbounce serve --ssh :2222
  neonbounce sim --ticks 3600 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonbounce/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging of game events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
