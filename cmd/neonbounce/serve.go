package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/games/neonbounce"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Neon Bounce SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a difficulty menu.
Runs are stored under the SSH user name in a shared leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.neonbounce/host_key

Examples:
  neonbounce serve                           # Listen on :23234 with auto-generated key
  neonbounce serve --ssh :2222               # Listen on port 2222
  neonbounce serve --host-key ./my_host_key  # Use specific host key
  neonbounce serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Fail on a broken config before accepting connections.
	if _, err := loadGameConfig(flagConfig, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		GameID:      neonbounce.GameID,
		NewGame:     gameFactory(flagConfig),
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Neon Bounce SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
