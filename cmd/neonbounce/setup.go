package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/games/neonbounce"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/platform/tui"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/storage"
)

// newLogger builds the process logger. With no --log-file, interactive
// commands discard logs so they never draw over the game; headless ones
// log to stderr. The returned func closes the log file.
func newLogger(headless bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case headless:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonbounce",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// gameFactory returns a factory that loads the config once per game so that
// edits to the config file apply to the next play-through.
func gameFactory(configPath string) tui.GameFactory {
	return func(presetName string) (tui.Game, error) {
		cfg, err := loadGameConfig(configPath, presetName)
		if err != nil {
			return nil, err
		}
		return neonbounce.New(cfg), nil
	}
}

// loadGameConfig loads the tunables and applies a difficulty preset.
func loadGameConfig(configPath, presetName string) (config.NeonBounceConfig, error) {
	preset, ok := config.ParsePreset(presetName)
	if !ok {
		return config.NeonBounceConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", presetName)
	}
	return config.LoadWithPreset(configPath, preset)
}

// openStore opens the scores database. Play continues without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
