package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/storage"
)

// ModelOptions configures a game Model.
type ModelOptions struct {
	Store  *storage.Store // Optional; runs are not recorded when nil
	Logger *log.Logger    // Optional; events are discarded when nil
	Player string         // Stored with each run; empty means "local"

	// Standalone makes Back quit the program instead of returning to a menu.
	Standalone bool

	// SkipStartScreen begins the simulation on the first tick.
	SkipStartScreen bool
}

// Model is the Bubble Tea model that drives a single game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	standalone bool
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       heldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	highScore  int
	started    bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		player:     opts.Player,
		standalone: opts.Standalone,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       make(heldKeys),
		inputFrame: core.NewInputFrame(),
		started:    opts.SkipStartScreen,
	}

	if m.store != nil {
		if high, err := m.store.HighScore(game.ID()); err == nil {
			m.highScore = high
		} else {
			logger.Warn("could not load high score", "error", err)
		}
	}

	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.started {
		switch action {
		case core.ActionJump, core.ActionConfirm:
			m.started = true
		case core.ActionBack:
			return m.leave()
		}
		return m, nil
	}

	switch {
	case action == core.ActionNone:
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			return m.leave()
		}
	case isMovement(action):
		m.held.press(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// leave ends the game screen, quitting when there is no menu to return to.
func (m Model) leave() (tea.Model, tea.Cmd) {
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	m.backToMenu = true
	return m, nil
}

// handleResize processes window resize events.
// Only the screen changes; the simulation keeps its own world size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if !m.started {
		return m, tickCmd(m.config.TickRate)
	}

	m.held.apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logger.Debug("game event", "kind", ev.Kind, "value", ev.Value, "label", ev.Label, "tick", result.State.Ticks)
		if ev.Kind == core.EventReset {
			m.scoreSaved = false
			clear(m.held)
		}
	}

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Empty runs are not stored.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    m.gameState.Score,
		Level:    m.gameState.Level,
		MaxCombo: m.gameState.MaxCombo,
		Ticks:    m.gameState.Ticks,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "player", run.Player, "score", run.Score, "level", run.Level)
	m.highScore = max(m.highScore, run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".neonbounce", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if !m.started {
		m.renderStartScreen()
	} else {
		m.game.Render(m.screen)
	}

	return RenderScreen(m.screen)
}

// renderStartScreen draws the title card shown before the first tick.
func (m Model) renderStartScreen() {
	s := m.screen
	s.Clear()
	mid := s.Height() / 2

	s.DrawTextCenteredColored(mid-4, "N E O N   B O U N C E", core.ColorNeonPink)
	s.DrawTextCenteredColored(mid-2, "Keep the ball alive. Chain paddle hits for combos.", core.ColorNeonCyan)
	s.DrawTextCenteredColored(mid, "Press SPACE to start", core.ColorNeonYellow)
	s.DrawTextCenteredColored(mid+2, "A/D or Left/Right: move   P: pause   R: restart   Q: quit", core.ColorGray)
	if m.highScore > 0 {
		s.DrawTextCenteredColored(mid+4, fmt.Sprintf("High Score: %d", m.highScore), core.ColorNeonGreen)
	}
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Started reports whether the start screen has been dismissed.
func (m Model) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a game and blocks until it exits.
func Run(game Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	opts.Standalone = true
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
