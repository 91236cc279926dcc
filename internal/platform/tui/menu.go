package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/storage"
)

// MenuItemKind is what a menu entry does when selected.
type MenuItemKind int

const (
	MenuItemPlay MenuItemKind = iota
	MenuItemScores
	MenuItemQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Kind   MenuItemKind
	Title  string
	Preset config.DifficultyPreset // Only for MenuItemPlay
}

// defaultMenuItems lists one entry per difficulty plus scores and quit.
func defaultMenuItems() []MenuItem {
	return []MenuItem{
		{Kind: MenuItemPlay, Title: "Play - Easy", Preset: config.DifficultyEasy},
		{Kind: MenuItemPlay, Title: "Play - Normal", Preset: config.DifficultyNormal},
		{Kind: MenuItemPlay, Title: "Play - Hard", Preset: config.DifficultyHard},
		{Kind: MenuItemScores, Title: "High Scores"},
		{Kind: MenuItemQuit, Title: "Quit"},
	}
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuHighStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	highScore      int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user picks a difficulty
	openScoreboard bool      // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model. The cursor starts on Normal.
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     defaultMenuItems(),
		cursor:    1,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch item.Kind {
		case MenuItemPlay:
			m.selected = &item
		case MenuItemScores:
			m.openScoreboard = true
		case MenuItemQuit:
			m.quitting = true
		}
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("N E O N   B O U N C E"), m.width))
	b.WriteString("\n\n")

	subtitle := "Select a difficulty"
	b.WriteString(centerText(menuSubtitleStyle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.highScore > 0 {
		high := fmt.Sprintf("High Score: %d", m.highScore)
		b.WriteString("\n")
		b.WriteString(centerText(menuHighStyle.Render(high), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
// Width is measured without ANSI escape codes.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, gameID string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, gameID, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result summarizes what the user chose.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Preset = m.Selected().Preset
	default:
		result.Quit = true
	}
	return result
}
