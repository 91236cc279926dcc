package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// holdTicks is how long a movement key stays pressed after its last key event.
// Terminals report no key releases, so movement is latched until key repeat
// delivers the next event.
const holdTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// heldKeys latches continuous movement actions across ticks.
type heldKeys map[core.Action]int

// press (re)starts the latch for a movement action.
func (h heldKeys) press(a core.Action) {
	// Opposite directions cancel so the newest key wins.
	switch a {
	case core.ActionLeft:
		delete(h, core.ActionRight)
	case core.ActionRight:
		delete(h, core.ActionLeft)
	}
	h[a] = holdTicks
}

// apply marks held actions on the frame and counts their latches down.
func (h heldKeys) apply(frame *core.InputFrame) {
	for a, left := range h {
		frame.Set(a)
		if left <= 1 {
			delete(h, a)
		} else {
			h[a] = left - 1
		}
	}
}

// isMovement reports whether an action is a held intent rather than a command.
func isMovement(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}
