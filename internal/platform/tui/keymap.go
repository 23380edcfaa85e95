package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DarrenOsborne/snake-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions. Centralizing
// the bindings keeps them testable without a terminal.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings: arrows/WASD
// for movement, P to pause, R to restart, Q or Ctrl+C to quit.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "up", "w":
		return core.ActionUp, false
	case "down", "s":
		return core.ActionDown, false
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}
