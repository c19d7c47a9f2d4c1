package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geo-shooter/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command.
// Returns the command (may be CmdNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (cmd core.Command, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.CmdQuit, true
	}

	switch key {
	case "left", "a":
		return core.CmdMoveLeft, false
	case "right", "d":
		return core.CmdMoveRight, false
	case "up", "w":
		return core.CmdMoveUp, false
	case "down", "s":
		return core.CmdMoveDown, false
	case " ":
		return core.CmdFire, false
	case "enter":
		return core.CmdStart, false
	case "p", "esc":
		// The game treats pause as a toggle, so one key serves both.
		return core.CmdPause, false
	case "r":
		return core.CmdRestart, false
	}

	return core.CmdNone, false
}

// MapKeyToFrame folds a key message into a command frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.CommandFrame) bool {
	cmd, isQuit := km.MapKey(msg)
	if cmd != core.CmdNone {
		frame.Set(cmd)
	}
	return isQuit
}
