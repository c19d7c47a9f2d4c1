package core

// Command represents a semantic game command, abstracted from physical key
// presses. The platform maps keyboard input to commands; the simulation
// consumes one CommandFrame per tick.
type Command int

const (
	CmdNone      Command = iota
	CmdMoveLeft          // A, Left arrow
	CmdMoveRight         // D, Right arrow
	CmdMoveUp            // W, Up arrow
	CmdMoveDown          // S, Down arrow
	CmdFire              // Space, Z
	CmdStart             // Enter - start from menu
	CmdPause             // P, Escape while playing
	CmdResume            // P, Escape, Space while paused
	CmdRestart           // R after game over
	CmdQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdMoveUp:
		return "MoveUp"
	case CmdMoveDown:
		return "MoveDown"
	case CmdFire:
		return "Fire"
	case CmdStart:
		return "Start"
	case CmdPause:
		return "Pause"
	case CmdResume:
		return "Resume"
	case CmdRestart:
		return "Restart"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CommandFrame collects all commands issued during a single simulation tick.
// Multiple commands may be active in the same tick (e.g. a diagonal move plus
// fire); the simulation applies them in its own fixed order.
type CommandFrame struct {
	Commands map[Command]bool
}

// NewCommandFrame creates an empty command frame.
func NewCommandFrame() CommandFrame {
	return CommandFrame{
		Commands: make(map[Command]bool),
	}
}

// Set marks a command as issued for this frame.
func (f *CommandFrame) Set(c Command) {
	if f.Commands == nil {
		f.Commands = make(map[Command]bool)
	}
	f.Commands[c] = true
}

// Has returns true if the given command was issued this frame.
func (f CommandFrame) Has(c Command) bool {
	if f.Commands == nil {
		return false
	}
	return f.Commands[c]
}

// Clear resets all commands for the next frame.
func (f *CommandFrame) Clear() {
	for k := range f.Commands {
		delete(f.Commands, k)
	}
}

// Clone creates a copy of this command frame.
func (f CommandFrame) Clone() CommandFrame {
	clone := NewCommandFrame()
	for k, v := range f.Commands {
		clone.Commands[k] = v
	}
	return clone
}
