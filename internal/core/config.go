package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The seed makes a whole run reproducible.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Status summarises the simulation for the platform after each tick.
type Status struct {
	Score    int  // Current score
	Coins    int  // Currency balance
	Lives    int  // Remaining player lives
	InMenu   bool // Whether the start menu is showing
	Paused   bool // Whether the game is paused
	GameOver bool // Whether the run has ended
}

// RunRecord is the terminal score/progress record emitted on game over.
// The core hands it to the platform; persistence is the platform's job.
type RunRecord struct {
	Score       int
	DurationSec float64
	Coins       int
	Cause       string // "player_destroyed", "boss_defeated", ...
}

// StepResult is returned by the simulation after each tick.
type StepResult struct {
	Status Status

	// Record is non-nil exactly once, on the tick the run ends.
	Record *RunRecord
}
