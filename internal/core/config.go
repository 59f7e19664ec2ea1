package core

// RuntimeConfig contains configuration passed to a session at initialization.
// Sessions use this to adapt to screen size and for deterministic play.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    uint64 // RNG seed; 0 means seed from system entropy
	MinW    int    // Smallest usable screen width
	MinH    int    // Smallest usable screen height
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
		MinW:    31,
		MinH:    15,
	}
}

// GameState represents the current state of a session.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Accumulated score
	Moves    int  // Moves played so far
	GameOver bool // Whether the board is terminal
	Paused   bool // Whether input is currently ignored
}

// StepResult is returned after each input is applied.
type StepResult struct {
	State GameState
	Delta int  // Score gained by this step
	Moved bool // Whether a move was applied
}
