package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay

	NextBaseProbability float64 // Chance a spawned tile is 4 rather than 2; 0 means the engine default
	AlwaysBase          bool    // Only ever spawn 2s
	ParallelLines       bool    // Collapse rows/columns concurrently
	ShowAxisLock        bool    // Show a HUD hint when an axis is locked
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:             80,
		ScreenH:             24,
		Seed:                0, // 0 means use current time in platform layer
		NextBaseProbability: 0.5,
		ShowAxisLock:        true,
	}
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score       int  // Current score
	HighestTile int  // Largest tile on the board
	Moves       int  // Moves that changed the board
	Size        int  // Board dimension
	GameOver    bool // Whether the game has ended
	Paused      bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State   GameState
	Changed bool // Whether the frame changed anything worth redrawing
}
