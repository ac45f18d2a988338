package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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

// GameState communicates game status to the platform after each tick.
type GameState struct {
	Score    int  // Current run score
	MaxScore int  // Best score this session, never lowered
	Level    int  // Current level (starts at 1)
	Lives    int  // Remaining lives
	HiScore  int  // All-time high score (persist-backed)
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by the game's Step after each simulation tick.
type StepResult struct {
	State GameState
}
