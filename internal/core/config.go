package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// EffectiveTickRate returns TickRate, or 60 when it is not positive.
func (c RuntimeConfig) EffectiveTickRate() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// GameState is what a game reports to the platform after each step.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the game is idle or paused
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State GameState
}
