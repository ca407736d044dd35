package core

import "fmt"

// RuntimeConfig contains configuration passed to games at initialization.
// The arena is the fixed pixel grid all games simulate in; 64x32 matches
// the LED matrix panels the games were tuned for.
type RuntimeConfig struct {
	ArenaW   int   // Arena width in pixels
	ArenaH   int   // Arena height in pixels
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay (0 = time-based, set by platform)
}

// DefaultConfig returns a RuntimeConfig with the standard panel geometry.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ArenaW:   64,
		ArenaH:   32,
		TickRate: 20,
		Seed:     0,
	}
}

// Validate rejects configurations the tick loop cannot run with.
// Called before any game or display is touched; failures are fatal.
func (c RuntimeConfig) Validate() error {
	if c.ArenaW <= 0 || c.ArenaH <= 0 {
		return fmt.Errorf("core: invalid arena size %dx%d", c.ArenaW, c.ArenaH)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("core: invalid tick rate %d", c.TickRate)
	}
	return nil
}

// GameState represents the current state of a game, returned by
// Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives (0 for games without lives)
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
