package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and frame pacing.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickRate     int           // Frames per second requested from the platform (default 60)
	MaxFrameTime time.Duration // Ceiling on a single frame's elapsed time (0 = none)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		MaxFrameTime: 250 * time.Millisecond,
	}
}

// FrameTime caps elapsed to MaxFrameTime and floors it at zero.
func (c RuntimeConfig) FrameTime(elapsed time.Duration) time.Duration {
	if elapsed < 0 {
		return 0
	}
	if c.MaxFrameTime > 0 && elapsed > c.MaxFrameTime {
		return c.MaxFrameTime
	}
	return elapsed
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
	Hits  int // Collisions resolved during the frame
}
