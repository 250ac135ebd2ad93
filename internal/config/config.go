// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Arena    BreakoutArena    `yaml:"arena"`
	Stage    BreakoutStage    `yaml:"stage"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutArena defines the arena size in stage units. The arena is y-up.
type BreakoutArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutStage selects the brick layout and its grid dimensions.
type BreakoutStage struct {
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
	Name string `yaml:"name"` // Built-in stage name
	File string `yaml:"file"` // Path to a stage file; overrides Name
}

// BreakoutPaddle defines the paddle geometry and speed.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units per second at full axis deflection
	Y      float64 `yaml:"y"`     // Fixed vertical centre
}

// BreakoutBall defines the ball geometry, serve state and speed policy.
type BreakoutBall struct {
	Radius          float64 `yaml:"radius"`
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	VelocityX       float64 `yaml:"velocity_x"`
	VelocityY       float64 `yaml:"velocity_y"`
	BounceSpeed     float64 `yaml:"bounce_speed"` // Speed every paddle bounce resets to
	MaxSpeed        float64 `yaml:"max_speed"`
	EnforceMaxSpeed bool    `yaml:"enforce_max_speed"`
}

// BreakoutBricks defines brick geometry and scoring.
type BreakoutBricks struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Points int     `yaml:"points"`
}

// BreakoutGameplay defines session rules around the simulation.
type BreakoutGameplay struct {
	Lives        int     `yaml:"lives"`
	MaxFrameTime float64 `yaml:"max_frame_time"` // Seconds; 0 disables the ceiling
}

// FrameTimeLimit returns MaxFrameTime as a duration.
func (g BreakoutGameplay) FrameTimeLimit() time.Duration {
	return time.Duration(g.MaxFrameTime * float64(time.Second))
}

// Validate rejects configurations the simulation cannot run safely,
// in particular degenerate geometry that would divide by zero.
func (c BreakoutConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Arena.Width > 0 && c.Arena.Height > 0, "arena size must be positive"},
		{c.Stage.Rows > 0 && c.Stage.Cols > 0, "stage rows and cols must be positive"},
		{c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive"},
		{c.Paddle.Width <= c.Arena.Width, "paddle is wider than the arena"},
		{c.Paddle.Speed >= 0, "paddle speed must not be negative"},
		{c.Ball.Radius >= 0, "ball radius must not be negative"},
		{c.Ball.BounceSpeed > 0, "ball bounce speed must be positive"},
		{c.Ball.MaxSpeed >= 0, "ball max speed must not be negative"},
		{!c.Ball.EnforceMaxSpeed || c.Ball.MaxSpeed == 0 || c.Ball.BounceSpeed <= c.Ball.MaxSpeed, "ball bounce speed exceeds max speed"},
		{c.Bricks.Width > 0 && c.Bricks.Height > 0, "brick size must be positive"},
		{float64(c.Stage.Cols)*c.Bricks.Width <= c.Arena.Width, "brick grid is wider than the arena"},
		{float64(c.Stage.Rows)*c.Bricks.Height <= c.Arena.Height, "brick grid is taller than the arena"},
		{c.Gameplay.Lives > 0, "lives must be positive"},
		{c.Gameplay.MaxFrameTime >= 0, "max frame time must not be negative"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.msg)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
