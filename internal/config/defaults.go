package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: BreakoutArena{
			Width:  320,
			Height: 180,
		},
		Stage: BreakoutStage{
			Rows: 20,
			Cols: 20,
			Name: "classic",
		},
		Paddle: BreakoutPaddle{
			Width:  32,
			Height: 4,
			Speed:  120,
			Y:      6, // 2 units above the floor plus the paddle height
		},
		Ball: BreakoutBall{
			Radius:          2,
			StartX:          160,
			StartY:          6,
			VelocityX:       40,
			VelocityY:       70,
			BounceSpeed:     80,
			MaxSpeed:        150,
			EnforceMaxSpeed: true,
		},
		Bricks: BreakoutBricks{
			Width:  16,
			Height: 6,
			Points: 10,
		},
		Gameplay: BreakoutGameplay{
			Lives:        3,
			MaxFrameTime: 0.25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
