package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// MovePaddle shifts the paddle by speed*dt*axis and clamps it so it stays
// fully inside an arena of width arenaW. Axis values outside [-1, 1] are
// clamped and NaN reads as 0; an axis of 0 leaves the paddle where it is.
// Negative dt counts as 0.
func MovePaddle(p *Paddle, arenaW, dt, axis float64) {
	if math.IsNaN(axis) {
		return
	}
	axis = core.ClampF(axis, -1, 1)
	if axis == 0 || dt <= 0 {
		return
	}
	half := p.Width * 0.5
	p.X = core.ClampF(p.X+p.Speed*dt*axis, half, arenaW-half)
}
