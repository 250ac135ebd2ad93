package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// MoveBalls translates every ball by its velocity over dt seconds.
// Velocities are not touched. Negative dt counts as 0.
func MoveBalls(balls []*Ball, dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range balls {
		p := b.Pos().Add(core.Vec{X: b.VX, Y: b.VY}.Scale(dt))
		b.X, b.Y = p.X, p.Y
	}
}
