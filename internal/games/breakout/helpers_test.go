package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/stage"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// testSettings is the default arena without a speed cap.
func testSettings() Settings {
	return Settings{ArenaW: 320, ArenaH: 180, BounceSpeed: 80}
}

// bareWorld returns a world with the default paddle and nothing else.
func bareWorld() *World {
	w := NewWorld(testSettings())
	w.SetPaddle(Paddle{X: 160, Y: 6, Width: 32, Height: 4, Speed: 120})
	return w
}

// gridWith returns a 20x20 grid that is empty except for the given cells.
func gridWith(cells map[[2]int]int) *stage.Grid {
	g := &stage.Grid{Rows: 20, Cols: 20, Cells: make([][]int, 20)}
	for r := range g.Cells {
		g.Cells[r] = make([]int, 20)
	}
	for rc, code := range cells {
		g.Cells[rc[0]][rc[1]] = code
	}
	return g
}

// input builds a frame covering dt seconds.
func input(dt, axis float64, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Elapsed = time.Duration(dt * float64(time.Second))
	if axis != 0 {
		in.SetAxis(core.AxisPaddle, axis)
	}
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
