package breakout

import "math"

// BallState is the stored state of one ball.
type BallState struct {
	ID     EntityID
	X, Y   float64
	VX, VY float64
}

// Snapshot contains the complete simulation state for replay and determinism checks.
type Snapshot struct {
	Frame   uint64
	State   string
	Score   int
	Lives   int
	PaddleX float64

	Balls []BallState

	// Live brick ids in insertion order
	Bricks []EntityID
}

// Snapshot captures the world's state. Session fields are left zero.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{Frame: w.frames}
	if w.Paddle != nil {
		snap.PaddleX = w.Paddle.X
	}
	snap.Balls = make([]BallState, len(w.Balls))
	for i, b := range w.Balls {
		snap.Balls[i] = BallState{ID: b.ID, X: b.X, Y: b.Y, VX: b.VX, VY: b.VY}
	}
	live := w.Bricks.Live()
	snap.Bricks = make([]EntityID, len(live))
	for i, b := range live {
		snap.Bricks[i] = b.ID
	}
	return snap
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.world.Snapshot()
	snap.State = g.state
	snap.Score = g.score
	snap.Lives = g.lives
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so any divergence shows up.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)

	h = h*31 + uint64(len(snap.Balls))
	for _, b := range snap.Balls {
		h = h*31 + uint64(b.ID)
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.VX)
		h = h*31 + math.Float64bits(b.VY)
	}

	h = h*31 + uint64(len(snap.Bricks))
	for _, id := range snap.Bricks {
		h = h*31 + uint64(id)
	}

	return h
}
