// Package breakout implements the brick-breaker simulation: paddle control,
// ball integration and collision resolution over an owned set of entities.
package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/stage"
)

// Visual variants for entities that are not bricks.
const (
	PaddleVariant = 8
	BallVariant   = 9
)

// EntityID identifies an entity for the lifetime of a World. Zero is never assigned.
type EntityID uint32

// Ball is a moving disc. Position and velocity are in arena units (per second).
type Ball struct {
	ID     EntityID
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Pos returns the ball centre.
func (b *Ball) Pos() core.Vec {
	return core.Vec{X: b.X, Y: b.Y}
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Paddle is the player-controlled bar. X is its centre; Y is fixed.
type Paddle struct {
	ID            EntityID
	X, Y          float64
	Width, Height float64
	Speed         float64 // Units per second at full axis deflection
}

// Brick is a destructible block centred at (X, Y).
type Brick struct {
	ID            EntityID
	X, Y          float64
	Width, Height float64
	Variant       int
	Row, Col      int // Grid cell the brick came from
	alive         bool
}

// Alive reports whether the brick is still in play.
func (b *Brick) Alive() bool {
	return b.alive
}

// Box returns the brick's unexpanded rectangle.
func (b *Brick) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.Width, b.Height)
}

// BrickSet holds bricks in insertion order. Removal takes effect immediately
// for every later scan; Sweep compacts the backing slice once a pass is over.
type BrickSet struct {
	items []*Brick
	live  int
}

// Add inserts a live brick.
func (s *BrickSet) Add(b *Brick) {
	b.alive = true
	s.items = append(s.items, b)
	s.live++
}

// Remove marks the brick dead. It returns false if the brick was already gone.
func (s *BrickSet) Remove(b *Brick) bool {
	if !b.alive {
		return false
	}
	b.alive = false
	s.live--
	return true
}

// Len returns the number of live bricks.
func (s *BrickSet) Len() int {
	return s.live
}

// Live returns the live bricks in insertion order.
func (s *BrickSet) Live() []*Brick {
	out := make([]*Brick, 0, s.live)
	for _, b := range s.items {
		if b.alive {
			out = append(out, b)
		}
	}
	return out
}

// Sweep drops dead bricks from the backing slice.
func (s *BrickSet) Sweep() {
	if len(s.items) == s.live {
		return
	}
	kept := s.items[:0]
	for _, b := range s.items {
		if b.alive {
			kept = append(kept, b)
		}
	}
	clear(s.items[len(kept):])
	s.items = kept
}

// Settings are the arena constants the systems read.
type Settings struct {
	ArenaW, ArenaH float64
	BounceSpeed    float64 // Speed a paddle bounce always produces
	MaxSpeed       float64 // Ball speed cap; 0 disables it
}

// SettingsFrom extracts simulation settings from a game config.
func SettingsFrom(cfg config.BreakoutConfig) Settings {
	s := Settings{
		ArenaW:      cfg.Arena.Width,
		ArenaH:      cfg.Arena.Height,
		BounceSpeed: cfg.Ball.BounceSpeed,
	}
	if cfg.Ball.EnforceMaxSpeed {
		s.MaxSpeed = cfg.Ball.MaxSpeed
	}
	return s
}

// World owns every entity of one session.
type World struct {
	Settings Settings
	Paddle   *Paddle
	Balls    []*Ball
	Bricks   BrickSet

	nextID EntityID
	frames uint64
}

// NewWorld creates an empty world with no paddle, balls or bricks.
func NewWorld(s Settings) *World {
	return &World{Settings: s, nextID: 1}
}

// NewWorldFromConfig builds the paddle, one ball at its serve position and
// the bricks of grid.
func NewWorldFromConfig(cfg config.BreakoutConfig, grid *stage.Grid) *World {
	w := NewWorld(SettingsFrom(cfg))
	w.SetPaddle(Paddle{
		X:      cfg.Arena.Width * 0.5,
		Y:      cfg.Paddle.Y,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
		Speed:  cfg.Paddle.Speed,
	})
	w.AddBall(Ball{
		X:      cfg.Ball.StartX,
		Y:      cfg.Ball.StartY,
		VX:     cfg.Ball.VelocityX,
		VY:     cfg.Ball.VelocityY,
		Radius: cfg.Ball.Radius,
	})
	for _, p := range stage.Layout(grid, cfg.Arena.Height, cfg.Bricks.Width, cfg.Bricks.Height) {
		w.AddBrick(Brick{
			X:       p.X,
			Y:       p.Y,
			Width:   cfg.Bricks.Width,
			Height:  cfg.Bricks.Height,
			Variant: p.Variant,
			Row:     p.Row,
			Col:     p.Col,
		})
	}
	return w
}

func (w *World) allocID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// SetPaddle installs the paddle, replacing any previous one.
func (w *World) SetPaddle(p Paddle) *Paddle {
	p.ID = w.allocID()
	w.Paddle = &p
	return w.Paddle
}

// AddBall adds a ball and returns it.
func (w *World) AddBall(b Ball) *Ball {
	b.ID = w.allocID()
	ball := &b
	w.Balls = append(w.Balls, ball)
	return ball
}

// RemoveBall drops a ball from play.
func (w *World) RemoveBall(id EntityID) {
	for i, b := range w.Balls {
		if b.ID == id {
			w.Balls = append(w.Balls[:i], w.Balls[i+1:]...)
			return
		}
	}
}

// AddBrick adds a live brick and returns it.
func (w *World) AddBrick(b Brick) *Brick {
	b.ID = w.allocID()
	brick := &b
	w.Bricks.Add(brick)
	return brick
}

// Frames returns how many frames have been simulated.
func (w *World) Frames() uint64 {
	return w.frames
}

// Frame advances the world by dt seconds with the given paddle axis value.
// The order is fixed: paddle, then balls, then collisions against the moved
// positions. Destroyed bricks are swept once the pass is complete.
func (w *World) Frame(dt, axis float64) []Collision {
	if w.Paddle != nil {
		MovePaddle(w.Paddle, w.Settings.ArenaW, dt, axis)
	}
	MoveBalls(w.Balls, dt)
	hits := Resolve(w)
	w.Bricks.Sweep()
	w.frames++
	return hits
}

// SpriteKind tells the renderer what an entity is.
type SpriteKind int

const (
	SpritePaddle SpriteKind = iota
	SpriteBall
	SpriteBrick
)

// Sprite is a read-only view of an entity for rendering.
type Sprite struct {
	Kind    SpriteKind
	ID      EntityID
	X, Y    float64 // Centre
	W, H    float64
	Variant int
}

// Sprites returns the paddle, balls and live bricks as detached values.
func (w *World) Sprites() []Sprite {
	out := make([]Sprite, 0, 1+len(w.Balls)+w.Bricks.Len())
	if p := w.Paddle; p != nil {
		out = append(out, Sprite{Kind: SpritePaddle, ID: p.ID, X: p.X, Y: p.Y, W: p.Width, H: p.Height, Variant: PaddleVariant})
	}
	for _, b := range w.Balls {
		d := b.Radius * 2
		out = append(out, Sprite{Kind: SpriteBall, ID: b.ID, X: b.X, Y: b.Y, W: d, H: d, Variant: BallVariant})
	}
	for _, b := range w.Bricks.Live() {
		out = append(out, Sprite{Kind: SpriteBrick, ID: b.ID, X: b.X, Y: b.Y, W: b.Width, H: b.Height, Variant: b.Variant})
	}
	return out
}
