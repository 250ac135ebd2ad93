package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// maxPaddleRatio bounds the offset ratio so a paddle bounce always leaves upward.
// It only comes into play when the ball radius is large relative to the paddle.
const maxPaddleRatio = 0.95

// Edge is the region of a brick's expanded hitbox a ball centre falls in.
// For wall collisions it names the wall.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "none"
	}
}

// CollisionKind tells what a ball bounced off.
type CollisionKind int

const (
	HitWall CollisionKind = iota
	HitPaddle
	HitBrick
)

// String returns a human-readable name for the kind.
func (k CollisionKind) String() string {
	switch k {
	case HitWall:
		return "wall"
	case HitPaddle:
		return "paddle"
	case HitBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Collision records one resolved bounce.
type Collision struct {
	Ball  EntityID
	Kind  CollisionKind
	Brick EntityID // Zero unless Kind is HitBrick
	Edge  Edge     // Wall side or brick region
}

// ClassifyHit returns the region of the brick's hitbox, expanded by radius,
// that p lies in. The left and right regions are triangles whose apex sits
// half the brick height inward at the brick's vertical centre; what remains of
// the upper and lower halves is TOP and BOTTOM. Points outside give EdgeNone.
func ClassifyHit(b *Brick, radius float64, p core.Vec) Edge {
	box := b.Box().Expand(radius)
	h2 := b.Height * 0.5
	cy := b.Y

	if core.PointInTriangle(p,
		core.Vec{X: box.Left, Y: box.Top},
		core.Vec{X: box.Left + h2, Y: cy},
		core.Vec{X: box.Left, Y: box.Bottom}) {
		return EdgeLeft
	}
	if core.PointInTriangle(p,
		core.Vec{X: box.Right, Y: box.Top},
		core.Vec{X: box.Right - h2, Y: cy},
		core.Vec{X: box.Right, Y: box.Bottom}) {
		return EdgeRight
	}
	if core.PointInRect(p.X, p.Y, box.Left, cy, box.Right, box.Top) {
		return EdgeTop
	}
	if core.PointInRect(p.X, p.Y, box.Left, box.Bottom, box.Right, cy) {
		return EdgeBottom
	}
	return EdgeNone
}

// Resolve bounces every ball off walls, the paddle and bricks, removing the
// bricks it hits. Balls are processed in order, so a brick destroyed by one
// ball is invisible to the rest.
//
// Per ball, wall and paddle checks always run; once any of them or a brick
// has produced a bounce, the brick scan stops. Each flip only happens when
// the ball is moving into the surface, so a ball already leaving is untouched.
func Resolve(w *World) []Collision {
	var hits []Collision
	for _, b := range w.Balls {
		hits = resolveBall(w, b, hits)
	}
	return hits
}

func resolveBall(w *World, b *Ball, hits []Collision) []Collision {
	s := w.Settings
	r := b.Radius
	collided := false

	if b.Y >= s.ArenaH-r && b.VY > 0 {
		b.VY = -b.VY
		collided = true
		hits = append(hits, Collision{Ball: b.ID, Kind: HitWall, Edge: EdgeTop})
	}
	if b.X >= s.ArenaW-r && b.VX > 0 {
		b.VX = -b.VX
		collided = true
		hits = append(hits, Collision{Ball: b.ID, Kind: HitWall, Edge: EdgeRight})
	} else if b.X <= r && b.VX < 0 {
		b.VX = -b.VX
		collided = true
		hits = append(hits, Collision{Ball: b.ID, Kind: HitWall, Edge: EdgeLeft})
	}

	if p := w.Paddle; p != nil && b.VY < 0 && paddleContains(p, b) {
		bounceOffPaddle(p, b, s.BounceSpeed)
		collided = true
		hits = append(hits, Collision{Ball: b.ID, Kind: HitPaddle, Edge: EdgeTop})
	}

	for _, br := range w.Bricks.items {
		if collided {
			break
		}
		if !br.Alive() {
			continue
		}
		edge := ClassifyHit(br, r, b.Pos())
		if edge == EdgeNone {
			continue
		}
		if (edge == EdgeLeft && b.VX > 0) || (edge == EdgeRight && b.VX < 0) {
			b.VX = -b.VX
			collided = true
		}
		if (edge == EdgeBottom && b.VY > 0) || (edge == EdgeTop && b.VY < 0) {
			b.VY = -b.VY
			collided = true
		}
		if collided {
			w.Bricks.Remove(br)
			hits = append(hits, Collision{Ball: b.ID, Kind: HitBrick, Brick: br.ID, Edge: edge})
		}
	}

	if s.MaxSpeed > 0 {
		capSpeed(b, s.MaxSpeed)
	}
	return hits
}

// paddleContains reports whether the ball centre is inside the paddle hitbox:
// the paddle's horizontal span grown by the radius, from the paddle line up to
// half its height plus the radius.
func paddleContains(p *Paddle, b *Ball) bool {
	half := p.Width * 0.5
	return core.PointInRect(b.X, b.Y,
		p.X-half-b.Radius, p.Y,
		p.X+half+b.Radius, p.Y+p.Height*0.5+b.Radius)
}

// bounceOffPaddle sends the ball upward at a fixed speed, angled by how far
// from the paddle centre it struck. A centre hit goes straight up; hits
// toward the right edge lean right and toward the left edge lean left.
func bounceOffPaddle(p *Paddle, b *Ball, speed float64) {
	half := p.Width * 0.5
	if half <= 0 {
		b.VY = math.Abs(b.VY)
		return
	}
	ratio := core.ClampF(0.8*(p.X-b.X)/half, -maxPaddleRatio, maxPaddleRatio)
	angle := ratio * math.Pi / 2
	// (0, speed) rotated counter-clockwise by angle.
	b.VX = -speed * math.Sin(angle)
	b.VY = speed * math.Cos(angle)
}

func capSpeed(b *Ball, limit float64) {
	speed := math.Hypot(b.VX, b.VY)
	if speed <= limit || speed == 0 {
		return
	}
	k := limit / speed
	b.VX *= k
	b.VY *= k
}
