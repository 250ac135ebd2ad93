package breakout

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/stage"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BrickChar   = '█'
	BorderHoriz = '─'
)

// Session states
const (
	StateServe    = "serve"    // Ball rides the paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Simulation frozen
	StateCleared  = "cleared"  // No bricks left
	StateGameOver = "gameover" // No lives left
)

// Minimum terminal size the renderer supports.
const (
	minScreenW = 30
	minScreenH = 15
)

// setup holds the configuration installed by Configure for the registry factory.
var setup struct {
	sync.Mutex
	cfg  config.BreakoutConfig
	grid *stage.Grid
	set  bool
}

// Configure sets the config and stage used by games created through the registry.
func Configure(cfg config.BreakoutConfig, grid *stage.Grid) {
	setup.Lock()
	defer setup.Unlock()
	setup.cfg = cfg
	setup.grid = grid
	setup.set = true
}

// Game is a brick-breaker session: one stage, a number of lives and a score
// around a World.
type Game struct {
	cfg     config.BreakoutConfig
	grid    *stage.Grid
	runtime core.RuntimeConfig

	world       *World
	state       string
	resumeState string
	score       int
	lives       int
	serveOffset float64 // Ball X minus paddle X while serving
	lastHits    []Collision
}

// New creates a game for the given config and stage. Call Reset before Step.
func New(cfg config.BreakoutConfig, grid *stage.Grid) *Game {
	return &Game{cfg: cfg, grid: grid}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cfg.Stage.Name != "" && g.cfg.Stage.File == "" {
		return fmt.Sprintf("Breakout: %s", g.cfg.Stage.Name)
	}
	return "Breakout"
}

// Reset rebuilds the world from the stage and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.world = NewWorldFromConfig(g.cfg, g.grid)
	g.serveOffset = g.cfg.Ball.StartX - g.world.Paddle.X
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.lastHits = nil
	g.serve()
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Phase returns the session state name.
func (g *Game) Phase() string {
	return g.state
}

// LastHits returns the collisions resolved in the most recent frame.
func (g *Game) LastHits() []Collision {
	return g.lastHits
}

// serve parks a single ball on the paddle.
func (g *Game) serve() {
	w := g.world
	if len(w.Balls) == 0 {
		w.AddBall(Ball{Radius: g.cfg.Ball.Radius})
	}
	w.Balls = w.Balls[:1]
	b := w.Balls[0]
	b.VX, b.VY = 0, 0
	g.followPaddle(b)
	g.state = StateServe
}

func (g *Game) followPaddle(b *Ball) {
	b.X = core.ClampF(g.world.Paddle.X+g.serveOffset, b.Radius, g.cfg.Arena.Width-b.Radius)
	b.Y = g.cfg.Ball.StartY
}

func (g *Game) launch() {
	for _, b := range g.world.Balls {
		b.VX = g.cfg.Ball.VelocityX
		b.VY = g.cfg.Ball.VelocityY
	}
	g.state = StatePlaying
}

// Step advances the game by in.Elapsed using the paddle axis from in.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.lastHits = g.lastHits[:0]

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateCleared) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.resumeState
		case StateServe, StatePlaying:
			g.resumeState = g.state
			g.state = StatePaused
		}
	}

	dt := in.Seconds()
	axis := in.Axis(core.AxisPaddle)

	switch g.state {
	case StateServe:
		MovePaddle(g.world.Paddle, g.cfg.Arena.Width, dt, axis)
		g.followPaddle(g.world.Balls[0])
		if in.Has(core.ActionLaunch) {
			g.launch()
		}
	case StatePlaying:
		g.lastHits = g.world.Frame(dt, axis)
		g.applyHits()
		g.dropLostBalls()
	}

	return core.StepResult{State: g.State(), Hits: len(g.lastHits)}
}

func (g *Game) applyHits() {
	for _, h := range g.lastHits {
		if h.Kind == HitBrick {
			g.score += g.cfg.Bricks.Points
		}
	}
	if g.world.Bricks.Len() == 0 {
		g.state = StateCleared
	}
}

// dropLostBalls removes balls that fell below the arena. Losing the last one
// costs a life.
func (g *Game) dropLostBalls() {
	w := g.world
	for i := len(w.Balls) - 1; i >= 0; i-- {
		b := w.Balls[i]
		if b.Y < -b.Radius {
			w.RemoveBall(b.ID)
		}
	}
	if len(w.Balls) > 0 || g.state != StatePlaying {
		return
	}

	g.lives--
	if g.lives <= 0 {
		g.state = StateGameOver
		return
	}
	g.serve()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	v := newViewport(g.cfg.Arena.Width, g.cfg.Arena.Height, dst.Width(), dst.Height())
	for _, s := range g.world.Sprites() {
		switch s.Kind {
		case SpriteBrick:
			x0, x1 := v.span(s.X-s.W*0.5, s.X+s.W*0.5)
			dst.DrawHLine(x0, v.row(s.Y), x1-x0, BrickChar, core.VariantColor(s.Variant))
		case SpritePaddle:
			x0, x1 := v.span(s.X-s.W*0.5, s.X+s.W*0.5)
			dst.DrawHLine(x0, v.row(s.Y), x1-x0, PaddleChar, core.ColorWhite)
		case SpriteBall:
			dst.SetColored(v.col(s.X), v.row(s.Y), BallChar, core.ColorYellow)
		}
	}
	g.renderOverlay(dst)
}

// viewport maps y-up arena units onto screen cells below the HUD.
type viewport struct {
	sx, sy      float64
	top, bottom int
	arenaH      float64
	cols        int
}

// The top rows hold the HUD and the last row holds status messages.
const (
	hudRows    = 2
	statusRows = 1
)

func newViewport(arenaW, arenaH float64, cols, rows int) viewport {
	playRows := rows - hudRows - statusRows
	return viewport{
		sx:     float64(cols) / arenaW,
		sy:     float64(playRows) / arenaH,
		top:    hudRows,
		bottom: hudRows + playRows - 1,
		arenaH: arenaH,
		cols:   cols,
	}
}

func (v viewport) col(x float64) int {
	return core.Clamp(int(x*v.sx), 0, v.cols-1)
}

// span returns the half-open cell range covering [left, right], at least one cell wide.
func (v viewport) span(left, right float64) (int, int) {
	x0 := v.col(left)
	x1 := core.Clamp(int(right*v.sx), 0, v.cols)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}

func (v viewport) row(y float64) int {
	return core.Clamp(v.top+int((v.arenaH-y)*v.sy), v.top, v.bottom)
}

// renderHUD draws the score, lives and bricks left.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))
	bricks := fmt.Sprintf("Bricks: %d", g.world.Bricks.Len())
	dst.DrawText(dst.Width()-len(bricks)-1, 0, bricks)
	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz, core.ColorGray)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case StateCleared:
		drawCenteredBox(dst, "STAGE CLEARED", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateCleared,
		Paused:   g.state == StatePaused,
	}
}

// newConfigured builds a game from the Configure values, falling back to the
// default config and its built-in stage.
func newConfigured() (registry.Game, error) {
	setup.Lock()
	cfg, grid, ok := setup.cfg, setup.grid, setup.set
	setup.Unlock()

	if !ok {
		cfg = config.DefaultBreakoutConfig()
	}
	if grid == nil {
		var err error
		grid, err = stage.Resolve(cfg.Stage.Name, cfg.Stage.File, cfg.Stage.Rows, cfg.Stage.Cols)
		if err != nil {
			return nil, fmt.Errorf("breakout: %w", err)
		}
	}
	return New(cfg, grid), nil
}

func init() {
	registry.Register("breakout", newConfigured)
}
