// Package breakout implements the ball-and-paddle brick game: a paddle at
// the bottom, a bouncing ball, and a regenerating wall of bricks.
package breakout

import (
	"math/rand"
	"time"

	"github.com/ledcade/ledcade/internal/config"
	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/registry"
	"github.com/ledcade/ledcade/internal/sim"
)

// gameOverHold is how many ticks the game-over screen stays up before the
// session fully resets back to serving.
const gameOverHold = 20

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Breakout game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	phase   sim.Phase
	session *sim.Session
	paused  bool

	paddleX float64
	paddleY int

	ball      sim.BounceBody
	ballSpeed float64 // Current serve speed, compounded on each clear

	bricks    []Brick
	tickCount int
	holdTicks int // Game-over countdown
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Breakout" }

// DefaultTickRate returns the native simulation rate.
func (g *Game) DefaultTickRate() int { return 10 }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.session = sim.NewSession(cfg.Gameplay.Lives)
	g.paused = false
	g.tickCount = 0
	g.holdTicks = 0

	g.paddleY = runtime.ArenaH - cfg.Paddle.BottomOffset
	g.paddleX = float64((runtime.ArenaW - cfg.Paddle.Width) / 2)

	g.ballSpeed = cfg.Physics.BallSpeed
	g.bricks = buildBricks(cfg.Bricks, runtime.ArenaW)
	g.anchorBall()
	g.phase = sim.PhaseServing
}

// anchorBall parks the ball centered on the paddle, awaiting serve.
func (g *Game) anchorBall() {
	g.ball = sim.BounceBody{
		X:    g.paddleX + float64(g.cfg.Paddle.Width-g.cfg.Physics.BallSize)/2,
		Y:    float64(g.paddleY - g.cfg.Physics.BallSize),
		Size: g.cfg.Physics.BallSize,
	}
}

// serve launches the anchored ball upward with a random horizontal lean.
func (g *Game) serve() {
	dx := 1.0
	if g.rng.Intn(2) == 0 {
		dx = -1.0
	}
	g.ball.DX = dx * g.ballSpeed
	g.ball.DY = -g.ballSpeed
	g.phase = sim.PhaseActive
}

// fullReset returns the whole session to its initial state: score zero,
// lives restored, wall rebuilt, serve speed back to base.
func (g *Game) fullReset() {
	g.session.Reset()
	g.ballSpeed = g.cfg.Physics.BallSpeed
	g.bricks = buildBricks(g.cfg.Bricks, g.runtime.ArenaW)
	g.paddleX = float64((g.runtime.ArenaW - g.cfg.Paddle.Width) / 2)
	g.anchorBall()
	g.phase = sim.PhaseServing
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.fullReset()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase != sim.PhaseGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	switch g.phase {
	case sim.PhaseGameOver:
		g.holdTicks--
		if g.holdTicks <= 0 {
			g.fullReset()
		}

	case sim.PhaseServing:
		g.movePaddle(in)
		g.anchorBall()
		if in.Has(core.ActionPrimary) {
			g.serve()
		}

	case sim.PhaseActive:
		g.movePaddle(in)
		g.stepBall()
	}

	return core.StepResult{State: g.State()}
}

// movePaddle applies horizontal input. Discrete left/right actions count as
// a full axis deflection; the analog axis scales within it.
func (g *Game) movePaddle(in core.InputFrame) {
	axis := in.Axis()
	if in.Has(core.ActionLeft) {
		axis = -1
	}
	if in.Has(core.ActionRight) {
		axis = 1
	}

	g.paddleX += axis * g.cfg.Physics.PaddleFollows
	g.paddleX = core.ClampF(g.paddleX, 0, float64(g.runtime.ArenaW-g.cfg.Paddle.Width))
}

// stepBall runs one tick of ball physics: walls, paddle, then bricks.
func (g *Game) stepBall() {
	g.ball.Advance()

	if g.ball.Reflect(float64(g.runtime.ArenaW), float64(g.runtime.ArenaH)) {
		g.loseBall()
		return
	}

	g.checkPaddle()
	g.checkBricks()
}

// checkPaddle deflects a descending ball off the paddle face.
func (g *Game) checkPaddle() {
	if g.ball.DY <= 0 {
		return
	}

	size := g.cfg.Physics.BallSize
	ballRect := core.Rect{X: int(g.ball.X), Y: int(g.ball.Y), W: size, H: size}
	paddleRect := core.Rect{X: int(g.paddleX), Y: g.paddleY, W: g.cfg.Paddle.Width, H: g.cfg.Paddle.Height}

	if !ballRect.Overlaps(paddleRect) {
		return
	}

	speed := g.difficulty.Speed(g.ballSpeed, g.session.Score(), g.tickCount)
	dx, dy := sim.PaddleDeflect(g.ball.X, g.ball.DX, g.paddleX, g.cfg.Paddle.Width, speed)
	g.ball.DX = dx
	g.ball.DY = dy
	g.ball.Y = float64(g.paddleY - size)
}

// checkBricks consumes at most one brick per tick: the earliest-created
// brick containing the ball's reference point falls. A box graze with the
// point outside every brick consumes nothing. Rebuilds the wall with a
// compounded speed-up when the last brick falls.
func (g *Game) checkBricks() {
	hit := sim.ConsumeFirst(int(g.ball.X), int(g.ball.Y), brickRects(g.bricks))
	if hit < 0 {
		return
	}

	g.bricks = append(g.bricks[:hit], g.bricks[hit+1:]...)
	g.session.AddScore(g.cfg.Gameplay.BrickPoints)
	g.ball.DY = -g.ball.DY

	if len(g.bricks) == 0 {
		g.bricks = buildBricks(g.cfg.Bricks, g.runtime.ArenaW)
		g.ballSpeed *= g.cfg.Physics.ClearSpeedUp
		g.ball.Scale(g.cfg.Physics.ClearSpeedUp)
	}
}

// loseBall handles a bottom exit: one life gone, or the whole session if
// none remain. Only the ball resets on an ordinary miss; score, wall, and
// paddle position survive.
func (g *Game) loseBall() {
	if g.session.LoseLife() {
		g.phase = sim.PhaseGameOver
		g.holdTicks = gameOverHold
		return
	}
	g.anchorBall()
	g.phase = sim.PhaseServing
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		GameOver: g.phase == sim.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Render draws the wall, paddle, and ball into the frame.
func (g *Game) Render(dst *core.Frame) {
	for _, b := range g.bricks {
		dst.FillRect(b.Rect, b.Color)
	}

	dst.FillRect(core.Rect{X: int(g.paddleX), Y: g.paddleY, W: g.cfg.Paddle.Width, H: g.cfg.Paddle.Height}, core.White)

	if g.phase != sim.PhaseGameOver {
		size := g.cfg.Physics.BallSize
		dst.FillRect(core.Rect{X: int(g.ball.X), Y: int(g.ball.Y), W: size, H: size}, core.White)
	}
}

func init() {
	registry.Register("breakout", func() registry.Game { return New() })
}
