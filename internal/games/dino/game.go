// Package dino implements the endless-runner-jump game: a runner on a
// ground line hopping over scrolling obstacles, scored by distance.
package dino

import (
	"math/rand"
	"time"

	"github.com/ledcade/ledcade/internal/config"
	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/registry"
	"github.com/ledcade/ledcade/internal/sim"
)

var (
	colRunner   = core.White
	colObstacle = core.RGB{R: 0, G: 255, B: 0}
	colGround   = core.Gray
	colBoom     = core.Red
)

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

// Game implements the Endless Runner game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.DinoConfig
	difficulty *config.DifficultyManager

	phase   sim.Phase
	session *sim.Session
	boom    sim.Boom
	paused  bool

	runner    sim.GravityBody
	groundY   int
	obstacles []Obstacle
	spawn     spawner
	tickCount int
}

// New creates a new Endless Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "dino" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Endless Runner" }

// DefaultTickRate returns the native simulation rate.
func (g *Game) DefaultTickRate() int { return 20 }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDinoPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.spawn = spawner{rng: rand.New(rand.NewSource(seed)), cfg: cfg.Obstacles}

	g.session = sim.NewSession(0)
	g.paused = false
	g.tickCount = 0
	g.groundY = runtime.ArenaH - cfg.Player.GroundOffset
	g.resetWorld()
}

// resetWorld puts the runner back on the ground and clears the field.
// The session score is untouched.
func (g *Game) resetWorld() {
	g.runner = sim.GravityBody{
		X:        float64(g.cfg.Player.X),
		Y:        float64(g.groundY - g.cfg.Player.Height),
		W:        g.cfg.Player.Width,
		H:        g.cfg.Player.Height,
		OnGround: true,
	}
	g.obstacles = g.obstacles[:0]
	g.phase = sim.PhaseActive
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.session.Reset()
		g.tickCount = 0
		g.resetWorld()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.phase == sim.PhaseResolving {
		if g.boom.Tick() {
			g.resetWorld()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPrimary) {
		g.runner.Jump(g.cfg.Physics.JumpImpulse)
	}
	g.updateWorld()

	return core.StepResult{State: g.State()}
}

// updateWorld runs one tick: runner physics, obstacle scrolling, spawning,
// collision, and the distance score.
func (g *Game) updateWorld() {
	if !g.runner.OnGround {
		g.runner.Integrate(g.cfg.Physics.Gravity, g.cfg.Physics.JumpImpulse, g.cfg.Physics.MaxFallSpeed)
		g.runner.Land(float64(g.groundY))
	}

	g.obstacles = advance(g.obstacles, g.cfg.Obstacles.Speed)

	chance := g.difficulty.SpawnChance(g.cfg.Obstacles.SpawnChance, g.session.Score(), g.tickCount)
	if o := g.spawn.maybeSpawn(chance, g.runtime.ArenaW, g.groundY); o != nil {
		g.obstacles = append(g.obstacles, *o)
	}

	runnerRect := core.Rect{X: int(g.runner.X), Y: int(g.runner.Y), W: g.runner.W, H: g.runner.H}
	if hit := sim.FirstOverlap(runnerRect, obstacleRects(g.obstacles)); hit >= 0 {
		cx, cy := runnerRect.Center()
		g.boom.Trigger(cx, cy)
		g.phase = sim.PhaseResolving
		return
	}

	// Distance score: one point per survived tick
	g.session.AddScore(1)
}

func obstacleRects(obstacles []Obstacle) []core.Rect {
	rects := make([]core.Rect, len(obstacles))
	for i, o := range obstacles {
		rects[i] = o.Rect
	}
	return rects
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.session.Score(),
		Paused: g.paused,
	}
}

// Render draws the ground line, obstacles, runner, and blast mark.
func (g *Game) Render(dst *core.Frame) {
	dst.DrawHLine(0, g.groundY, g.runtime.ArenaW, colGround)

	for _, o := range g.obstacles {
		dst.FillRect(o.Rect, colObstacle)
	}

	dst.FillRect(core.Rect{
		X: int(g.runner.X), Y: int(g.runner.Y),
		W: g.runner.W, H: g.runner.H,
	}, colRunner)

	if g.phase == sim.PhaseResolving {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				dst.Set(g.boom.X+dx, g.boom.Y+dy, colBoom)
			}
		}
	}
}

func init() {
	registry.Register("dino", func() registry.Game { return New() })
}
