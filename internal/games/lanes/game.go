// Package lanes implements the lane-runner game: a runner hopping between
// three lane columns, jumping obstacles and collecting coins.
package lanes

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
	colObstacle = core.Red
	colCoin     = core.Gold
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

// Game implements the Lane Runner game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.LanesConfig
	difficulty *config.DifficultyManager
	spawn      spawner

	phase   sim.Phase
	session *sim.Session
	boom    sim.Boom
	paused  bool

	runner  sim.GravityBody
	lane    int
	laneX   []int
	lastDir int // Axis edge latch: -1, 0, or 1

	groundY   int
	obstacles []Obstacle
	coins     []Coin
	tickCount int
}

// New creates a new Lane Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "lanes" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Lane Runner" }

// DefaultTickRate returns the native simulation rate.
func (g *Game) DefaultTickRate() int { return 20 }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadLanes(configPath)
	if err != nil {
		cfg = config.DefaultLanesConfig()
	}
	if difficultyPreset != "" {
		config.ApplyLanesPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.spawn = spawner{rng: rand.New(rand.NewSource(seed))}

	// Lane centers evenly split the arena width
	g.laneX = make([]int, cfg.Lanes.Count)
	for i := range g.laneX {
		g.laneX[i] = runtime.ArenaW * (i + 1) / (cfg.Lanes.Count + 1)
	}

	g.session = sim.NewSession(0)
	g.paused = false
	g.tickCount = 0
	g.groundY = runtime.ArenaH - cfg.Lanes.GroundOffset
	g.lane = cfg.Lanes.Count / 2
	g.lastDir = 0
	g.resetWorld()
}

// resetWorld puts the runner back on the ground in its current lane and
// clears the field. The session score is untouched.
func (g *Game) resetWorld() {
	g.runner = sim.GravityBody{
		X:        float64(g.laneX[g.lane] - g.cfg.Player.Width/2),
		Y:        float64(g.groundY - g.cfg.Player.Height),
		W:        g.cfg.Player.Width,
		H:        g.cfg.Player.Height,
		OnGround: true,
	}
	g.obstacles = g.obstacles[:0]
	g.coins = g.coins[:0]
	g.phase = sim.PhaseActive
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.session.Reset()
		g.tickCount = 0
		g.lane = g.cfg.Lanes.Count / 2
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

	g.handleMovement(in)
	g.updateWorld()

	return core.StepResult{State: g.State()}
}

// handleMovement applies lane switches and jumps. Discrete left/right
// actions switch one lane per press; the analog axis switches on the edge
// where it crosses out of neutral, latched until it returns.
func (g *Game) handleMovement(in core.InputFrame) {
	dir := 0
	if in.Has(core.ActionLeft) {
		dir = -1
	} else if in.Has(core.ActionRight) {
		dir = 1
	} else if axis := in.Axis(); axis < -0.5 {
		dir = -1
	} else if axis > 0.5 {
		dir = 1
	}

	if dir != 0 && dir != g.lastDir {
		g.lane = core.Clamp(g.lane+dir, 0, g.cfg.Lanes.Count-1)
		g.runner.X = float64(g.laneX[g.lane] - g.cfg.Player.Width/2)
	}
	g.lastDir = dir

	if in.Has(core.ActionPrimary) {
		g.runner.Jump(g.cfg.Physics.JumpImpulse)
	}
}

// updateWorld runs one tick: runner physics, scrolling, spawning, and
// collision. Obstacles end the run; coins score, at most one per tick.
func (g *Game) updateWorld() {
	if !g.runner.OnGround {
		g.runner.Integrate(g.cfg.Physics.Gravity, g.cfg.Physics.JumpImpulse, g.cfg.Physics.MaxFallSpeed)
		g.runner.Land(float64(g.groundY))
	}

	obsChance := g.difficulty.SpawnChance(g.cfg.Obstacles.SpawnChance, g.session.Score(), g.tickCount)
	if o := g.spawn.maybeObstacle(obsChance, g.cfg.Obstacles, g.runtime.ArenaW); o != nil {
		g.obstacles = append(g.obstacles, *o)
	}
	if c := g.spawn.maybeCoin(g.cfg.Coins.SpawnChance, g.cfg.Coins, g.runtime.ArenaW); c != nil {
		g.coins = append(g.coins, *c)
	}

	keptObs := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.X -= g.cfg.Obstacles.Speed
		if o.X+o.W/2 > 0 {
			keptObs = append(keptObs, o)
		}
	}
	g.obstacles = keptObs

	keptCoins := g.coins[:0]
	for _, c := range g.coins {
		c.X -= g.cfg.Coins.Speed
		if c.X+c.Sz/2 > 0 {
			keptCoins = append(keptCoins, c)
		}
	}
	g.coins = keptCoins

	runnerRect := core.Rect{X: int(g.runner.X), Y: int(g.runner.Y), W: g.runner.W, H: g.runner.H}

	if hit := sim.FirstOverlap(runnerRect, obstacleRects(g.obstacles, g.groundY)); hit >= 0 {
		cx, cy := runnerRect.Center()
		g.boom.Trigger(cx, cy)
		g.phase = sim.PhaseResolving
		return
	}

	if got := sim.FirstOverlap(runnerRect, coinRects(g.coins, g.groundY)); got >= 0 {
		g.coins = append(g.coins[:got], g.coins[got+1:]...)
		g.session.AddScore(g.cfg.Coins.Points)
	}
}

func obstacleRects(obstacles []Obstacle, groundY int) []core.Rect {
	rects := make([]core.Rect, len(obstacles))
	for i, o := range obstacles {
		rects[i] = o.rect(groundY)
	}
	return rects
}

func coinRects(coins []Coin, groundY int) []core.Rect {
	rects := make([]core.Rect, len(coins))
	for i, c := range coins {
		rects[i] = c.rect(groundY)
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

// Render draws the ground line, obstacles, coins, runner, and blast mark.
func (g *Game) Render(dst *core.Frame) {
	dst.DrawHLine(0, g.groundY, g.runtime.ArenaW, colGround)

	for _, o := range g.obstacles {
		dst.FillRect(o.rect(g.groundY), colObstacle)
	}
	for _, c := range g.coins {
		dst.FillRect(c.rect(g.groundY), colCoin)
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
	registry.Register("lanes", func() registry.Game { return New() })
}
