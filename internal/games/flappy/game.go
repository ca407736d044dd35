// Package flappy implements the flap-and-avoid game: a gravity-bound bird
// threading the gaps of scrolling pipe pairs.
package flappy

import (
	"math/rand"
	"time"

	"github.com/ledcade/ledcade/internal/config"
	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/registry"
	"github.com/ledcade/ledcade/internal/sim"
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

// Game implements the Flap & Avoid game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	phase   sim.Phase
	session *sim.Session
	boom    sim.Boom
	paused  bool

	bird     sim.GravityBody
	flapHeld bool // Cooldown: a new flap needs a release first

	pipes     []Pipe
	nextSpawn int
	tickCount int
}

// New creates a new Flap & Avoid game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Flap & Avoid" }

// DefaultTickRate returns the native simulation rate.
func (g *Game) DefaultTickRate() int { return 15 }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.session = sim.NewSession(0)
	g.paused = false
	g.tickCount = 0
	g.resetWorld(true)
}

// resetWorld puts the bird back at its start and clears the pipes. The
// session score is untouched: a boom costs the run, not the points. On a
// fresh start the first pipe waits a full spacing; after a boom it spawns
// immediately.
func (g *Game) resetWorld(fresh bool) {
	g.bird = sim.GravityBody{
		X: float64(g.runtime.ArenaW / 4),
		Y: float64(g.runtime.ArenaH / 2),
		W: birdW,
		H: birdH,
	}
	g.flapHeld = false
	g.pipes = g.pipes[:0]
	if fresh {
		g.nextSpawn = g.tickCount + g.cfg.Obstacles.PipeSpacing
	} else {
		g.nextSpawn = g.tickCount
	}
	g.phase = sim.PhaseActive
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.session.Reset()
		g.tickCount = 0
		g.resetWorld(true)
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
			g.resetWorld(false)
		}
		return core.StepResult{State: g.State()}
	}

	g.handleFlap(in)
	g.updateWorld()

	return core.StepResult{State: g.State()}
}

// handleFlap fires the impulse on the press edge only: a held primary does
// nothing until a release arrives.
func (g *Game) handleFlap(in core.InputFrame) {
	if in.Has(core.ActionRelease) {
		g.flapHeld = false
	}
	if in.Has(core.ActionPrimary) && !g.flapHeld {
		g.bird.VY = -g.cfg.Physics.FlapImpulse
		g.flapHeld = true
	}
}

// updateWorld runs one tick of bird physics, pipe scrolling, and collision.
func (g *Game) updateWorld() {
	g.bird.Integrate(g.cfg.Physics.Gravity, g.cfg.Physics.MaxRiseSpeed, g.cfg.Physics.MaxFallSpeed)

	if g.tickCount >= g.nextSpawn {
		gap := g.difficulty.GapSize(g.cfg.Obstacles.GapSize, g.session.Score(), g.tickCount)
		g.pipes = append(g.pipes, spawnPipe(g.rng, g.runtime.ArenaW, g.runtime.ArenaH, gap, g.cfg.Obstacles.GapMargin))
		g.nextSpawn = g.tickCount + g.cfg.Obstacles.PipeSpacing
	}

	birdX := int(g.bird.X)
	kept := g.pipes[:0]
	for i := range g.pipes {
		p := g.pipes[i]
		p.X -= g.cfg.Obstacles.Speed
		if !p.Scored && p.X+g.cfg.Obstacles.PipeWidth-1 < birdX {
			p.Scored = true
			g.session.AddScore(1)
		}
		if !p.offScreen(g.cfg.Obstacles.PipeWidth) {
			kept = append(kept, p)
		}
	}
	g.pipes = kept

	g.checkCollision()
}

// checkCollision triggers the boom on an arena-bound exit or a pipe hit.
func (g *Game) checkCollision() {
	out := g.bird.Y < 0 || int(g.bird.Y)+birdH >= g.runtime.ArenaH
	hit := false
	if !out {
		birdRect := core.Rect{X: int(g.bird.X), Y: int(g.bird.Y), W: birdW, H: birdH}
		for i := range g.pipes {
			if g.pipes[i].collides(birdRect, g.cfg.Obstacles.PipeWidth) {
				hit = true
				break
			}
		}
	}
	if out || hit {
		g.boom.Trigger(int(g.bird.X)+birdW/2, int(g.bird.Y)+birdH/2)
		g.phase = sim.PhaseResolving
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.session.Score(),
		Paused: g.paused,
	}
}

// Render draws pipes, bird, and the blast mark when resolving.
func (g *Game) Render(dst *core.Frame) {
	for i := range g.pipes {
		g.pipes[i].draw(dst, g.cfg.Obstacles.PipeWidth, g.runtime.ArenaH)
	}
	drawBird(dst, int(g.bird.X), int(g.bird.Y))
	if g.phase == sim.PhaseResolving {
		drawBoom(dst, g.boom.X, g.boom.Y)
	}
}

func init() {
	registry.Register("flappy", func() registry.Game { return New() })
}
