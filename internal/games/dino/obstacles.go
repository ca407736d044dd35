package dino

import (
	"math/rand"

	"github.com/ledcade/ledcade/internal/config"
	"github.com/ledcade/ledcade/internal/core"
)

// Obstacle is a ground-standing block scrolling toward the runner.
type Obstacle struct {
	Rect core.Rect
}

// spawner rolls a seeded per-tick chance and emits obstacles at the right
// arena edge, feet on the ground line.
type spawner struct {
	rng *rand.Rand
	cfg config.DinoObstacles
}

// maybeSpawn returns a new obstacle or nil. chance is the per-tick spawn
// probability after difficulty scaling.
func (s *spawner) maybeSpawn(chance float64, arenaW, groundY int) *Obstacle {
	if s.rng.Float64() >= chance {
		return nil
	}
	return &Obstacle{Rect: core.Rect{
		X: arenaW,
		Y: groundY - s.cfg.Height,
		W: s.cfg.Width,
		H: s.cfg.Height,
	}}
}

// advance scrolls all obstacles left and drops the ones fully off screen.
func advance(obstacles []Obstacle, speed int) []Obstacle {
	kept := obstacles[:0]
	for _, o := range obstacles {
		o.Rect.X -= speed
		if o.Rect.Right() > 0 {
			kept = append(kept, o)
		}
	}
	return kept
}
