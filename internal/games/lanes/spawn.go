package lanes

import (
	"math/rand"

	"github.com/ledcade/ledcade/internal/config"
	"github.com/ledcade/ledcade/internal/core"
)

// Obstacle is a ground-standing block sweeping left across every lane.
// X is the block's center column, matching how the runner anchors to a
// lane center.
type Obstacle struct {
	X int
	W int
	H int
}

func (o Obstacle) rect(groundY int) core.Rect {
	return core.Rect{X: o.X - o.W/2, Y: groundY - o.H, W: o.W, H: o.H}
}

// Coin is a collectible hovering one row above the ground line.
type Coin struct {
	X  int
	Sz int
}

func (c Coin) rect(groundY int) core.Rect {
	return core.Rect{X: c.X - c.Sz/2, Y: groundY - c.Sz - 1, W: c.Sz, H: c.Sz}
}

// spawner rolls independent seeded per-tick chances for obstacles and coins.
type spawner struct {
	rng *rand.Rand
}

func (s *spawner) maybeObstacle(chance float64, cfg config.LanesObstacles, arenaW int) *Obstacle {
	if s.rng.Float64() >= chance {
		return nil
	}
	return &Obstacle{X: arenaW, W: cfg.Width, H: cfg.Height}
}

func (s *spawner) maybeCoin(chance float64, cfg config.LanesCoins, arenaW int) *Coin {
	if s.rng.Float64() >= chance {
		return nil
	}
	return &Coin{X: arenaW, Sz: cfg.Size}
}
