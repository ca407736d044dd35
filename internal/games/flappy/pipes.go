package flappy

import (
	"math/rand"

	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/sim"
)

// Pipe is one vertical obstacle pair: two columns spanning the arena height
// with a safe gap between them.
type Pipe struct {
	X      int
	GapTop int
	GapH   int
	Scored bool
}

// spawnPipe creates a pipe at the right arena edge with a randomly placed
// gap. The gap stays at least margin rows away from either arena edge.
func spawnPipe(rng *rand.Rand, arenaW, arenaH, gapH, margin int) Pipe {
	span := arenaH - gapH - 2*margin
	if span < 0 {
		span = 0
	}
	return Pipe{
		X:      arenaW,
		GapTop: margin + rng.Intn(span+1),
		GapH:   gapH,
	}
}

// collides reports whether the bird's hitbox hits this pipe.
func (p *Pipe) collides(bird core.Rect, pipeW int) bool {
	return sim.PipeCollides(bird, p.X, pipeW, p.GapTop, p.GapH)
}

// offScreen reports whether the pipe has fully scrolled off the left edge.
func (p *Pipe) offScreen(pipeW int) bool {
	return p.X+pipeW < 0
}

// draw paints both pipe columns, leaving the gap empty.
func (p *Pipe) draw(dst *core.Frame, pipeW, arenaH int) {
	for x := p.X; x < p.X+pipeW; x++ {
		dst.DrawVLine(x, 0, p.GapTop, colPipe)
		dst.DrawVLine(x, p.GapTop+p.GapH, arenaH-(p.GapTop+p.GapH), colPipe)
	}
}
