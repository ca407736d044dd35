package sim

import "github.com/ledcade/ledcade/internal/core"

// PaddleDeflect computes the outgoing velocity for a ball striking the
// paddle. The vertical direction is always set away from the paddle; the
// horizontal speed is derived from the impact offset relative to the paddle
// center (offset ratio in [-0.5, 0.5] scaled by 4 and truncated to a whole
// pixel speed). When the truncation yields zero, the incoming horizontal
// sign is preserved instead, so a center hit never produces a dead
// straight-up volley. The truncation is the original game's observable
// behavior and is kept as is.
func PaddleDeflect(ballX, incomingDX float64, paddleX float64, paddleW int, speed float64) (dx, dy float64) {
	offset := (ballX-paddleX)/float64(paddleW) - 0.5
	dx = float64(int(offset * 4))
	if dx == 0 {
		if incomingDX >= 0 {
			dx = 1
		} else {
			dx = -1
		}
	}
	return dx, -speed
}

// PipeCollides implements gap-exclusion collision for vertical obstacles:
// the actor collides when its bounding box intersects the pipe's horizontal
// band and does not touch the safe gap interval. All intervals are closed,
// so an actor exactly at a gap boundary counts as safe.
func PipeCollides(actor core.Rect, pipeX, pipeW, gapTop, gapH int) bool {
	inBand := actor.Right()-1 >= pipeX && actor.X <= pipeX+pipeW-1
	if !inBand {
		return false
	}
	inGap := actor.Bottom()-1 >= gapTop && actor.Y <= gapTop+gapH-1
	return !inGap
}

// ConsumeFirst returns the index of the first rect (in creation order) that
// contains the point, or -1. Callers remove the hit entity and stop, so at
// most one consumable is taken per tick per moving body.
func ConsumeFirst(x, y int, rects []core.Rect) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// FirstOverlap returns the index of the first rect (in creation order) that
// overlaps the actor, or -1.
func FirstOverlap(actor core.Rect, rects []core.Rect) int {
	for i, r := range rects {
		if actor.Overlaps(r) {
			return i
		}
	}
	return -1
}
