// Package sim contains the simulation core shared by all games: fixed-tick
// physics integration, collision rules, and session bookkeeping. Positions
// and velocities are real-valued so sub-pixel motion accumulates between
// ticks; rounding to pixels happens only at render time.
package sim

// GravityBody is a gravity-integrated actor (bird, runner). The vertical
// axis is down-positive: gravity is a positive constant and a jump applies
// a negative impulse.
type GravityBody struct {
	X, Y     float64 // Top-left position
	W, H     int     // Hitbox size in pixels
	VY       float64 // Vertical velocity, down-positive
	OnGround bool
}

// Integrate advances one tick: applies gravity, clamps velocity to the
// configured limits, and moves the body. maxRise bounds upward speed,
// maxFall is the terminal falling speed; both are positive magnitudes.
func (b *GravityBody) Integrate(gravity, maxRise, maxFall float64) {
	b.VY += gravity
	if b.VY < -maxRise {
		b.VY = -maxRise
	}
	if b.VY > maxFall {
		b.VY = maxFall
	}
	b.Y += b.VY
}

// Jump applies an upward impulse if the body is grounded.
// Returns true if the jump fired.
func (b *GravityBody) Jump(impulse float64) bool {
	if !b.OnGround {
		return false
	}
	b.VY = -impulse
	b.OnGround = false
	return true
}

// Land snaps the body to the ground line when it has reached or passed it,
// zeroing vertical velocity and setting the on-ground flag.
// groundY is the y coordinate of the ground line; the body rests with its
// bottom edge on it. Returns true if the body is grounded after the call.
func (b *GravityBody) Land(groundY float64) bool {
	top := groundY - float64(b.H)
	if b.Y >= top {
		b.Y = top
		b.VY = 0
		b.OnGround = true
	}
	return b.OnGround
}

// BounceBody is an unbounded-bounce entity (the breakout ball): it moves by
// its velocity each tick and reflects elastically off the side and top
// bounds. The bottom bound is not reflected; crossing it is reported as an
// exit event for the caller to turn into a life loss.
type BounceBody struct {
	X, Y   float64
	DX, DY float64
	Size   int // Square hitbox side in pixels
}

// Advance moves the body by its velocity for one tick.
func (b *BounceBody) Advance() {
	b.X += b.DX
	b.Y += b.DY
}

// Reflect handles contact with the arena bounds after an Advance.
// Each axis's velocity sign is inverted at most once per call, and the
// position is pushed back inside the bound so a single contact never
// produces a second flip on the next tick. Returns true when the body has
// exited through the bottom bound.
func (b *BounceBody) Reflect(arenaW, arenaH float64) (exitedBottom bool) {
	size := float64(b.Size)

	if b.X <= 0 || b.X >= arenaW-size {
		b.DX = -b.DX
		b.X = clampF(b.X, 0, arenaW-size)
	}
	if b.Y <= 0 {
		b.DY = -b.DY
		b.Y = 0
	}
	return b.Y >= arenaH
}

// Scale multiplies the body's velocity, used for the compounding
// level-clear speed-up.
func (b *BounceBody) Scale(factor float64) {
	b.DX *= factor
	b.DY *= factor
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
