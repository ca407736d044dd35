package sim

import (
	"math"
	"testing"
)

func TestGravityBodyTerminalVelocity(t *testing.T) {
	b := GravityBody{X: 10, Y: 5, W: 2, H: 2}

	// Free fall for many ticks must never exceed the terminal speed
	for i := 0; i < 500; i++ {
		b.Integrate(0.16, 2.0, 2.5)
		if b.VY > 2.5 {
			t.Fatalf("tick %d: fall speed %f exceeds terminal 2.5", i, b.VY)
		}
	}

	// A huge upward impulse is clamped to the rise limit on integration
	b.VY = -50
	b.Integrate(0.16, 2.0, 2.5)
	if b.VY < -2.0 {
		t.Fatalf("rise speed %f exceeds clamp 2.0", b.VY)
	}
}

func TestGravityBodySubPixelAccumulation(t *testing.T) {
	b := GravityBody{Y: 0}

	// Fractional gravity must accumulate tick to tick, not truncate
	b.Integrate(0.16, 2, 2)
	b.Integrate(0.16, 2, 2)
	want := 0.16 + 0.32
	if math.Abs(b.Y-want) > 1e-9 {
		t.Errorf("Y = %f, expected %f (sub-pixel motion lost)", b.Y, want)
	}
}

func TestGravityBodyLand(t *testing.T) {
	b := GravityBody{Y: 100, H: 6, VY: 3}
	groundY := 28.0

	if !b.Land(groundY) {
		t.Fatal("body past the ground line should land")
	}
	if b.Y != groundY-6 {
		t.Errorf("Y = %f, expected snap to %f", b.Y, groundY-6)
	}
	if b.VY != 0 {
		t.Errorf("VY = %f, expected 0 after landing", b.VY)
	}
	if !b.OnGround {
		t.Error("on-ground flag not set")
	}

	// Airborne body does not land
	b2 := GravityBody{Y: 0, H: 6, VY: 1}
	if b2.Land(groundY) {
		t.Error("airborne body should not land")
	}
}

func TestGravityBodyJumpOnlyGrounded(t *testing.T) {
	b := GravityBody{OnGround: true}

	if !b.Jump(8) {
		t.Fatal("grounded body should jump")
	}
	if b.VY != -8 || b.OnGround {
		t.Errorf("jump: VY = %f onGround = %v", b.VY, b.OnGround)
	}

	// Second jump while airborne is inert
	if b.Jump(8) {
		t.Error("airborne body should not jump")
	}
}

func TestBounceBodyReflectsOncePerContact(t *testing.T) {
	b := BounceBody{X: 62.5, Y: 10, DX: 1, DY: 1, Size: 2}

	b.Advance()
	b.Reflect(64, 32)
	if b.DX != -1 {
		t.Fatalf("DX = %f, expected single flip to -1", b.DX)
	}
	if b.X > 62 {
		t.Fatalf("X = %f, position not pushed back inside bound", b.X)
	}

	// The following tick must not flip again
	b.Advance()
	b.Reflect(64, 32)
	if b.DX != -1 {
		t.Errorf("DX = %f, flipped twice for one contact", b.DX)
	}
}

func TestBounceBodyTopReflects(t *testing.T) {
	b := BounceBody{X: 10, Y: 0.5, DX: 1, DY: -1, Size: 2}

	b.Advance()
	if b.Reflect(64, 32) {
		t.Fatal("top contact must not report a bottom exit")
	}
	if b.DY != 1 {
		t.Errorf("DY = %f, expected flip to 1", b.DY)
	}
}

func TestBounceBodyBottomExitsWithoutReflection(t *testing.T) {
	b := BounceBody{X: 10, Y: 31.5, DX: 0.5, DY: 1, Size: 2}

	b.Advance()
	if !b.Reflect(64, 32) {
		t.Fatal("crossing the bottom bound should report an exit")
	}
	if b.DY != 1 {
		t.Errorf("DY = %f, bottom bound must not reflect", b.DY)
	}
}

func TestBounceBodyScale(t *testing.T) {
	b := BounceBody{DX: 1, DY: -1}
	b.Scale(1.1)
	if b.DX != 1.1 || b.DY != -1.1 {
		t.Errorf("Scale(1.1) = (%f, %f)", b.DX, b.DY)
	}
}
