package flappy

import (
	"testing"

	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/sim"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ArenaW: 64, ArenaH: 32, TickRate: 15, Seed: 12345}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical results
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%9 == 0 {
			inputSequence[i].Set(core.ActionPrimary)
		} else if i%9 == 4 {
			inputSequence[i].Set(core.ActionRelease)
		}
	}

	run := func() (core.GameState, int, float64) {
		g := New()
		g.Reset(testRuntime())
		var st core.GameState
		for _, in := range inputSequence {
			st = g.Step(in).State
		}
		return st, len(g.pipes), g.bird.Y
	}

	st1, pipes1, y1 := run()
	st2, pipes2, y2 := run()

	if st1.Score != st2.Score || pipes1 != pipes2 || y1 != y2 {
		t.Errorf("runs diverged: score %d/%d pipes %d/%d y %f/%f",
			st1.Score, st2.Score, pipes1, pipes2, y1, y2)
	}
}

func TestFlapFiresOnPressEdgeOnly(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	press := core.NewInputFrame()
	press.Set(core.ActionPrimary)

	g.Step(press)
	vyAfterFirst := g.bird.VY

	// Holding the press must not re-fire: gravity pulls VY back up
	g.Step(press)
	if g.bird.VY <= vyAfterFirst {
		t.Errorf("VY = %f, held press re-fired the flap", g.bird.VY)
	}

	// Release re-arms the flap
	release := core.NewInputFrame()
	release.Set(core.ActionRelease)
	g.Step(release)

	g.Step(press)
	if g.bird.VY != -g.cfg.Physics.FlapImpulse+g.cfg.Physics.Gravity {
		t.Errorf("VY = %f, expected fresh impulse after release", g.bird.VY)
	}
}

func TestPipePassScoresOnce(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	// One pipe just right of the bird with its gap aligned to the bird,
	// so crossing is survivable.
	birdY := int(g.bird.Y)
	g.pipes = []Pipe{{X: int(g.bird.X) + 2, GapTop: birdY - 4, GapH: 14}}
	g.nextSpawn = 1 << 30 // No further spawns

	// Hold the bird in place so only the pipe moves
	for i := 0; i < 10; i++ {
		g.bird.VY = 0
		y := g.bird.Y
		g.Step(core.NewInputFrame())
		g.bird.Y = y
		if g.phase != sim.PhaseActive {
			t.Fatalf("tick %d: hit a pipe while inside its gap", i)
		}
	}

	if g.session.Score() != 1 {
		t.Errorf("score = %d, expected exactly 1 for one pipe passed", g.session.Score())
	}
}

func TestOutOfBoundsTriggersBoom(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	g.bird.Y = float64(g.runtime.ArenaH) // Below the floor
	g.Step(core.NewInputFrame())

	if g.phase != sim.PhaseResolving {
		t.Fatalf("phase = %v, expected resolving after a bounds exit", g.phase)
	}
	if !g.boom.Active() {
		t.Error("boom not running")
	}
}

func TestBoomFreezesWorldAndPreservesScore(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.session.AddScore(5)
	g.pipes = []Pipe{{X: 40, GapTop: 10, GapH: 11}}

	g.bird.Y = -1 // Above the ceiling
	g.Step(core.NewInputFrame())
	if g.phase != sim.PhaseResolving {
		t.Fatal("expected resolving phase")
	}

	// World is frozen while the boom runs
	pipeX := g.pipes[0].X
	birdY := g.bird.Y
	for i := 0; i < sim.BoomTicks-1; i++ {
		g.Step(core.NewInputFrame())
		if g.phase != sim.PhaseResolving {
			t.Fatalf("boom ended early on tick %d", i+1)
		}
		if g.pipes[0].X != pipeX || g.bird.Y != birdY {
			t.Fatal("world moved during the boom")
		}
	}

	// Countdown expiry resets the run but keeps the score
	g.Step(core.NewInputFrame())
	if g.phase != sim.PhaseActive {
		t.Fatalf("phase = %v, expected active after the boom", g.phase)
	}
	if len(g.pipes) != 0 {
		t.Errorf("pipes = %d, expected cleared", len(g.pipes))
	}
	if g.bird.Y != float64(g.runtime.ArenaH/2) {
		t.Errorf("bird y = %f, expected the start position", g.bird.Y)
	}
	if g.session.Score() != 5 {
		t.Errorf("score = %d, a boom must not touch the score", g.session.Score())
	}
}

func TestRestartZerosScore(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.session.AddScore(9)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.session.Score() != 0 {
		t.Errorf("score = %d, restart is the one path that zeroes it", g.session.Score())
	}
}

func TestSpawnedGapStaysInsideMargins(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	for i := 0; i < 2000; i++ {
		g.bird.Y = float64(g.runtime.ArenaH / 2)
		g.bird.VY = 0
		g.Step(core.NewInputFrame())
		if g.phase == sim.PhaseResolving {
			// Skip through the boom; spawn bounds are what we check
			continue
		}
		for _, p := range g.pipes {
			if p.GapTop < g.cfg.Obstacles.GapMargin {
				t.Fatalf("gap top %d above the margin", p.GapTop)
			}
			if p.GapTop+p.GapH > g.runtime.ArenaH-g.cfg.Obstacles.GapMargin {
				t.Fatalf("gap bottom %d below the margin", p.GapTop+p.GapH)
			}
		}
	}
}

func TestRenderIsPure(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.pipes = []Pipe{{X: 40, GapTop: 10, GapH: 11}}

	f1 := core.NewFrame(64, 32)
	f2 := core.NewFrame(64, 32)
	g.Render(f1)
	g.Render(f2)

	if !f1.Equal(f2) {
		t.Error("two renders between ticks produced different frames")
	}
}
