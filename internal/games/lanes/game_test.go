package lanes

import (
	"testing"

	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/sim"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ArenaW: 64, ArenaH: 32, TickRate: 20, Seed: 12345}
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%17 == 0:
			inputSequence[i].Set(core.ActionLeft)
		case i%17 == 5:
			inputSequence[i].Set(core.ActionRight)
		case i%17 == 10:
			inputSequence[i].Set(core.ActionPrimary)
		}
	}

	run := func() (int, int, int, int) {
		g := New()
		g.Reset(testRuntime())
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.session.Score(), g.lane, len(g.obstacles), len(g.coins)
	}

	s1, l1, o1, c1 := run()
	s2, l2, o2, c2 := run()

	if s1 != s2 || l1 != l2 || o1 != o2 || c1 != c2 {
		t.Errorf("runs diverged: score %d/%d lane %d/%d obstacles %d/%d coins %d/%d",
			s1, s2, l1, l2, o1, o2, c1, c2)
	}
}

func TestLaneCenters(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	want := []int{16, 32, 48}
	for i, x := range want {
		if g.laneX[i] != x {
			t.Errorf("lane %d center = %d, expected %d", i, g.laneX[i], x)
		}
	}
	if g.lane != 1 {
		t.Errorf("start lane = %d, expected center", g.lane)
	}
}

func TestLaneSwitchClampsAtEdges(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.cfg.Obstacles.SpawnChance = 0
	g.cfg.Coins.SpawnChance = 0

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	neutral := core.NewInputFrame()

	// Two presses reach lane 0; further presses stay clamped
	for i := 0; i < 4; i++ {
		g.Step(left)
		g.Step(neutral)
	}
	if g.lane != 0 {
		t.Errorf("lane = %d, expected clamp at 0", g.lane)
	}
	if g.runner.X != float64(g.laneX[0]-g.cfg.Player.Width/2) {
		t.Errorf("runner x = %f, not anchored to lane 0", g.runner.X)
	}
}

func TestAxisSwitchesOncePerDeflection(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.cfg.Obstacles.SpawnChance = 0
	g.cfg.Coins.SpawnChance = 0

	// Held deflection past the threshold must move exactly one lane
	hold := core.NewInputFrame()
	hold.SetAxis(0.9)
	for i := 0; i < 5; i++ {
		g.Step(hold)
	}
	if g.lane != 2 {
		t.Errorf("lane = %d, a held axis must switch exactly once", g.lane)
	}

	// Back through neutral re-arms the switch
	g.Step(core.NewInputFrame())
	g.Step(hold)
	if g.lane != 2 {
		t.Errorf("lane = %d, expected clamp at the right edge", g.lane)
	}
}

func TestCoinCollectsOncePerTick(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.cfg.Obstacles.SpawnChance = 0
	g.cfg.Coins.SpawnChance = 0

	// Two coins stacked on the runner's lane; one tick collects only the
	// earliest-created one.
	cx := g.laneX[g.lane] + g.cfg.Coins.Speed
	g.coins = []Coin{{X: cx, Sz: 2}, {X: cx, Sz: 2}}

	g.Step(core.NewInputFrame())

	if g.session.Score() != 1 {
		t.Errorf("score = %d, expected one coin per tick", g.session.Score())
	}
	if len(g.coins) != 1 {
		t.Errorf("coins = %d, expected one left", len(g.coins))
	}

	g.Step(core.NewInputFrame())
	if g.session.Score() != 2 || len(g.coins) != 0 {
		t.Errorf("second tick: score = %d coins = %d", g.session.Score(), len(g.coins))
	}
}

func TestObstacleHitBoomsAndPreservesScore(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.cfg.Obstacles.SpawnChance = 0
	g.cfg.Coins.SpawnChance = 0
	g.session.AddScore(4)
	g.lane = 0
	g.runner.X = float64(g.laneX[0] - g.cfg.Player.Width/2)

	g.obstacles = []Obstacle{{X: g.laneX[0] + g.cfg.Obstacles.Speed, W: 4, H: 4}}
	g.coins = []Coin{{X: 50, Sz: 2}}

	g.Step(core.NewInputFrame())
	if g.phase != sim.PhaseResolving {
		t.Fatalf("phase = %v, expected resolving after the hit", g.phase)
	}

	for i := 0; i < sim.BoomTicks; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.phase != sim.PhaseActive {
		t.Fatalf("phase = %v, expected active after the boom", g.phase)
	}
	if len(g.obstacles) != 0 || len(g.coins) != 0 {
		t.Error("field not cleared by the reset")
	}
	if g.lane != 0 {
		t.Errorf("lane = %d, reset must keep the current lane", g.lane)
	}
	if g.session.Score() != 4 {
		t.Errorf("score = %d, a boom must not touch the score", g.session.Score())
	}
}

func TestJumpClearsObstacle(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.cfg.Obstacles.SpawnChance = 0
	g.cfg.Coins.SpawnChance = 0

	press := core.NewInputFrame()
	press.Set(core.ActionPrimary)
	g.Step(press)

	if g.runner.OnGround {
		t.Fatal("runner still grounded after a jump")
	}

	// At the jump apex the runner sits well above obstacle height
	for i := 0; i < 4; i++ {
		g.Step(core.NewInputFrame())
	}
	top := float64(g.groundY - g.cfg.Player.Height - g.cfg.Obstacles.Height)
	if g.runner.Y >= top {
		t.Errorf("runner y = %f, expected above %f mid-jump", g.runner.Y, top)
	}
}

func TestRenderIsPure(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.obstacles = []Obstacle{{X: 40, W: 4, H: 4}}
	g.coins = []Coin{{X: 50, Sz: 2}}

	f1 := core.NewFrame(64, 32)
	f2 := core.NewFrame(64, 32)
	g.Render(f1)
	g.Render(f2)

	if !f1.Equal(f2) {
		t.Error("two renders between ticks produced different frames")
	}
}
