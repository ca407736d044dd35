package breakout

import (
	"testing"

	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/sim"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ArenaW: 64, ArenaH: 32, TickRate: 10, Seed: 12345}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical results
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i == 5 {
			inputSequence[i].Set(core.ActionPrimary) // Serve
		} else if i > 5 && i%7 < 4 {
			inputSequence[i].Set(core.ActionRight)
		} else if i > 5 {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() (core.GameState, int) {
		g := New()
		g.Reset(testRuntime())
		var st core.GameState
		for _, in := range inputSequence {
			st = g.Step(in).State
		}
		return st, g.tickCount
	}

	st1, ticks1 := run()
	st2, ticks2 := run()

	if st1.Score != st2.Score || st1.Lives != st2.Lives {
		t.Errorf("runs diverged: %+v vs %+v", st1, st2)
	}
	if ticks1 != ticks2 {
		t.Errorf("tick counts differ: %d vs %d", ticks1, ticks2)
	}
}

func TestServeWaitsForPrimary(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if g.phase != sim.PhaseServing {
		t.Fatalf("phase = %v, expected serving after reset", g.phase)
	}

	// Ticks without a serve keep the ball anchored on the paddle
	startY := g.ball.Y
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.phase != sim.PhaseServing || g.ball.Y != startY {
		t.Errorf("ball moved before serve: phase=%v y=%f", g.phase, g.ball.Y)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionPrimary)
	g.Step(in)

	if g.phase != sim.PhaseActive {
		t.Errorf("phase = %v, expected active after serve", g.phase)
	}
	if g.ball.DY >= 0 {
		t.Errorf("DY = %f, serve must launch upward", g.ball.DY)
	}
}

func TestAnchoredBallFollowsPaddle(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	before := g.ball.X
	for i := 0; i < 5; i++ {
		g.Step(in)
	}
	if g.ball.X <= before {
		t.Errorf("anchored ball did not follow the paddle: %f -> %f", before, g.ball.X)
	}
}

func TestBrickHitScoresAndBounces(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.phase = sim.PhaseActive

	total := len(g.bricks)
	target := g.bricks[0].Rect

	// One rising tick puts the ball's reference point inside the first brick
	g.ball = sim.BounceBody{
		X: float64(target.X), Y: float64(target.Bottom()),
		DX: 0, DY: -1, Size: 2,
	}

	g.Step(core.NewInputFrame())

	if len(g.bricks) != total-1 {
		t.Errorf("bricks = %d, expected one consumed from %d", len(g.bricks), total)
	}
	if g.session.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.session.Score())
	}
	if g.ball.DY <= 0 {
		t.Errorf("DY = %f, expected bounce back downward", g.ball.DY)
	}
}

func TestBrickHitConsumesExactlyOne(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.phase = sim.PhaseActive

	// The ball's box spans two adjacent bricks; only the one holding its
	// reference point may fall.
	total := len(g.bricks)
	first := g.bricks[0].Rect
	g.ball = sim.BounceBody{
		X: float64(first.Right() - 1), Y: float64(first.Bottom()),
		DX: 0, DY: -1, Size: 2,
	}

	g.Step(core.NewInputFrame())

	if len(g.bricks) != total-1 {
		t.Errorf("bricks = %d, a single hit must consume exactly one", len(g.bricks))
	}
}

func TestBrickGrazeWithoutPointInsideConsumesNothing(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.phase = sim.PhaseActive

	total := len(g.bricks)
	last := g.bricks[len(g.bricks)-1].Rect

	// After one rising tick the ball's box touches the wall's bottom edge,
	// but its reference point sits one row below the last brick row.
	g.ball = sim.BounceBody{
		X: float64(last.X), Y: float64(last.Bottom() + 1),
		DX: 0, DY: -1, Size: 2,
	}

	g.Step(core.NewInputFrame())

	if len(g.bricks) != total {
		t.Errorf("bricks = %d, a graze must not consume any of %d", len(g.bricks), total)
	}
	if g.session.Score() != 0 {
		t.Errorf("score = %d, expected 0 without the point inside a brick", g.session.Score())
	}
}

func TestWallClearRegeneratesAndCompounds(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.phase = sim.PhaseActive

	full := len(buildBricks(g.cfg.Bricks, g.runtime.ArenaW))
	speedBefore := g.ballSpeed

	// Leave one brick and drive the ball into it
	g.bricks = g.bricks[:1]
	target := g.bricks[0].Rect
	g.ball = sim.BounceBody{
		X: float64(target.X), Y: float64(target.Bottom()),
		DX: 0, DY: -1, Size: 2,
	}

	g.Step(core.NewInputFrame())

	if len(g.bricks) != full {
		t.Errorf("bricks = %d, expected rebuilt wall of %d", len(g.bricks), full)
	}
	if g.ballSpeed <= speedBefore {
		t.Errorf("serve speed %f did not compound past %f", g.ballSpeed, speedBefore)
	}

	// A second clear compounds again, strictly beyond the first
	second := g.ballSpeed
	g.bricks = g.bricks[:1]
	target = g.bricks[0].Rect
	g.ball = sim.BounceBody{
		X: float64(target.X), Y: float64(target.Bottom()),
		DX: 0, DY: -1, Size: 2,
	}
	g.Step(core.NewInputFrame())
	if g.ballSpeed <= second {
		t.Errorf("serve speed %f did not compound past %f on the second clear", g.ballSpeed, second)
	}
}

func TestMissResetsOnlyTheBall(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.phase = sim.PhaseActive
	g.session.AddScore(7)
	g.bricks = g.bricks[:10]

	// Drop the ball through the bottom
	g.ball = sim.BounceBody{X: 30, Y: 31.5, DX: 0, DY: 1, Size: 2}
	g.Step(core.NewInputFrame())

	if g.phase != sim.PhaseServing {
		t.Fatalf("phase = %v, expected serving after a miss", g.phase)
	}
	if g.session.Lives() != g.cfg.Gameplay.Lives-1 {
		t.Errorf("lives = %d, expected one lost", g.session.Lives())
	}
	if g.session.Score() != 7 {
		t.Errorf("score = %d, a miss must not touch the score", g.session.Score())
	}
	if len(g.bricks) != 10 {
		t.Errorf("bricks = %d, a miss must not touch the wall", len(g.bricks))
	}
}

func TestLastLifeTriggersFullReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.phase = sim.PhaseActive
	g.session.AddScore(12)

	full := len(g.bricks)
	g.bricks = g.bricks[:5]

	// Burn down to the last life, then miss
	for g.session.Lives() > 1 {
		g.session.LoseLife()
	}
	g.ball = sim.BounceBody{X: 30, Y: 31.5, DX: 0, DY: 1, Size: 2}
	g.Step(core.NewInputFrame())

	if g.phase != sim.PhaseGameOver {
		t.Fatalf("phase = %v, expected game over on the last miss", g.phase)
	}

	// Hold expires into a full reset
	for i := 0; i < gameOverHold+1; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.phase != sim.PhaseServing {
		t.Fatalf("phase = %v, expected serving after the hold", g.phase)
	}
	if g.session.Score() != 0 {
		t.Errorf("score = %d, full reset must zero it", g.session.Score())
	}
	if g.session.Lives() != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, full reset must restore %d", g.session.Lives(), g.cfg.Gameplay.Lives)
	}
	if len(g.bricks) != full {
		t.Errorf("bricks = %d, full reset must rebuild the wall", len(g.bricks))
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.phase = sim.PhaseActive
	g.ball = sim.BounceBody{X: 30, Y: 15, DX: 1, DY: 1, Size: 2}

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	x, y := g.ball.X, g.ball.Y
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.ball.X != x || g.ball.Y != y {
		t.Error("ball moved while paused")
	}

	g.Step(in) // Unpause
	g.Step(core.NewInputFrame())
	if g.ball.X == x && g.ball.Y == y {
		t.Error("ball frozen after unpause")
	}
}

func TestRenderIsPure(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.phase = sim.PhaseActive
	g.ball = sim.BounceBody{X: 30.7, Y: 15.2, DX: 1, DY: 1, Size: 2}

	f1 := core.NewFrame(64, 32)
	f2 := core.NewFrame(64, 32)
	g.Render(f1)
	g.Render(f2)

	if !f1.Equal(f2) {
		t.Error("two renders between ticks produced different frames")
	}
}

func TestBrickLayout(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if len(g.bricks) != g.cfg.Bricks.Rows*g.cfg.Bricks.Cols {
		t.Fatalf("bricks = %d, expected %d", len(g.bricks), g.cfg.Bricks.Rows*g.cfg.Bricks.Cols)
	}

	brickW := g.runtime.ArenaW / g.cfg.Bricks.Cols
	first := g.bricks[0].Rect
	if first.X != 0 || first.Y != g.cfg.Bricks.TopY || first.W != brickW {
		t.Errorf("first brick = %+v", first)
	}

	// Row-major creation order
	second := g.bricks[1].Rect
	if second.X != brickW || second.Y != first.Y {
		t.Errorf("second brick = %+v, expected next column of the same row", second)
	}

	// Rows are contiguous: the second row starts where the first ends
	secondRow := g.bricks[g.cfg.Bricks.Cols].Rect
	if secondRow.Y != first.Bottom() {
		t.Errorf("second row starts at %d, expected %d (no gap between rows)",
			secondRow.Y, first.Bottom())
	}
}
