package sim

// Phase is the lifecycle state of a game session.
type Phase int

const (
	// PhaseServing holds the actor anchored, awaiting the release input.
	PhaseServing Phase = iota
	// PhaseActive runs the simulation.
	PhaseActive
	// PhaseResolving plays the post-collision boom animation; world updates
	// are suspended until the countdown expires.
	PhaseResolving
	// PhaseGameOver marks lives exhausted; the session performs a full reset.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseServing:
		return "serving"
	case PhaseActive:
		return "active"
	case PhaseResolving:
		return "resolving"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session tracks score and lives for the single active game session.
// Score is non-negative and monotonically non-decreasing except at a full
// reset, which returns it to zero.
type Session struct {
	score        int
	lives        int
	initialLives int
}

// NewSession creates a session with the given starting lives.
func NewSession(lives int) *Session {
	return &Session{lives: lives, initialLives: lives}
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// AddScore increases the score. Negative deltas are ignored; the score
// never decreases outside Reset.
func (s *Session) AddScore(delta int) {
	if delta > 0 {
		s.score += delta
	}
}

// LoseLife decrements lives and reports whether they are exhausted.
func (s *Session) LoseLife() (exhausted bool) {
	s.lives--
	return s.lives <= 0
}

// Reset performs a full session reset: score to zero, lives to the
// starting count.
func (s *Session) Reset() {
	s.score = 0
	s.lives = s.initialLives
}

// Boom is the resolving-state animation: a fixed countdown of ticks during
// which the play area is frozen, drawn as a blast mark at the impact point.
type Boom struct {
	X, Y  int // Impact center in pixels
	ticks int
}

// BoomTicks is how long the blast holds the world frozen.
const BoomTicks = 6

// Trigger starts the countdown at the given impact center.
func (b *Boom) Trigger(x, y int) {
	b.X, b.Y = x, y
	b.ticks = BoomTicks
}

// Active reports whether the boom is still running.
func (b *Boom) Active() bool { return b.ticks > 0 }

// Tick advances the countdown and returns true on the tick it expires.
func (b *Boom) Tick() (expired bool) {
	if b.ticks == 0 {
		return false
	}
	b.ticks--
	return b.ticks == 0
}
