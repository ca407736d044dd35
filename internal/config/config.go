// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics defines physics parameters for Breakout.
type BreakoutPhysics struct {
	BallSpeed     float64 `yaml:"ball_speed"`
	BallSize      int     `yaml:"ball_size"`
	ClearSpeedUp  float64 `yaml:"clear_speed_up"` // Velocity multiplier on each full brick clear
	PaddleFollows float64 `yaml:"paddle_follows"` // Axis-to-pixels sensitivity per tick
}

// BreakoutPaddle defines paddle parameters for Breakout.
type BreakoutPaddle struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"` // Rows between paddle top and arena bottom
}

// BreakoutBricks defines the brick field layout.
type BreakoutBricks struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	Height   int `yaml:"height"`
	TopY     int `yaml:"top_y"`
	RowPitch int `yaml:"row_pitch"`
}

// BreakoutGameplay defines scoring and lives for Breakout.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
}

// FlappyConfig contains all configuration for the Flap & Avoid game.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flap & Avoid.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxRiseSpeed float64 `yaml:"max_rise_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// FlappyObstacles defines pipe parameters for Flap & Avoid.
type FlappyObstacles struct {
	PipeWidth   int `yaml:"pipe_width"`
	PipeSpacing int `yaml:"pipe_spacing"` // Ticks between spawns
	GapSize     int `yaml:"gap_size"`
	GapMargin   int `yaml:"gap_margin"` // Minimum rows between gap and arena edges
	Speed       int `yaml:"speed"`      // Leftward pixels per tick
}

// DinoConfig contains all configuration for the Endless Runner game.
type DinoConfig struct {
	Physics    DinoPhysics      `yaml:"physics"`
	Obstacles  DinoObstacles    `yaml:"obstacles"`
	Player     DinoPlayer       `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DinoPhysics defines physics parameters for the Endless Runner.
type DinoPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// DinoObstacles defines obstacle parameters for the Endless Runner.
type DinoObstacles struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick spawn probability
	Speed       int     `yaml:"speed"`        // Leftward pixels per tick
}

// DinoPlayer defines player parameters for the Endless Runner.
type DinoPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"` // Rows between ground line and arena bottom
}

// LanesConfig contains all configuration for the Lane Runner game.
type LanesConfig struct {
	Lanes      LanesField       `yaml:"lanes"`
	Physics    LanesPhysics     `yaml:"physics"`
	Obstacles  LanesObstacles   `yaml:"obstacles"`
	Coins      LanesCoins       `yaml:"coins"`
	Player     LanesPlayer      `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LanesPhysics defines physics parameters for the Lane Runner.
type LanesPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// LanesField defines the lane layout.
type LanesField struct {
	Count        int `yaml:"count"`
	GroundOffset int `yaml:"ground_offset"`
}

// LanesObstacles defines obstacle parameters for the Lane Runner.
type LanesObstacles struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	SpawnChance float64 `yaml:"spawn_chance"`
	Speed       int     `yaml:"speed"` // Leftward pixels per tick
}

// LanesCoins defines coin parameters for the Lane Runner.
type LanesCoins struct {
	Size        int     `yaml:"size"`
	SpawnChance float64 `yaml:"spawn_chance"`
	Speed       int     `yaml:"speed"`
	Points      int     `yaml:"points"`
}

// LanesPlayer defines player parameters for the Lane Runner.
type LanesPlayer struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	GapReduction    int     `yaml:"gap_reduction"`    // Gap size reduction at max difficulty
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Spawn chance multiplier added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
