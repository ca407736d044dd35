package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

//go:embed defaults/lanes.yaml
var defaultLanesYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:     1.0,
			BallSize:      2,
			ClearSpeedUp:  1.1,
			PaddleFollows: 3.0,
		},
		Paddle: BreakoutPaddle{
			Width:        16,
			Height:       2,
			BottomOffset: 3,
		},
		Bricks: BreakoutBricks{
			Rows:     4,
			Cols:     8,
			Height:   3,
			TopY:     2,
			RowPitch: 3,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BrickPoints: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 96, // Three full clears
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.3,
				GapReduction:    0,
				SpawnMultiplier: 0,
			},
		},
	}
}

// DefaultFlappyConfig returns the default Flap & Avoid configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.16,
			FlapImpulse:  1.3,
			MaxRiseSpeed: 2.0,
			MaxFallSpeed: 2.5,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:   3,
			PipeSpacing: 70,
			GapSize:     11,
			GapMargin:   4,
			Speed:       1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0,
				GapReduction:    3,
				SpawnMultiplier: 0,
			},
		},
	}
}

// DefaultDinoConfig returns the default Endless Runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: DinoPhysics{
			Gravity:      0.8,
			JumpImpulse:  8.0,
			MaxFallSpeed: 8.0,
		},
		Obstacles: DinoObstacles{
			Width:       4,
			Height:      6,
			SpawnChance: 0.02,
			Speed:       4,
		},
		Player: DinoPlayer{
			X:            10,
			Width:        6,
			Height:       6,
			GroundOffset: 4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 6000, // Five minutes at 20 ticks/sec
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0,
				GapReduction:    0,
				SpawnMultiplier: 1.5,
			},
		},
	}
}

// DefaultLanesConfig returns the default Lane Runner configuration.
func DefaultLanesConfig() LanesConfig {
	return LanesConfig{
		Lanes: LanesField{
			Count:        3,
			GroundOffset: 4,
		},
		Physics: LanesPhysics{
			Gravity:      0.8,
			JumpImpulse:  8.0,
			MaxFallSpeed: 8.0,
		},
		Obstacles: LanesObstacles{
			Width:       4,
			Height:      4,
			SpawnChance: 0.03,
			Speed:       3,
		},
		Coins: LanesCoins{
			Size:        2,
			SpawnChance: 0.02,
			Speed:       4,
			Points:      1,
		},
		Player: LanesPlayer{
			Width:  4,
			Height: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 6000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0,
				GapReduction:    0,
				SpawnMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "flappy":
		return defaultFlappyYAML
	case "dino":
		return defaultDinoYAML
	case "lanes":
		return defaultLanesYAML
	default:
		return nil
	}
}
