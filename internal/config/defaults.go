package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

func defaultAudio() AudioConfig {
	return AudioConfig{Gain: 0.25}
}

// DefaultArkanoidConfig returns the default Arkanoid configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Common: Common{
			Canvas: Dimensions{Width: 450, Height: 480},
			Field:  Dimensions{Width: 350, Height: 400},
			FPS:    50,
			Physics: Physics{
				PaddleSpeed: 300,
				BallSpeed:   250,
			},
			Paddle: PaddleConfig{Width: 60, Height: 16},
			Ball:   BallConfig{Radius: 4},
			Gameplay: Gameplay{
				Lives:        3,
				IntroSeconds: 3,
			},
			Difficulty: DifficultyConfig{LevelMultiplier: 0.33},
			Cues: Cues{
				Wall:     "pong",
				Paddle:   "pong",
				Block:    "beep",
				LifeLost: "looselife",
				GameOver: "gameover",
			},
			Audio: defaultAudio(),
		},
		Blocks: BlockLayout{
			Depth:     4,
			Width:     25,
			Height:    17,
			Separator: 1,
			TopGap:    3,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Common: Common{
			Canvas: Dimensions{Width: 700, Height: 480},
			Field:  Dimensions{Width: 600, Height: 400},
			FPS:    50,
			Physics: Physics{
				PaddleSpeed: 200,
				BallSpeed:   200,
			},
			Paddle: PaddleConfig{Width: 60, Height: 16},
			Ball:   BallConfig{Radius: 8},
			Gameplay: Gameplay{
				Lives:        3,
				IntroSeconds: 3,
			},
			Difficulty: DifficultyConfig{LevelMultiplier: 0.2},
			Cues: Cues{
				Wall:     "bang",
				Paddle:   "bang",
				LifeLost: "explosion",
				GameOver: "explosion",
			},
			Audio: defaultAudio(),
		},
		Spin: PongSpin{
			Degrees:  25,
			MinAngle: 195,
			MaxAngle: 345,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "arkanoid":
		return defaultArkanoidYAML
	case "pong":
		return defaultPongYAML
	default:
		return nil
	}
}
