package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts lives, paddle width, ball speed and level scaling.
// Normal leaves the loaded values untouched.
func (c *Common) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		c.Gameplay.Lives = 5
		c.Paddle.Width *= 1.25
		c.Physics.BallSpeed *= 0.8
		c.Difficulty.LevelMultiplier *= 0.75
	case DifficultyHard:
		c.Gameplay.Lives = 2
		c.Paddle.Width *= 0.8
		c.Physics.BallSpeed *= 1.2
		c.Difficulty.LevelMultiplier *= 1.25
	}
}
