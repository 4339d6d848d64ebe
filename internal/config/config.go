// Package config provides YAML-based game configuration loading and
// difficulty presets for the arkanoid and pong variants.
package config

import (
	"errors"
	"fmt"
)

// Dimensions is a width/height pair in field units.
type Dimensions struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics holds the base (level 0) movement speeds in field units per second.
type Physics struct {
	PaddleSpeed float64 `yaml:"paddle_speed"`
	BallSpeed   float64 `yaml:"ball_speed"`
}

// PaddleConfig defines paddle size.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball size.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
}

// Gameplay defines progression parameters.
type Gameplay struct {
	Lives        int     `yaml:"lives"`
	IntroSeconds float64 `yaml:"intro_seconds"` // LevelIntro countdown length
}

// DifficultyConfig scales speeds per level.
type DifficultyConfig struct {
	// LevelMultiplier is added per level: speed = (1 + level*multiplier) * base.
	LevelMultiplier float64 `yaml:"level_multiplier"`
}

// Cues names the sound played for each simulation outcome.
// An empty name means silence.
type Cues struct {
	Wall     string `yaml:"wall"`
	Paddle   string `yaml:"paddle"`
	Block    string `yaml:"block"`
	LifeLost string `yaml:"life_lost"`
	GameOver string `yaml:"game_over"`
}

// Names returns the distinct non-empty cue names in declaration order.
func (c Cues) Names() []string {
	var out []string
	seen := make(map[string]bool)
	for _, n := range []string{c.Wall, c.Paddle, c.Block, c.LifeLost, c.GameOver} {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// AudioConfig locates optional WAV overrides for the procedural cues.
type AudioConfig struct {
	Dir   string  `yaml:"dir"`   // Directory holding <cue>.wav files; empty means procedural only
	Muted bool    `yaml:"muted"` // Start muted
	Gain  float64 `yaml:"gain"`  // Volume of procedural tones, 0..1
}

// Common is shared by every variant.
type Common struct {
	Canvas     Dimensions       `yaml:"canvas"`
	Field      Dimensions       `yaml:"field"`
	FPS        int              `yaml:"fps"`
	Physics    Physics          `yaml:"physics"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Gameplay   Gameplay         `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Cues       Cues             `yaml:"cues"`
	Audio      AudioConfig      `yaml:"audio"`
}

// ArkanoidConfig contains all configuration for the Arkanoid game.
type ArkanoidConfig struct {
	Common `yaml:",inline"`
	Blocks BlockLayout `yaml:"blocks"`
}

// BlockLayout defines the block grid.
type BlockLayout struct {
	Depth     int     `yaml:"depth"` // Number of rows
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Separator float64 `yaml:"separator"` // Nominal gap, recomputed to spread columns
	TopGap    float64 `yaml:"top_gap"`   // Gap above the first row, in block heights
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Common `yaml:",inline"`
	Spin   PongSpin `yaml:"spin"`
}

// PongSpin controls how paddle motion bends the ball.
type PongSpin struct {
	Degrees  float64 `yaml:"degrees"`   // Added toward the paddle's motion on a hit
	MinAngle float64 `yaml:"min_angle"` // Degrees; lower clamp of the outgoing angle
	MaxAngle float64 `yaml:"max_angle"` // Degrees; upper clamp of the outgoing angle
}

// TickSeconds returns the fixed simulation delta, 1/fps.
func (c Common) TickSeconds() float64 {
	if c.FPS <= 0 {
		return 0
	}
	return 1 / float64(c.FPS)
}

// LevelScale returns the speed factor for a level.
func (c Common) LevelScale(level int) float64 {
	return 1 + float64(level)*c.Difficulty.LevelMultiplier
}

// PaddleSpeed returns the level-scaled paddle speed.
func (c Common) PaddleSpeed(level int) float64 {
	return c.LevelScale(level) * c.Physics.PaddleSpeed
}

// BallSpeed returns the level-scaled ball speed.
func (c Common) BallSpeed(level int) float64 {
	return c.LevelScale(level) * c.Physics.BallSpeed
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects values that would make the simulation degenerate.
func (c Common) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, name, v))
		}
	}

	positive("fps", float64(c.FPS))
	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("physics.paddle_speed", c.Physics.PaddleSpeed)
	positive("physics.ball_speed", c.Physics.BallSpeed)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("ball.radius", c.Ball.Radius)
	positive("gameplay.lives", float64(c.Gameplay.Lives))

	if c.Canvas.Width < c.Field.Width || c.Canvas.Height < c.Field.Height {
		errs = append(errs, fmt.Errorf("%w: canvas %vx%v smaller than field %vx%v",
			ErrInvalid, c.Canvas.Width, c.Canvas.Height, c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("%w: paddle wider than field", ErrInvalid))
	}
	if c.Gameplay.IntroSeconds < 0 {
		errs = append(errs, fmt.Errorf("%w: gameplay.intro_seconds is negative", ErrInvalid))
	}
	if c.Difficulty.LevelMultiplier < 0 {
		errs = append(errs, fmt.Errorf("%w: difficulty.level_multiplier is negative", ErrInvalid))
	}
	return errors.Join(errs...)
}

// Validate checks the shared fields and the block grid.
func (c ArkanoidConfig) Validate() error {
	errs := []error{c.Common.Validate()}
	if c.Blocks.Depth <= 0 {
		errs = append(errs, fmt.Errorf("%w: blocks.depth must be positive", ErrInvalid))
	}
	if c.Blocks.Width <= 0 || c.Blocks.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: blocks must have a positive size", ErrInvalid))
	}
	if c.Blocks.Width+c.Blocks.Separator > c.Field.Width {
		errs = append(errs, fmt.Errorf("%w: blocks do not fit the field", ErrInvalid))
	}
	if c.Blocks.Separator < 0 {
		errs = append(errs, fmt.Errorf("%w: blocks.separator is negative", ErrInvalid))
	}
	return errors.Join(errs...)
}

// Validate checks the shared fields and spin clamps.
func (c PongConfig) Validate() error {
	errs := []error{c.Common.Validate()}
	if c.Spin.MinAngle >= c.Spin.MaxAngle {
		errs = append(errs, fmt.Errorf("%w: spin.min_angle must be below spin.max_angle", ErrInvalid))
	}
	if c.Spin.MinAngle <= 180 || c.Spin.MaxAngle >= 360 {
		errs = append(errs, fmt.Errorf("%w: spin clamps must keep the ball moving up (180..360)", ErrInvalid))
	}
	return errors.Join(errs...)
}
