package pong

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/states"
)

const (
	ID    = "pong"
	Title = "Pong"
)

// Variant describes Pong to the state machine.
func Variant(cfg config.PongConfig) states.Variant {
	return states.Variant{
		ID:       ID,
		Title:    Title,
		Settings: cfg.Common,
		NewSim: func(level int, b core.Bounds, rng core.RandomSource) states.Simulation {
			return NewSim(cfg, level, b, rng)
		},
	}
}

// NewGame creates a playable Pong game.
func NewGame(cfg config.PongConfig, logger *log.Logger) *states.Game {
	return states.NewGame(Variant(cfg), logger)
}

// Register the game with the registry
func init() {
	registry.Register(ID, Title, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadPong(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.ApplyPreset(opts.Difficulty)
		return NewGame(cfg, opts.Logger), nil
	})
}
