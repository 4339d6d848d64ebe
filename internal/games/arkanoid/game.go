package arkanoid

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/states"
)

// ID is the registry key for this game.
const ID = "arkanoid"

// Title is the display name.
const Title = "Arkanoid"

// Variant describes Arkanoid to the state machine.
func Variant(cfg config.ArkanoidConfig) states.Variant {
	return states.Variant{
		ID:       ID,
		Title:    Title,
		Settings: cfg.Common,
		NewSim: func(level int, b core.Bounds, rng core.RandomSource) states.Simulation {
			return NewSim(cfg, level, b, rng)
		},
	}
}

// NewGame creates a playable Arkanoid game.
func NewGame(cfg config.ArkanoidConfig, logger *log.Logger) *states.Game {
	return states.NewGame(Variant(cfg), logger)
}

func init() {
	registry.Register(ID, Title, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadArkanoid(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.ApplyPreset(opts.Difficulty)
		return NewGame(cfg, opts.Logger), nil
	})
}
