package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/games/pong"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the effective config as YAML",
	Long: `Load a game's config the same way 'play' does (--config, then
~/.arkanoid/configs/<game>.yaml, then ./configs/<game>.yaml, then the built-in
defaults), apply --difficulty, and print the result.

Examples:
  arkanoid config
  arkanoid config pong --difficulty hard
  arkanoid config arkanoid > ~/.arkanoid/configs/arkanoid.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := arkanoid.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	var cfg any
	switch gameID {
	case arkanoid.ID:
		c, err := config.LoadArkanoid(flagConfig)
		if err != nil {
			return err
		}
		c.ApplyPreset(preset)
		cfg = c
	case pong.ID:
		c, err := config.LoadPong(flagConfig)
		if err != nil {
			return err
		}
		c.ApplyPreset(preset)
		cfg = c
	default:
		return fmt.Errorf("unknown game %q, run 'arkanoid list' to see available games", gameID)
	}

	data, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
