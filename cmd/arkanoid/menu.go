package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q            - Quit

Examples:
  arkanoid menu
  arkanoid menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newFileLogger("arkanoid")
	if err != nil {
		return err
	}
	defer closeLog()
	defer audio.Close()

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := createGame(menuResult.GameID, logger)
		if err != nil {
			return err
		}

		logger.Info("starting game", "game", menuResult.GameID)
		result, err := tui.Run(game, cfg, tui.Options{Logger: logger})
		if err != nil {
			return err
		}
		cfg = result.Config
		cfg.TickRate = flagFPS
		if !result.BackToMenu {
			return nil
		}
	}
}
