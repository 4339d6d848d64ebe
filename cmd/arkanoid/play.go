package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/states"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (arkanoid when omitted).

Controls:
  Left/Right, A/D  - Move the paddle
  Space/Enter      - Start, play again
  M                - Mute sound cues
  Esc              - Leave the game
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, wider paddle, slower ball
  normal - the config as loaded
  hard   - 2 lives, narrower paddle, faster ball

Examples:
  arkanoid play
  arkanoid play pong
  arkanoid play --difficulty hard
  arkanoid play --config ./my-arkanoid.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// terminalConfig sizes the screen from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// attachSounds gives a local game a real cue bank.
func attachSounds(game registry.Game, logger *log.Logger) {
	sg, ok := game.(*states.Game)
	if !ok {
		return
	}
	cfg := sg.Settings().Audio
	cfg.Muted = cfg.Muted || flagMute
	sg.SetSounds(audio.NewBank(cfg, logger.WithPrefix("audio")))
}

// createGame builds a game from the global flags.
func createGame(id string, logger *log.Logger) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q, run 'arkanoid list' to see available games", id)
	}
	opts, err := gameOptions(logger)
	if err != nil {
		return nil, err
	}
	game, err := registry.Create(id, opts)
	if err != nil {
		return nil, err
	}
	attachSounds(game, logger)
	return game, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := arkanoid.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	logger, closeLog, err := newFileLogger("arkanoid")
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := createGame(gameID, logger)
	if err != nil {
		return err
	}
	defer audio.Close()

	logger.Info("starting game", "game", gameID, "difficulty", flagDifficulty)
	if _, err := tui.Run(game, terminalConfig(), tui.Options{Logger: logger}); err != nil {
		return err
	}
	return nil
}
