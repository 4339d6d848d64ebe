// arkanoid plays Arkanoid and Pong in the terminal.
//
// Usage:
//
//	arkanoid list              - List available games
//	arkanoid play [game]       - Play a game (default: arkanoid)
//	arkanoid menu              - Start menu to pick games interactively
//	arkanoid serve             - Start SSH server for remote play
//	arkanoid web               - Serve the landing page over HTTP
//	arkanoid config [game]     - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: the game's own, 50)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load the game config from this YAML file
//	--difficulty <preset> - easy, normal or hard
//	--mute                - Start with sound cues muted
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file for terminal modes
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	_ "github.com/vovakirdan/tui-arkanoid/internal/games/pong"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break blocks in your terminal",
	Long: `Arkanoid is a terminal bat-and-ball game. Bounce the ball off your paddle
and clear every block to reach the next, faster level. Pong is included as a
simpler variant without blocks.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  web      - Serve the landing page over HTTP
  config   - Print the effective config

Examples:
  arkanoid play
  arkanoid play pong --difficulty easy
  arkanoid menu
  arkanoid serve --ssh :2222
  arkanoid config arkanoid > ~/.arkanoid/configs/arkanoid.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = the game's configured fps)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound cues muted")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for terminal modes (default ~/.arkanoid/arkanoid.log)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// gameOptions turns the global flags into registry options.
func gameOptions(logger *log.Logger) (registry.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return registry.Options{}, err
	}
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: preset,
		Logger:     logger,
	}, nil
}

// newLogger logs to stderr, for commands that do not own the terminal.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// newFileLogger logs to --log-file because the alternate screen owns the
// terminal. The returned func closes the file.
func newFileLogger(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, config.ConfigDirName, "arkanoid.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
