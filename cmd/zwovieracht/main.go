// zwovieracht is the 2048 sliding tile game for the terminal.
//
// Usage:
//
//	zwovieracht play                - Play one game
//	zwovieracht menu                - Menu with new game and high scores
//	zwovieracht replay <dir>...     - Replay moves headlessly and print each board
//	zwovieracht scores              - Show high scores
//	zwovieracht serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.zwovieracht/config.yaml)
//	--seed <value>      - RNG seed for reproducible games (0 = random)
//	--db <path>         - Scores database (default: ~/.zwovieracht/scores.db)
//	--log-level <level> - debug, info, warn, error or fatal
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zwovieracht/internal/config"
	"github.com/vovakirdan/zwovieracht/internal/core"
	"github.com/vovakirdan/zwovieracht/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries the global flags and the state every subcommand shares.
// It is filled in by the root command's PersistentPreRunE.
type app struct {
	configPath string
	seed       uint64
	dbPath     string
	logLevel   string

	cfg    config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "zwovieracht",
		Short: "2048 in your terminal",
		Long: `zwovieracht is the 2048 sliding tile game for the terminal.

Slide the board with the arrow keys, WASD or hjkl. Equal tiles merge into
their sum; the game ends when no move changes the board.

Available commands:
  play     - Play one game directly
  menu     - Menu with new game and high scores
  replay   - Replay a move list without a terminal UI
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  zwovieracht play
  zwovieracht play --seed 42
  zwovieracht replay --seed 42 left up right down
  zwovieracht serve --ssh :2222`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config YAML")
	flags.Uint64Var(&a.seed, "seed", 0, "RNG seed (0 = random)")
	flags.StringVar(&a.dbPath, "db", "", "Path to scores database (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error, fatal (overrides config)")

	rootCmd.AddCommand(
		newPlayCmd(a),
		newMenuCmd(a),
		newReplayCmd(a),
		newScoresCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

// load reads the config file, applies flag overrides and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("db") {
		cfg.DBPath = a.dbPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "zwovieracht",
		Level:           level,
	})
	a.logger.Debug("config loaded", "seed", cfg.Seed, "db", cfg.DBPath)
	return nil
}

// openStore opens the scores database. A failure is logged and the
// caller continues without score saving.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.DBPath)
	if err != nil {
		a.logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = a.cfg.Seed
	cfg.MinW = a.cfg.MinScreen.Width
	cfg.MinH = a.cfg.MinScreen.Height

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// playerName is the local account name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
