package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zwovieracht/internal/platform/tui"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one game of 2048",
		Long: `Start a game of 2048 in the terminal.

Controls:
  Arrows/WASD/hjkl  - Slide the board
  R                 - New game (after game over)
  Esc/B             - Leave the game
  Q/Ctrl+C          - Quit

Key bindings can be changed in the config file.

Examples:
  zwovieracht play
  zwovieracht play --seed 42
  zwovieracht play --db ./scores.db`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPlay(a)
		},
	}
}

func runPlay(a *app) error {
	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	keys := tui.NewKeyMapper(a.cfg.Keys)
	snap, err := tui.Run(store, keys, a.runtimeConfig(), playerName())
	if err != nil {
		return err
	}

	a.logger.Info("game finished",
		"score", snap.Score,
		"moves", snap.Moves,
		"best_tile", snap.MaxTile,
		"state", snap.State,
	)
	return nil
}
