package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zwovieracht/internal/platform/tui"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start with a menu for new games and high scores",
		Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game you return to the menu to play again.

Examples:
  zwovieracht menu
  zwovieracht menu --db ./scores.db`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store := a.openStore()
			if store != nil {
				defer store.Close()
			}

			return tui.RunSession(store, tui.NewKeyMapper(a.cfg.Keys), a.runtimeConfig(), playerName())
		},
	}
}
