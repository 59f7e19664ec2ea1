package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zwovieracht/internal/core"
	"github.com/vovakirdan/zwovieracht/internal/engine"
	"github.com/vovakirdan/zwovieracht/internal/game"
)

func newReplayCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "replay <direction>...",
		Short: "Play a list of moves without a terminal UI",
		Long: `Replay a list of moves headlessly and print the board after each one.

Directions may be names (left, up, right, down), vim keys (h, j, k, l),
u/r/d, or the integers 0-3 (left, up, right, down). Every argument is
checked before the game starts. Play stops early if the game ends.

With the same --seed, a replay always produces the same boards.

Examples:
  zwovieracht replay --seed 42 left up right down
  zwovieracht replay --seed 7 --quiet h j k l h j k l`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, err := parseDirections(args)
			if err != nil {
				return err
			}

			snap := replay(cmd.OutOrStdout(), a.cfg.Seed, dirs, quiet)
			a.logger.Debug("replay finished", "moves", snap.Moves, "score", snap.Score)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final result")
	return cmd
}

// parseDirections converts every argument or reports the first bad one.
func parseDirections(args []string) ([]engine.Direction, error) {
	dirs := make([]engine.Direction, len(args))
	for i, arg := range args {
		dir, err := engine.ParseDirection(arg)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		dirs[i] = dir
	}
	return dirs, nil
}

// replay plays dirs on a fresh session and writes the progress to w.
func replay(w io.Writer, seed uint64, dirs []engine.Direction, quiet bool) game.Snapshot {
	cfg := core.DefaultConfig()
	cfg.Seed = seed

	session := game.New()
	session.Reset(cfg)

	if !quiet {
		if seed == 0 {
			fmt.Fprintln(w, "seed: random")
		} else {
			fmt.Fprintf(w, "seed: %d\n", seed)
		}
		fmt.Fprintln(w, session.Board())
	}

	for i, dir := range dirs {
		result := session.Move(dir)
		if !quiet {
			fmt.Fprintf(w, "\n#%d %s +%d (score %d)\n", i+1, dir, result.Delta, result.State.Score)
			fmt.Fprintln(w, session.Board())
		}
		if result.State.GameOver {
			break
		}
	}

	snap := session.Snapshot()
	if !quiet {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "final score: %d  moves: %d  best tile: %d\n", snap.Score, snap.Moves, snap.MaxTile)
	if snap.State == game.StateGameOver {
		fmt.Fprintln(w, "game over")
	}
	return snap
}
