package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zwovieracht/internal/game"
	"github.com/vovakirdan/zwovieracht/internal/storage"
)

func newScoresCmd(a *app) *cobra.Command {
	var (
		limit int
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show high scores",
		Long: `Display the top high scores and overall statistics.

Examples:
  zwovieracht scores
  zwovieracht scores --limit 25
  zwovieracht scores --db ./scores.db
  zwovieracht scores --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.Open(a.cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if clearAll {
				if err := store.ClearScores(game.ID); err != nil {
					return err
				}
				a.logger.Info("scores cleared", "db", a.cfg.DBPath)
				return nil
			}

			return printScores(cmd.OutOrStdout(), store, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of scores to show")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete all recorded scores")
	return cmd
}

// printScores writes the score table and a summary line.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(game.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", game.Title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'zwovieracht play' to set the first high score!")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Score", "Best tile", "Moves", "Player", "Seed", "Date")

	for i, e := range scores {
		seed := "-"
		if e.Seed != 0 {
			seed = strconv.FormatUint(e.Seed, 10)
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.MaxTile),
			strconv.Itoa(e.Moves),
			e.Player,
			seed,
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Fprintln(w, t.Render())

	stats, err := store.GetGameStats(game.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nGames: %d  Best: %d  Best tile: %d  Average: %.1f\n",
		stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	return nil
}
