package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zwovieracht/internal/config"
	"github.com/vovakirdan/zwovieracht/internal/engine"
	"github.com/vovakirdan/zwovieracht/internal/game"
	"github.com/vovakirdan/zwovieracht/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestReplayDeterministic(t *testing.T) {
	args := []string{"replay", "--seed", "42", "left", "up", "right", "down"}

	first, err := execute(t, args...)
	require.NoError(t, err)
	second, err := execute(t, args...)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Contains(t, first, "seed: 42")
	require.Contains(t, first, "#4 down")
	require.Contains(t, first, "final score:")
}

func TestReplayMatchesEngine(t *testing.T) {
	dirs := []engine.Direction{engine.Left, engine.Down, engine.Right, engine.Up, engine.Left}

	var buf bytes.Buffer
	snap := replay(&buf, 7, dirs, true)

	src := engine.NewSource(7)
	board := engine.NewGame(src)
	score := 0
	for _, dir := range dirs {
		next, delta, done := engine.Step(board, dir, src)
		board = next
		score += delta
		if done {
			break
		}
	}

	require.Equal(t, board, snap.Board)
	require.Equal(t, score, snap.Score)
}

func TestReplayQuiet(t *testing.T) {
	out, err := execute(t, "replay", "--seed", "3", "--quiet", "h", "j", "k", "l")
	require.NoError(t, err)

	require.NotContains(t, out, "seed:")
	require.True(t, strings.HasPrefix(out, "final score:"), "output: %q", out)
}

func TestReplayRejectsInvalidDirection(t *testing.T) {
	out, err := execute(t, "replay", "--seed", "1", "left", "sideways", "up")

	require.ErrorIs(t, err, engine.ErrInvalidDirection)
	require.Contains(t, err.Error(), "move 2")
	require.Empty(t, out, "nothing may be played before every move is valid")
}

func TestReplayNeedsMoves(t *testing.T) {
	_, err := execute(t, "replay")
	require.Error(t, err)
}

func TestSeedFromConfigAndFlag(t *testing.T) {
	path := writeConfig(t, "seed: 5\n")

	out, err := execute(t, "--config", path, "replay", "left")
	require.NoError(t, err)
	require.Contains(t, out, "seed: 5")

	out, err = execute(t, "--config", path, "--seed", "9", "replay", "left")
	require.NoError(t, err)
	require.Contains(t, out, "seed: 9")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "replay", "left")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "replay", "left")
	require.Error(t, err)
}

func TestScoresCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "--db", dbPath, "scores")
	require.NoError(t, err)
	require.Contains(t, out, "No scores recorded yet.")

	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	for _, e := range []storage.ScoreEntry{
		{GameID: game.ID, Score: 1200, MaxTile: 128, Moves: 150, Player: "ann", Seed: 42},
		{GameID: game.ID, Score: 300, MaxTile: 32, Moves: 60, Player: "bob"},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}
	require.NoError(t, store.Close())

	out, err = execute(t, "--db", dbPath, "scores", "--limit", "1")
	require.NoError(t, err)
	require.Contains(t, out, "1200")
	require.Contains(t, out, "ann")
	require.NotContains(t, out, "bob", "limit should cut the table")
	require.Contains(t, out, "Games: 2")

	_, err = execute(t, "--db", dbPath, "scores", "--clear")
	require.NoError(t, err)

	out, err = execute(t, "--db", dbPath, "scores")
	require.NoError(t, err)
	require.Contains(t, out, "No scores recorded yet.")
}
