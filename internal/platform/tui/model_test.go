package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zwovieracht/internal/core"
	"github.com/vovakirdan/zwovieracht/internal/game"
	"github.com/vovakirdan/zwovieracht/internal/storage"
)

func testRuntime(seed uint64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func press(t *testing.T, m tea.Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(msg)
}

// playUntilOver cycles through the four directions until the game ends.
func playUntilOver(t *testing.T, m GameModel) GameModel {
	t.Helper()

	keys := []rune{'h', 'j', 'l', 'k'}
	for i := 0; i < 20000 && !m.State().GameOver; i++ {
		next, _ := press(t, m, runeKey(keys[i%len(keys)]))
		m = next.(GameModel)
	}
	if !m.State().GameOver {
		t.Fatal("game did not end")
	}
	return m
}

func TestGameModelMove(t *testing.T) {
	m := NewGameModel(nil, nil, testRuntime(42), "")
	before := m.Snapshot().Board

	next, cmd := press(t, m, runeKey('h'))
	m = next.(GameModel)

	if cmd != nil {
		t.Error("a move should not return a command")
	}
	if m.State().Moves != 1 {
		t.Errorf("Moves = %d, want 1", m.State().Moves)
	}
	if m.Snapshot().Board == before {
		t.Error("board should change: a move always spawns a tile")
	}
}

func TestGameModelIgnoresUnboundKeys(t *testing.T) {
	m := NewGameModel(nil, nil, testRuntime(42), "")

	next, _ := press(t, m, runeKey('x'))
	m = next.(GameModel)

	if m.State().Moves != 0 {
		t.Errorf("Moves = %d, want 0", m.State().Moves)
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	m := NewGameModel(nil, nil, testRuntime(1), "")

	next, cmd := press(t, m, runeKey('q'))
	if cmd == nil || !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("View should be empty after quitting")
	}

	next, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(GameModel).BackToMenu() {
		t.Error("esc should go back to menu")
	}
}

func TestGameModelResizeKeepsBoard(t *testing.T) {
	m := NewGameModel(nil, nil, testRuntime(9), "")
	next, _ := press(t, m, runeKey('j'))
	m = next.(GameModel)
	board := m.Snapshot().Board

	resized, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	m = resized.(GameModel)
	if !m.State().Paused {
		t.Error("small window should pause")
	}
	if m.Snapshot().Board != board {
		t.Error("resize should not reset the board")
	}

	// Moves are ignored while paused
	next, _ = press(t, m, runeKey('j'))
	if next.(GameModel).State().Moves != 1 {
		t.Error("paused game should ignore moves")
	}

	resized, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if resized.(GameModel).State().Paused {
		t.Error("large window should unpause")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(nil, nil, testRuntime(3), "")
	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view should show the score:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewGameModel(store, nil, testRuntime(2048), "ann")
	m = playUntilOver(t, m)

	// Further input must not record the game again
	next, _ := press(t, m, runeKey('h'))
	m = next.(GameModel)

	scores, err := store.TopScores(game.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}

	snap := m.Snapshot()
	got := scores[0]
	if got.Score != snap.Score || got.Moves != snap.Moves || got.MaxTile != snap.MaxTile {
		t.Errorf("saved %+v, snapshot %+v", got, snap)
	}
	if got.Player != "ann" || got.Seed != 2048 {
		t.Errorf("saved player/seed = %q/%d", got.Player, got.Seed)
	}
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	m := NewGameModel(nil, nil, testRuntime(5), "")

	// Restart is ignored while playing
	next, _ := press(t, m, runeKey('h'))
	next, _ = press(t, next, runeKey('r'))
	if next.(GameModel).State().Moves != 1 {
		t.Error("restart should be ignored during play")
	}

	m = playUntilOver(t, m)
	next, _ = press(t, m, runeKey('r'))
	m = next.(GameModel)

	state := m.State()
	if state.GameOver || state.Moves != 0 || state.Score != 0 {
		t.Errorf("restart should start a fresh game, got %+v", state)
	}
	if m.Snapshot().Seed != 0 {
		t.Error("restarted game should use system entropy")
	}
}
