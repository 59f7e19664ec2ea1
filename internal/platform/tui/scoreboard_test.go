package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/zwovieracht/internal/game"
	"github.com/vovakirdan/zwovieracht/internal/storage"
)

func TestScoreRows(t *testing.T) {
	created := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	rows := scoreRows([]storage.ScoreEntry{
		{Score: 2048, MaxTile: 256, Moves: 300, Player: "ann", CreatedAt: created},
		{Score: 16, MaxTile: 8, Moves: 9},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	want := []string{"#1", "2048", "256", "300", "ann", "Mar 05 14:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" || rows[1][4] != "-" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestScoreboardLoadsFromStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, s := range []int{120, 480} {
		if _, err := store.SaveScore(storage.ScoreEntry{GameID: game.ID, Score: s, MaxTile: 64}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 480 {
		t.Fatalf("unexpected scores: %+v", m.scores)
	}

	view := m.View()
	if !strings.Contains(view, "Games: 2") {
		t.Errorf("view should show stats:\n%s", view)
	}
	if !strings.Contains(view, "480") {
		t.Errorf("view should list the top score:\n%s", view)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	if !strings.Contains(m.View(), "unavailable") {
		t.Errorf("view should explain missing store:\n%s", m.View())
	}
}
