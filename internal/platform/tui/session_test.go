package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, nil, testRuntime(11), "bob")
	if !strings.Contains(m.View(), "New game") {
		t.Fatalf("session should start on the menu:\n%s", m.View())
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame {
		t.Fatalf("enter on first item should start a game, at %v", m.current)
	}
	if cmd != nil {
		t.Error("starting a game must not quit the program")
	}

	m, _ = update(t, m, runeKey('h'))
	if m.gameModel.State().Moves != 1 {
		t.Error("keys should reach the game")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu {
		t.Fatalf("esc should return to menu, at %v", m.current)
	}
	if cmd != nil {
		t.Error("returning to the menu must not quit the program")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, nil, testRuntime(0), "")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenScores {
		t.Fatalf("second item should open scores, at %v", m.current)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Errorf("scoreboard view missing title:\n%s", m.View())
	}

	m, _ = update(t, m, runeKey('b'))
	if m.current != screenMenu {
		t.Errorf("b should return to menu, at %v", m.current)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, nil, testRuntime(0), "")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.IsQuitting() || cmd == nil {
		t.Error("Quit entry should end the session")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := NewSessionModel(nil, nil, testRuntime(4), "")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c in game should end the session")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(nil, nil, testRuntime(4), "")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("game should use the resized window, got %d lines", lines)
	}
}
