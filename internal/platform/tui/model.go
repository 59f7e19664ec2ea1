package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zwovieracht/internal/core"
	"github.com/vovakirdan/zwovieracht/internal/game"
	"github.com/vovakirdan/zwovieracht/internal/storage"
)

// GameModel is the Bubble Tea model for one 2048 game.
// The game only advances on key presses, so there is no tick loop.
type GameModel struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	player     string
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a model and starts a game right away.
// A nil store disables score saving.
func NewGameModel(store *storage.Store, keys *KeyMapper, cfg core.RuntimeConfig, player string) GameModel {
	if keys == nil {
		keys = DefaultKeyMapper()
	}

	session := game.New()
	session.Reset(cfg)

	return GameModel{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		keys:      keys,
		config:    cfg,
		player:    player,
		gameState: session.State(),
	}
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.session.Resize(msg.Width, msg.Height)
		m.gameState = m.session.State()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	if m.keys.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case frame.Has(core.ActionBack):
		m.backToMenu = true
		return m, tea.Quit

	case frame.Has(core.ActionRestart):
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	result := m.session.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	return m, nil
}

// restart begins a fresh game with system entropy. Replaying a fixed seed
// after a loss would deal the same game again.
func (m *GameModel) restart() {
	m.config.Seed = 0
	m.session.Reset(m.config)
	m.gameState = m.session.State()
	m.scoreSaved = false
}

// saveScore records the finished game once.
func (m *GameModel) saveScore() {
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score == 0 {
		return
	}

	snap := m.session.Snapshot()
	//nolint:errcheck // Best-effort save, the game over screen shows regardless
	m.store.SaveScore(storage.ScoreEntry{
		GameID:  m.session.ID(),
		Player:  m.player,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Seed:    snap.Seed,
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the latest game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Snapshot returns the session snapshot.
func (m GameModel) Snapshot() game.Snapshot {
	return m.session.Snapshot()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal.
func Run(store *storage.Store, keys *KeyMapper, cfg core.RuntimeConfig, player string) (game.Snapshot, error) {
	model := NewGameModel(store, keys, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return model.Snapshot(), err
	}

	if m, ok := finalModel.(GameModel); ok {
		return m.Snapshot(), nil
	}
	return model.Snapshot(), nil
}
