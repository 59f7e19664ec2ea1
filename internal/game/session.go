// Package game runs a single player's 2048 session on top of the engine:
// it owns the board, the accumulated score and the random source, turns
// platform actions into moves and draws the result into a core.Screen.
package game

import (
	"github.com/vovakirdan/zwovieracht/internal/core"
	"github.com/vovakirdan/zwovieracht/internal/engine"
)

// ID identifies the game in score storage.
const ID = "2048"

// Title is the display name.
const Title = "2048"

// Session is one player's game. It is not safe for concurrent use; every
// front end owns its own Session.
type Session struct {
	src   engine.Source
	seed  uint64
	board engine.Board

	score     int
	moves     int
	lastDelta int

	// Screen dimensions
	screenW int
	screenH int
	minW    int
	minH    int

	gameOver bool
	tooSmall bool
}

// New creates a session. Call Reset before the first Step.
func New() *Session {
	return &Session{}
}

// ID returns the game identifier.
func (s *Session) ID() string {
	return ID
}

// Title returns the display name.
func (s *Session) Title() string {
	return Title
}

// Reset starts a new game.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.seed = cfg.Seed
	if cfg.Seed == 0 {
		s.src = engine.SystemSource()
	} else {
		s.src = engine.NewSource(cfg.Seed)
	}

	s.board = engine.NewGame(s.src)
	s.score = 0
	s.moves = 0
	s.lastDelta = 0
	s.gameOver = false

	s.minW = cfg.MinW
	s.minH = cfg.MinH
	s.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the game.
func (s *Session) Resize(w, h int) {
	s.screenW = w
	s.screenH = h
	s.tooSmall = w < s.minW || h < s.minH
}

// Step applies the first move action found in the frame.
// Input is ignored once the game is over or while the screen is too small.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.tooSmall || s.gameOver {
		return core.StepResult{State: s.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: s.State()}
	}

	return s.Move(dir)
}

// Move plays one turn in the given direction.
func (s *Session) Move(dir engine.Direction) core.StepResult {
	if s.gameOver {
		return core.StepResult{State: s.State()}
	}

	next, delta, done := engine.Step(s.board, dir, s.src)
	s.board = next
	s.score += delta
	s.lastDelta = delta
	s.moves++
	s.gameOver = done

	return core.StepResult{State: s.State(), Delta: delta, Moved: true}
}

// directionFor maps move actions to engine directions.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	}
	return 0, false
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Moves:    s.moves,
		GameOver: s.gameOver,
		Paused:   s.tooSmall,
	}
}

// Board returns the current board.
func (s *Session) Board() engine.Board {
	return s.board
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// Seed returns the seed the session was reset with, 0 if it used system
// entropy.
func (s *Session) Seed() uint64 {
	return s.seed
}
