package game

import "github.com/vovakirdan/zwovieracht/internal/engine"

// StateType names the session's current state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete session state for replay checks and
// score records.
type Snapshot struct {
	Board   engine.Board
	Score   int
	Moves   int
	Delta   int // Score gained by the last move
	MaxTile int // Face value of the highest tile
	MaxRank uint8
	Seed    uint64
	State   StateType
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.gameOver:
		state = StateGameOver
	case s.tooSmall:
		state = StatePausedSmall
	}

	maxRank := s.board.MaxRank()
	return Snapshot{
		Board:   s.board,
		Score:   s.score,
		Moves:   s.moves,
		Delta:   s.lastDelta,
		MaxTile: engine.FaceValue(maxRank),
		MaxRank: maxRank,
		Seed:    s.seed,
		State:   state,
	}
}
