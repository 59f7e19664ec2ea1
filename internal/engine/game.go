package engine

// NewGame returns an empty board with two tiles at distinct random cells.
func NewGame(src Source) Board {
	var b Board

	first := src.IntN(Cells)
	second := src.IntN(Cells - 1)
	if second >= first {
		second++
	}

	b[first] = spawnRank(src)
	b[second] = spawnRank(src)
	return b
}

// Step plays one turn: shift toward dir, spawn a tile, then check whether the
// game is over. A shift that moves nothing still spawns.
func Step(b Board, dir Direction, src Source) (Board, int, bool) {
	shifted, score := Shift(b, dir)
	next := Spawn(shifted, src)
	return next, score, IsTerminal(next)
}
