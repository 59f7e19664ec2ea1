package engine

// Shift slides and merges every tile toward dir.
// Returns the new board and the score gained from merges; a merge scores the
// face value of the tile it produces.
func Shift(b Board, dir Direction) (Board, int) {
	var next Board
	score := 0

	for row := range Size {
		var pending uint8
		out := 0

		for col := range Size {
			rank := b[translate(row, col, dir)]
			if rank == 0 {
				continue
			}

			if pending != 0 && rank == pending {
				// A merged tile cannot absorb another one in the same pass.
				next[translate(row, out-1, dir)]++
				score += FaceValue(rank + 1)
				pending = 0
				continue
			}

			next[translate(row, out, dir)] = rank
			pending = rank
			out++
		}
	}

	return next, score
}
