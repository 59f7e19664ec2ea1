package engine

// IsTerminal reports whether no direction changes the board.
// It runs the full shift for each direction instead of inspecting
// neighbours so that it agrees with Shift by construction.
func IsTerminal(b Board) bool {
	for _, dir := range Directions {
		if next, _ := Shift(b, dir); next != b {
			return false
		}
	}
	return true
}
