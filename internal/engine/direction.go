package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Direction is a move direction.
type Direction uint8

// The numeric values are the integer encoding accepted by DirectionFromInt.
const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists every direction in numeric order.
var Directions = [...]Direction{Left, Up, Right, Down}

// ErrInvalidDirection is returned by the boundary parsers for values outside
// the four directions.
var ErrInvalidDirection = errors.New("invalid direction")

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// DirectionFromInt maps 0..3 to Left, Up, Right, Down.
func DirectionFromInt(v int) (Direction, error) {
	if v < 0 || v >= len(Directions) {
		return 0, fmt.Errorf("%w: %d (want 0-3)", ErrInvalidDirection, v)
	}
	return Directions[v], nil
}

// ParseDirection accepts a direction name, its first letter, a vim key
// (h, j, k, l) or the integer encoding.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "h":
		return Left, nil
	case "up", "u", "k":
		return Up, nil
	case "right", "r", "l":
		return Right, nil
	case "down", "d", "j":
		return Down, nil
	}
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return DirectionFromInt(v)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// translate maps a logical (row, col) under dir to a physical cell index.
// Compacting logical rows toward logical column 0 moves tiles toward dir.
func translate(row, col int, dir Direction) int {
	switch dir {
	case Up:
		return col*Size + row
	case Right:
		return (Size-1-row)*Size + (Size - 1 - col)
	case Down:
		return (Size-1-col)*Size + (Size - 1 - row)
	default:
		return row*Size + col
	}
}
