// Package engine implements the 2048 transition engine: board model,
// directional shift-and-merge, tile spawning and terminal detection.
// It has no dependencies beyond the standard library and never mutates a
// Board it was handed.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Cells is the number of cells on the board.
const Cells = Size * Size

// Board is a 4x4 grid of ranks in row-major order.
// Rank 0 is an empty cell, rank r > 0 is a tile of face value 2^r.
// Board is an array, so assignment copies it and == compares every cell.
type Board [Cells]uint8

// BoardFromRanks builds a board from a row-major rank slice.
func BoardFromRanks(ranks []uint8) (Board, error) {
	var b Board
	if len(ranks) != Cells {
		return b, fmt.Errorf("engine: board needs %d ranks, got %d", Cells, len(ranks))
	}
	copy(b[:], ranks)
	return b, nil
}

// Ranks returns a copy of the cell ranks in row-major order.
func (b Board) Ranks() []uint8 {
	out := make([]uint8, Cells)
	copy(out, b[:])
	return out
}

// At returns the rank at the given row and column.
func (b Board) At(row, col int) uint8 {
	return b[row*Size+col]
}

// Value returns the face value of cell i, or 0 for an empty cell.
func (b Board) Value(i int) int {
	return FaceValue(b[i])
}

// FaceValue converts a rank to its face value. Rank 0 has no tile.
func FaceValue(rank uint8) int {
	if rank == 0 {
		return 0
	}
	return 1 << rank
}

// EmptyCells returns the indices of all empty cells in row-major order.
func (b Board) EmptyCells() []int {
	var cells []int
	for i, r := range b {
		if r == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// MaxRank returns the highest rank on the board.
func (b Board) MaxRank() uint8 {
	var maxRank uint8
	for _, r := range b {
		if r > maxRank {
			maxRank = r
		}
	}
	return maxRank
}

// Sum returns the total face value of all tiles.
func (b Board) Sum() int {
	total := 0
	for _, r := range b {
		total += FaceValue(r)
	}
	return total
}

// String renders the board as a grid of face values, "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range Size {
			cell := "."
			if r := b.At(row, col); r != 0 {
				cell = strconv.Itoa(FaceValue(r))
			}
			fmt.Fprintf(&sb, "%6s", cell)
		}
	}
	return sb.String()
}
