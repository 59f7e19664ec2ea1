package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/zwovieracht/internal/core"
	"github.com/vovakirdan/zwovieracht/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// Render draws the session to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if s.tooSmall {
		s.renderTooSmall(dst)
		return
	}

	boardW := engine.Size*cellWidth + 1
	boardH := engine.Size*cellHeight + 1

	boardX := (s.screenW - boardW) / 2
	boardY := hudHeight + 1

	s.renderHUD(dst, boardX, boardW)
	s.renderBoard(dst, boardX, boardY)

	if s.gameOver {
		s.renderGameOver(dst, boardX+boardW/2, boardY+boardH/2)
	}

	controls := s.Controls()
	dst.DrawTextColored((s.screenW-len(controls))/2, boardY+boardH+1, controls, core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (s *Session) renderTooSmall(dst *core.Screen) {
	y := s.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", s.minW, s.minH))
}

// renderHUD draws the title, score and best tile.
func (s *Session) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2 0 4 8"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", s.score))

	best := fmt.Sprintf("Best tile: %d", engine.FaceValue(s.board.MaxRank()))
	dst.DrawText(max(boardX, boardX+boardW-len(best)), 1, best)

	if s.lastDelta > 0 {
		dst.DrawTextColored(boardX, 2, fmt.Sprintf("+%d", s.lastDelta), core.ColorGreen)
	}
	moves := fmt.Sprintf("Moves: %d", s.moves)
	dst.DrawTextColored(max(boardX, boardX+boardW-len(moves)), 2, moves, core.ColorGray)
}

// renderBoard draws the grid and the tiles.
func (s *Session) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range engine.Size + 1 {
		for x := range engine.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == engine.Size:
				corner = '┐'
			case y == engine.Size && x == 0:
				corner = '└'
			case y == engine.Size && x == engine.Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == engine.Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == engine.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < engine.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < engine.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for row := range engine.Size {
		for col := range engine.Size {
			rank := s.board.At(row, col)
			if rank == 0 {
				continue
			}

			label := strconv.Itoa(engine.FaceValue(rank))
			pad := max(0, (cellWidth-1-len(label))/2)
			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1

			dst.DrawTextColored(cellX+pad, cellY, label, core.TileColor(rank))
		}
	}
}

// renderGameOver draws the game over box centered on the board.
func (s *Session) renderGameOver(dst *core.Screen, centerX, centerY int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", s.score),
		"R: restart  Q: quit",
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorRed)
	}
}

// Controls returns the control hints for the game.
func (s *Session) Controls() string {
	return "hjkl/arrows  R:new  Q:quit"
}
