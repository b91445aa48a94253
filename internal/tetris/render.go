package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants. Every grid cell is drawn two characters wide so the board
// looks square in a terminal.
const (
	cellW      = 2
	boardBoxW  = Width*cellW + 2
	boardBoxH  = Height + 2
	panelGap   = 2
	panelW     = 20
	nextBoxH   = 6
	layoutW    = boardBoxW + panelGap + panelW
	layoutH    = boardBoxH
	filledCell = "██"
	emptyCell  = " ·"
)

// MinScreenSize returns the smallest screen the board fits in.
func MinScreenSize() (int, int) {
	return layoutW, layoutH
}

// BoardRect returns where the framed board lands on a screen of the given
// size. The result is meaningless if the screen is smaller than MinScreenSize.
func BoardRect(screenW, screenH int) core.Rect {
	ox := (screenW - layoutW) / 2
	oy := (screenH - layoutH) / 2
	return core.NewRect(ox, oy, boardBoxW, boardBoxH)
}

// Render draws the current session into dst.
func (e *Engine) Render(dst *core.Screen) {
	RenderSnapshot(dst, e.Snapshot())
}

// RenderSnapshot draws the board, the active piece and the side panel.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	if dst.Width() < layoutW || dst.Height() < layoutH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", layoutW, layoutH))
		return
	}

	board := BoardRect(dst.Width(), dst.Height())
	dst.DrawBox(board)
	drawGrid(dst, board.Inset(1), s)

	panel := core.NewRect(board.Right()+panelGap, board.Y, panelW, layoutH)
	drawPanel(dst, panel, s)

	switch {
	case s.Mode == ModeGameOver:
		drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Score: %d", s.Score))
	case s.Paused:
		drawOverlay(dst, board, "PAUSED", "Space to resume")
	}
}

// drawGrid draws placed cells and then the active piece over them.
func drawGrid(dst *core.Screen, area core.Rect, s Snapshot) {
	for y, row := range s.Grid {
		for x, v := range row {
			drawCell(dst, area, x, y, v)
		}
	}

	if s.Mode != ModePlaying {
		return
	}
	for sy, row := range s.Active.Shape {
		for sx, v := range row {
			if v == 0 {
				continue
			}
			x, y := s.Active.Pos.X+sx, s.Active.Pos.Y+sy
			if y < 0 {
				continue // Spawned partially above the board
			}
			drawCell(dst, area, x, y, v)
		}
	}
}

func drawCell(dst *core.Screen, area core.Rect, x, y, v int) {
	px, py := area.X+x*cellW, area.Y+y
	if v == 0 {
		dst.DrawTextColor(px, py, emptyCell, core.ColorGray)
		return
	}
	dst.DrawTextColor(px, py, filledCell, PieceType(v).Color())
}

// drawPanel draws the HUD: player, score, lines, time and the next piece.
func drawPanel(dst *core.Screen, area core.Rect, s Snapshot) {
	y := area.Y
	line := func(label, value string) {
		dst.DrawTextColor(area.X, y, label, core.ColorGray)
		dst.DrawText(area.X+7, y, value)
		y++
	}

	line("Player", s.Player)
	line("Level", strings.ToUpper(s.Difficulty.Key))
	line("Score", fmt.Sprintf("%d", s.Score))
	line("Lines", fmt.Sprintf("%d", s.Lines))
	line("Time", s.TimeText())
	y++

	dst.DrawTextColor(area.X, y, "Next", core.ColorGray)
	y++
	next := core.NewRect(area.X, y, 4*cellW+2, nextBoxH)
	dst.DrawBox(next)
	drawPreview(dst, next.Inset(1), s.Next)
	y = next.Bottom() + 1

	help := []string{
		"←/→  move",
		"↓    soft drop",
		"↑    rotate",
		"spc  pause",
		"r    restart",
		"b    lobby",
	}
	for _, h := range help {
		if y >= area.Bottom() {
			break
		}
		dst.DrawTextColor(area.X, y, h, core.ColorGray)
		y++
	}
}

// drawPreview draws a shape at the top-left of area, ignoring empty rows.
func drawPreview(dst *core.Screen, area core.Rect, shape Shape) {
	row := 0
	for _, cells := range shape {
		if isEmptyRow(cells) {
			continue
		}
		for x, v := range cells {
			if v != 0 {
				dst.DrawTextColor(area.X+x*cellW, area.Y+1+row, filledCell, PieceType(v).Color())
			}
		}
		row++
	}
}

func isEmptyRow(cells []int) bool {
	for _, v := range cells {
		if v != 0 {
			return false
		}
	}
	return true
}

// drawOverlay draws a centered two-line message box inside area.
func drawOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	drawCentered(dst, box, box.Y+1, line1)
	drawCentered(dst, box, box.Y+3, line2)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawText(x, y, text)
}
