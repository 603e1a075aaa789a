package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW    = engine.Size*cellWidth + 1
	boardH    = engine.Size*cellHeight + 1
	hudHeight = 3

	minScreenW = 40
	minScreenH = hudHeight + 1 + boardH + 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)

	dst.DrawTextCentered(boardY+boardH+1, g.Controls(), core.ColorMuted)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorMuted)
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorTitle)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.state.Score))

	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawText(boardX+boardW-len(best), 1, best)

	if g.lastStep.Gained > 0 && !g.outcome.Terminal() {
		gain := fmt.Sprintf("+%d", g.lastStep.Gained)
		dst.DrawTextColored(boardX, 2, gain, core.ColorMuted)
	}
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := 0; y < engine.Size+1; y++ {
		for x := 0; x < engine.Size+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColored(px, py, gridCorner(x, y), core.ColorGrid)

			if x < engine.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGrid)
				}
			}
			if y < engine.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGrid)
				}
			}
		}
	}

	for y := 0; y < engine.Size; y++ {
		for x := 0; x < engine.Size; x++ {
			val := g.state.Board[y][x]
			if val == 0 {
				continue
			}

			color := core.TileColor(val)
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			// Paint the whole cell so the tile reads as a colored block.
			dst.DrawRect(core.NewRect(cellX, cellY, cellWidth-1, cellHeight-1), ' ', color)

			valStr := strconv.Itoa(val)
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// gridCorner picks the box-drawing rune for a grid intersection.
func gridCorner(x, y int) rune {
	last := engine.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws the pause box or the end-of-game banner.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, core.ColorDefault, "PAUSED", "Press P to resume")
		return
	}

	switch g.outcome {
	case engine.Win:
		g.drawOverlay(dst, centerX, centerY, core.ColorWin, "You win!", g.countdownLine())
	case engine.Loss:
		g.drawOverlay(dst, centerX, centerY, core.ColorLoss, "Game over!", g.countdownLine())
	}
}

func (g *Game) countdownLine() string {
	secs := (g.bannerTicks + g.tickRate - 1) / g.tickRate
	return fmt.Sprintf("New game in %ds", secs)
}

// drawOverlay draws a centered boxed message.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.CenteredRect(centerX, centerY, boxW, boxH)

	dst.DrawRect(box, ' ', color)
	dst.DrawBox(box, color)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows move | R new | P pause | Q quit"
}
