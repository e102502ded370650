package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth    = 7 // Width of each cell (including left border)
	cellHeight   = 3 // Height of each cell (including top border)
	hudHeight    = 4 // Title, score, status and a spacer
	footerHeight = 1 // Control hints
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.variant.Size
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	dst.DrawTextCentered(g.screenH-1, g.Controls())
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.minWidth(), g.minHeight()))
}

// renderHUD draws the title, scores and status line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.variant.Name
	dst.DrawTextStyled(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow, core.ColorDefault)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.state.Score()))

	best := fmt.Sprintf("Best: %d", g.best)
	bestX := max(boardX+boardW-len(best), boardX)
	dst.DrawText(bestX, 1, best)

	status := g.status
	fg := core.ColorYellow
	if status == "" && g.last.ScoreDelta > 0 {
		status = fmt.Sprintf("+%d", g.last.ScoreDelta)
		fg = core.ColorGreen
	}
	if g.state.IsGameOver() {
		fg = core.ColorRed
	}
	if status != "" {
		dst.DrawTextStyled(boardX+(boardW-len(status))/2, 2, status, fg, core.ColorDefault)
	}
}

// renderBoard draws the grid lines and the coloured tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.variant.Size

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, junction(x, y, size))
			if x < size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for row := range size {
		for col := range size {
			g.renderTile(dst, boardX+col*cellWidth+1, boardY+row*cellHeight+1, g.state.Get(row, col))
		}
	}
}

// renderTile paints the interior of one cell and centres its value.
func (g *Game) renderTile(dst *core.Screen, x, y, value int) {
	c, ok := g.palette.Color(value)
	if !ok {
		// Values skipped over by the highest tile get the newest colour.
		c = g.palette.darkest
	}
	bg := core.Color(c.Hex())
	fg := core.ColorLightText
	if c.Light() {
		fg = core.ColorDarkText
	}

	dst.FillRect(core.NewRect(x, y, cellWidth-1, cellHeight-1), bg)
	if value == 0 {
		return
	}

	text := strconv.Itoa(value)
	pad := max((cellWidth-1-len(text))/2, 0)
	dst.DrawTextStyled(x+pad, y+(cellHeight-1)/2, text, fg, bg)
}

func junction(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.state.IsGameOver() {
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Highest tile: %d", g.state.HighestTile()),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.FillRect(box, core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextStyled(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite, core.ColorDefault)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Esc: Back | Q: Quit"
}
