package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// cellStyle identifies one foreground/background combination.
type cellStyle struct {
	fg, bg core.Color
}

// StyleCache builds lipgloss styles lazily. Tile colours are hex values
// chosen at runtime, so styles cannot be listed up front.
type StyleCache struct {
	styles map[cellStyle]lipgloss.Style
}

// NewStyleCache creates an empty cache.
func NewStyleCache() *StyleCache {
	return &StyleCache{styles: make(map[cellStyle]lipgloss.Style)}
}

// Style returns the style for a colour pair.
func (c *StyleCache) Style(fg, bg core.Color) lipgloss.Style {
	key := cellStyle{fg: fg, bg: bg}
	if s, ok := c.styles[key]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(bg))
	}
	c.styles[key] = s
	return s
}

// Len returns the number of cached styles.
func (c *StyleCache) Len() int {
	return len(c.styles)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (c *StyleCache) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with same colours
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.FG == core.ColorDefault && start.BG == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(c.Style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
