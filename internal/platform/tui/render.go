package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// tileStyle paints a tile in the classic 2048 palette, approximated with
// ANSI 256 colors. Light tiles get dark text.
func tileStyle(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Bold(true)
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGrid:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorWin:       lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220")).Bold(true),
	core.ColorLoss:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Bold(true),
	core.ColorTile2:     tileStyle("255", "238"),
	core.ColorTile4:     tileStyle("230", "238"),
	core.ColorTile8:     tileStyle("215", "231"),
	core.ColorTile16:    tileStyle("209", "231"),
	core.ColorTile32:    tileStyle("203", "231"),
	core.ColorTile64:    tileStyle("196", "231"),
	core.ColorTile128:   tileStyle("222", "231"),
	core.ColorTile256:   tileStyle("221", "231"),
	core.ColorTile512:   tileStyle("220", "231"),
	core.ColorTile1024:  tileStyle("214", "231"),
	core.ColorTile2048:  tileStyle("178", "231"),
	core.ColorTileSuper: tileStyle("235", "231"),
}

// styleFor returns the style for a color slot, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
