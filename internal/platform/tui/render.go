package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/petscii/snake64/internal/core"
)

// colorStyles maps the VIC-II palette to lipgloss styles over ANSI-256
// approximations.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorBlack:      lipgloss.NewStyle().Foreground(lipgloss.Color("16")),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	core.ColorCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("116")),
	core.ColorPurple:     lipgloss.NewStyle().Foreground(lipgloss.Color("133")),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("71")),
	core.ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("61")),
	core.ColorYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("186")),
	core.ColorOrange:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrown:      lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorLightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
	core.ColorDarkGrey:   lipgloss.NewStyle().Foreground(lipgloss.Color("59")),
	core.ColorMedGrey:    lipgloss.NewStyle().Foreground(lipgloss.Color("145")),
	core.ColorLightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("151")),
	core.ColorLightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
	core.ColorLightGrey:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// glyphRune maps a screen code to the terminal rune that stands in for
// the original character-set shape.
func glyphRune(g core.Glyph) rune {
	switch g {
	case core.GlyphSpace:
		return ' '
	case core.GlyphSnake:
		return '●'
	case core.GlyphFruit:
		return '♥'
	case core.GlyphBlock:
		return '█'
	default:
		return rune(core.CharForGlyph(g))
	}
}

// RenderScreen converts the screen buffer to a styled string. Adjacent
// cells with the same color are grouped to keep the escape-sequence
// overhead down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(core.ScreenW*core.ScreenH*2 + core.ScreenH)

	for y := 0; y < core.ScreenH; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < core.ScreenW {
			startColor := s.CellColor(x, y)

			var run strings.Builder
			for x < core.ScreenW && s.CellColor(x, y) == startColor {
				run.WriteRune(glyphRune(s.GetCell(x, y)))
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorWhite]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
