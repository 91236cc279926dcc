package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// neonPalette maps core.Color to ANSI 256-color codes. The bright entries
// are pushed toward saturated neon tones.
var neonPalette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "135",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "46",
	core.ColorBrightYellow:  "226",
	core.ColorBrightBlue:    "33",
	core.ColorBrightMagenta: "201",
	core.ColorBrightCyan:    "51",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkPurple:    "54",
}

// dimPalette holds darker tones of the neon colors for fading cells.
// Colors missing here fall back to the terminal's faint attribute.
var dimPalette = map[core.Color]lipgloss.Color{
	core.ColorMagenta:       "97",
	core.ColorBrightGreen:   "28",
	core.ColorBrightYellow:  "136",
	core.ColorBrightBlue:    "25",
	core.ColorBrightMagenta: "127",
	core.ColorBrightCyan:    "30",
	core.ColorOrange:        "130",
	core.ColorDarkPurple:    "53",
}

type cellKey struct {
	color core.Color
	shade core.Shade
}

// cellStyles is built once and only read afterwards, so SSH sessions can
// share it.
var cellStyles = buildCellStyles()

func buildCellStyles() map[cellKey]lipgloss.Style {
	styles := make(map[cellKey]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorDarkPurple; c++ {
		for _, sh := range []core.Shade{core.ShadeNormal, core.ShadeDim, core.ShadeGlow} {
			styles[cellKey{c, sh}] = newCellStyle(c, sh)
		}
	}
	return styles
}

func newCellStyle(c core.Color, sh core.Shade) lipgloss.Style {
	style := lipgloss.NewStyle()
	fg, hasFg := neonPalette[c]

	switch sh {
	case core.ShadeDim:
		if dim, ok := dimPalette[c]; ok {
			fg, hasFg = dim, true
		} else {
			style = style.Faint(true)
		}
	case core.ShadeGlow:
		style = style.Bold(true)
	}

	if hasFg {
		style = style.Foreground(fg)
	}
	return style
}

func styleFor(c core.Color, sh core.Shade) lipgloss.Style {
	if style, ok := cellStyles[cellKey{c, sh}]; ok {
		return style
	}
	return cellStyles[cellKey{core.ColorDefault, core.ShadeNormal}]
}

// cellRun is a span of adjacent cells sharing color and shade.
type cellRun struct {
	key  cellKey
	text string
}

func rowRuns(s *core.Screen, y int) []cellRun {
	var runs []cellRun
	var sb strings.Builder
	x := 0
	for x < s.Width() {
		first := s.GetCell(x, y)
		key := cellKey{first.Color, first.Shade}

		sb.Reset()
		for ; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != key.color || cell.Shade != key.shade {
				break
			}
			sb.WriteRune(cell.Rune)
		}
		runs = append(runs, cellRun{key: key, text: sb.String()})
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color and shade share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, run := range rowRuns(s, y) {
			sb.WriteString(styleFor(run.key.color, run.key.shade).Render(run.text))
		}
	}
	return sb.String()
}
