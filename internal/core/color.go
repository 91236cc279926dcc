package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform layer.
type Color uint8

// Basic terminal colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkPurple
)

// Neon theme aliases used by game entities.
const (
	ColorNeonPink   = ColorBrightMagenta
	ColorNeonCyan   = ColorBrightCyan
	ColorNeonGreen  = ColorBrightGreen
	ColorNeonPurple = ColorMagenta
	ColorNeonYellow = ColorBrightYellow
	ColorNeonOrange = ColorOrange
	ColorGlowBlue   = ColorBrightBlue
)

// Shade is the intensity a cell is drawn at.
type Shade uint8

const (
	ShadeNormal Shade = iota
	ShadeDim          // Fading particles, old trail points, the grid
	ShadeGlow         // Balls and active shields
)

// Cell is a single character cell with its color and shade.
type Cell struct {
	Rune  rune
	Color Color
	Shade Shade
}

// blankCell is what Clear writes into every cell.
var blankCell = Cell{Rune: ' ', Color: ColorDefault}
