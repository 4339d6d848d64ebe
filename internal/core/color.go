package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
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
	ColorGray
)

// RowColors is the block palette, indexed by block row modulo its length.
var RowColors = []Color{ColorRed, ColorBlue, ColorYellow, ColorGreen}

// RowColor returns the palette color for a zero-based block row.
func RowColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return RowColors[row%len(RowColors)]
}
