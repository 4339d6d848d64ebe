package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ColumnCount returns how many blocks of the given width fit across the
// field when each is followed by the nominal separator.
func ColumnCount(fieldWidth, blockWidth, separator float64) int {
	if blockWidth+separator <= 0 {
		return 0
	}
	return int(math.Floor(fieldWidth / (blockWidth + separator)))
}

// SpreadSeparator returns the gap that makes cols blocks span the field
// exactly, first block flush left and last flush right.
func SpreadSeparator(fieldWidth, blockWidth float64, cols int) float64 {
	if cols < 2 {
		return 0
	}
	return (fieldWidth - float64(cols)*blockWidth) / float64(cols-1)
}

// Layout builds the block grid row by row, left to right.
func Layout(b core.Bounds, l config.BlockLayout) []Block {
	width := b.Width()
	cols := ColumnCount(width, l.Width, l.Separator)
	sep := SpreadSeparator(width, l.Width, cols)
	topGap := l.TopGap * l.Height

	blocks := make([]Block, 0, cols*l.Depth)
	for row := 0; row < l.Depth; row++ {
		for col := 0; col < cols; col++ {
			blocks = append(blocks, Block{
				X:      b.Left + l.Width/2 + float64(col)*(l.Width+sep),
				Y:      topGap + b.Top + l.Height/2 + float64(row)*(l.Height+sep),
				Width:  l.Width,
				Height: l.Height,
				Depth:  row,
				Column: col,
				Color:  core.RowColor(row),
			})
		}
	}
	return blocks
}
