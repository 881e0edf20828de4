package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// One terminal cell covers this many surface units.
const (
	CellWidth  = 10
	CellHeight = 20
)

var (
	textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	ringStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	bullStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// cellSurface paints render calls as terminal cells.
type cellSurface struct {
	screen tcell.Screen
}

func (s cellSurface) Clear() {
	s.screen.Clear()
}

// DrawCircleImage fills every cell whose centre lies inside the circle. Cells
// near the middle get a brighter bullseye.
func (s cellSurface) DrawCircleImage(_ string, x, y, r float64) {
	left := int(math.Floor((x - r) / CellWidth))
	right := int(math.Ceil((x + r) / CellWidth))
	top := int(math.Floor((y - r) / CellHeight))
	bottom := int(math.Ceil((y + r) / CellHeight))

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			cx := (float64(col) + 0.5) * CellWidth
			cy := (float64(row) + 0.5) * CellHeight
			d := math.Hypot(cx-x, cy-y)
			switch {
			case d < r/3:
				s.screen.SetContent(col, row, '█', nil, bullStyle)
			case d < r:
				s.screen.SetContent(col, row, '█', nil, ringStyle)
			}
		}
	}
}

func (s cellSurface) DrawText(label string, x, y float64) {
	col := int(x / CellWidth)
	row := int(y / CellHeight)
	for i, ch := range []rune(label) {
		s.screen.SetContent(col+i, row, ch, nil, textStyle)
	}
}
