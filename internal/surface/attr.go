package surface

import "github.com/gdamore/tcell/v2"

// Color is a terminal color. ColorDefault leaves the terminal's own
// foreground or background in place.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// Attr is the color and intensity a cell is drawn with.
type Attr struct {
	FG   Color
	BG   Color
	Bold bool
	Dim  bool
}

// WithBold returns a copy of a with bold set.
func (a Attr) WithBold() Attr {
	a.Bold = true
	return a
}

// WithDim returns a copy of a with dim set.
func (a Attr) WithDim() Attr {
	a.Dim = true
	return a
}

// style is a as a tcell style.
func (a Attr) style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(a.FG.color()).
		Background(a.BG.color()).
		Bold(a.Bold).
		Dim(a.Dim)
}

// color maps c onto the eight basic palette entries, with gray taken from
// the 256-color ramp.
func (c Color) color() tcell.Color {
	switch c {
	case ColorDefault:
		return tcell.ColorDefault
	case ColorGray:
		return tcell.PaletteColor(245)
	default:
		return tcell.PaletteColor(int(c) - int(ColorBlack))
	}
}
