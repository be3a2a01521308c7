// Package surface is the character grid the scenes draw into and the
// terminal that grid is shown on.
package surface

import "strings"

// Surface is a bounded grid of cells. Writes that fall outside the grid
// are dropped, a partial write keeps the cells that fit.
type Surface interface {
	Size() (width, height int)
	Write(row, col int, text string, attr Attr)
}

// Cell is one character position.
type Cell struct {
	Rune rune
	Attr Attr
}

var blank = Cell{Rune: ' '}

// Buffer is an in-memory Surface. The terminal renders from one; tests
// inspect one directly.
type Buffer struct {
	width, height int
	cells         []Cell
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize changes the dimensions and clears every cell. Negative sizes are
// treated as zero.
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if n := width * height; cap(b.cells) >= n {
		b.cells = b.cells[:n]
	} else {
		b.cells = make([]Cell, n)
	}
	b.width, b.height = width, height
	b.Clear()
}

func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

func (b *Buffer) Write(row, col int, text string, attr Attr) {
	if row < 0 || row >= b.height {
		return
	}
	x := col
	for _, r := range text {
		if x >= b.width {
			return
		}
		if x >= 0 {
			b.cells[row*b.width+x] = Cell{Rune: r, Attr: attr}
		}
		x++
	}
}

// At returns the cell at row, col. Positions off the grid read as blank.
func (b *Buffer) At(row, col int) Cell {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return blank
	}
	return b.cells[row*b.width+col]
}

// Row returns the characters of one row.
func (b *Buffer) Row(row int) string {
	if row < 0 || row >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[row*b.width : (row+1)*b.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns every row joined by newlines.
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for i := range rows {
		rows[i] = b.Row(i)
	}
	return strings.Join(rows, "\n")
}

// Equal reports whether b and o hold identical cells.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
