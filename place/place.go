// Package place enumerates the landings a shape can reach on a board.
package place

import (
	"blockcore/matrix"
	"blockcore/piece"
	"blockcore/shape"
)

// Landing describes where a shape comes to rest: its orientation, the
// column of its bounding box, and the row of its bounding box origin
// after falling under gravity.
type Landing struct {
	Orientation piece.Orientation
	Col         int
	Row         int
}

// Finder enumerates landings. It holds no mutable state; the type exists
// so callers can hold a reusable Finder across many calls.
type Finder struct{}

// NewFinder returns a ready-to-use Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// Enumerate returns every landing of sh on m, in deterministic order:
// orientation R0..R3, then column ascending. Trace reconstruction
// depends on this order being stable across calls on equal inputs.
func (f *Finder) Enumerate(m matrix.Matrix, sh shape.Shape) []Landing {
	var out []Landing
	for o := piece.R0; int(o) < 4; o++ {
		w := sh.Width(o)
		cells := sh.Cells(o)
		for col := 0; col+w <= m.Cols(); col++ {
			out = append(out, Landing{
				Orientation: o,
				Col:         col,
				Row:         dropRow(m, cells, col),
			})
		}
	}
	return out
}

// dropRow simulates gravity: the lowest row at which the shape's cells,
// offset by (row, col), do not collide with filled cells or fall below
// row 0.
func dropRow(m matrix.Matrix, cells []shape.Cell, col int) int {
	row := m.Rows()
	for fits(m, cells, row-1, col) {
		row--
	}
	return row
}

func fits(m matrix.Matrix, cells []shape.Cell, row, col int) bool {
	if row < 0 {
		return false
	}
	for _, c := range cells {
		r, cc := row+c.Row, col+c.Col
		if r < 0 {
			return false
		}
		if r < m.Rows() && m.Get(r, cc) {
			return false
		}
	}
	return true
}
