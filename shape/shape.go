// Package shape provides a concrete shape table: the seven standard
// tetromino shapes and their cell offsets under each orientation.
package shape

import "blockcore/piece"

// Cell is a (row, col) offset from a shape's origin.
type Cell struct {
	Row int
	Col int
}

// Shape is an immutable tetromino definition: a color and, for each
// orientation, the set of cell offsets it occupies.
type Shape struct {
	Name   string
	Color  piece.Color
	cells  [4][]Cell
	width  [4]int
	height [4]int
}

// Cells returns the cell offsets for the given orientation.
func (s Shape) Cells(o piece.Orientation) []Cell {
	return s.cells[o]
}

// Width returns the bounding-box column span for the given orientation.
func (s Shape) Width(o piece.Orientation) int {
	return s.width[o]
}

// Height returns the bounding-box row span for the given orientation.
func (s Shape) Height(o piece.Orientation) int {
	return s.height[o]
}

// Table is an immutable, reference-shareable collection of shapes,
// indexed by position (spawn order). It is safe for concurrent read
// access, so a single Table can be shared by a search worker and the
// trace reconstructor that runs alongside it.
type Table struct {
	shapes []Shape
}

// NewTable constructs a table from the given shapes.
func NewTable(shapes ...Shape) *Table {
	return &Table{shapes: shapes}
}

// Standard returns the default table of the seven standard tetrominoes
// (I, O, T, S, Z, J, L), each colored per the usual convention.
func Standard() *Table {
	mk := func(r rune) piece.Color {
		c, err := piece.NewColor(r)
		if err != nil {
			panic(err)
		}
		return c
	}
	return NewTable(
		newShape("I", mk('c'), [][]Cell{{{0, 0}, {0, 1}, {0, 2}, {0, 3}}}),
		newShape("O", mk('y'), [][]Cell{{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}),
		newShape("T", mk('m'), [][]Cell{{{0, 0}, {0, 1}, {0, 2}, {1, 1}}}),
		newShape("S", mk('g'), [][]Cell{{{0, 1}, {0, 2}, {1, 0}, {1, 1}}}),
		newShape("Z", mk('r'), [][]Cell{{{0, 0}, {0, 1}, {1, 1}, {1, 2}}}),
		newShape("J", mk('b'), [][]Cell{{{0, 0}, {1, 0}, {1, 1}, {1, 2}}}),
		newShape("L", mk('o'), [][]Cell{{{0, 2}, {1, 0}, {1, 1}, {1, 2}}}),
	)
}

// Shapes returns the shapes in table order.
func (t *Table) Shapes() []Shape {
	return t.shapes
}

// At returns the shape at index idx.
func (t *Table) At(idx int) Shape {
	return t.shapes[idx]
}

// newShape derives all four orientations of a shape from its R0 cells by
// repeatedly applying a 90-degree rotation around the bounding box.
func newShape(name string, color piece.Color, orientations [][]Cell) Shape {
	base := orientations[0]
	s := Shape{Name: name, Color: color}
	cells := base
	for o := 0; o < 4; o++ {
		s.cells[o] = cells
		w, h := bounds(cells)
		s.width[o] = w
		s.height[o] = h
		cells = rotateCW(cells, h)
	}
	return s
}

func bounds(cells []Cell) (width, height int) {
	for _, c := range cells {
		if c.Col+1 > width {
			width = c.Col + 1
		}
		if c.Row+1 > height {
			height = c.Row + 1
		}
	}
	return
}

// rotateCW rotates cells 90 degrees clockwise within a bounding box of
// the given height: (r, c) -> (c, height-1-r).
func rotateCW(cells []Cell, height int) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Row: c.Col, Col: height - 1 - c.Row}
	}
	return out
}
