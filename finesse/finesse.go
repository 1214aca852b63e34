// Package finesse computes the controller inputs — rotations, then
// horizontal shifts — that bring a spawning piece to a target
// orientation and column.
package finesse

import (
	"blockcore/matrix"
	"blockcore/piece"
	"blockcore/shape"
)

// SpawnCol is the fixed column a piece's bounding box occupies when it
// enters the board.
const SpawnCol = 0

// Finder computes input sequences. It holds no mutable state.
type Finder struct{}

// NewFinder returns a ready-to-use Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// Find returns the input sequence that rotates a piece spawned at
// orientation R0, column SpawnCol to the given orientation and column.
// It does not include the final hard drop; callers append that
// themselves, since a finesse sequence is also used mid-reconstruction
// where Hold may need to be pushed first. Find reports false only if
// the target orientation is unreachable, which cannot happen for the
// four-element rotation group this package supports.
func (f *Finder) Find(m matrix.Matrix, sh shape.Shape, target piece.Orientation, col int) ([]piece.Input, bool) {
	var inputs []piece.Input

	for o := piece.R0; o != target; o = o.CW() {
		inputs = append(inputs, piece.CW)
	}

	delta := col - SpawnCol
	switch {
	case delta > 0:
		for i := 0; i < delta; i++ {
			inputs = append(inputs, piece.Right)
		}
	case delta < 0:
		for i := 0; i < -delta; i++ {
			inputs = append(inputs, piece.Left)
		}
	}

	return inputs, true
}
