// Package state ties the board, the upcoming-piece queue, and the hold
// slot together into the single value the search driver and trace
// reconstructor advance placement by placement.
package state

import (
	"blockcore/matrix"
	"blockcore/piece"
	"blockcore/place"
	"blockcore/shape"
)

// State is a board position together with the pieces still to come.
// Queue[0] is the current piece; Hold, if non-nil, names the held
// piece's table index.
type State struct {
	Matrix matrix.Matrix
	Queue  []int
	Hold   *int
}

// Placement is one candidate first move: play the current piece (or
// swap it into hold first) at a landing the PlaceFinder produced. Idx
// is this placement's position in the deterministic sequence
// Placements returns — the value a trace records at each step.
type Placement struct {
	Idx               int
	Shape             shape.Shape
	NormalOrientation piece.Orientation
	DidHold           bool

	landing place.Landing
}

// Col returns the landing's column, for collaborators such as finesse
// that need to know where to steer the piece but have no reason to see
// the landing's row (hard-dropping resolves that automatically).
func (p Placement) Col() int {
	return p.landing.Col
}

// Clone returns a deep copy of s; mutating the copy's Matrix, Queue, or
// Hold never affects s. Used where a state is captured for independent
// use by a background worker and a trace-reconstruction closure.
func (s State) Clone() State {
	var hold *int
	if s.Hold != nil {
		h := *s.Hold
		hold = &h
	}
	return State{
		Matrix: s.Matrix.Clone(),
		Queue:  append([]int(nil), s.Queue...),
		Hold:   hold,
	}
}

// Placements enumerates every placement reachable from s: first every
// landing of the current piece, then — if a hold swap is available —
// every landing of the piece that swap would bring into play. The
// order is deterministic for a given (s, shtb, pf), which the trace
// reconstructor depends on.
func (s State) Placements(shtb *shape.Table, pf *place.Finder) []Placement {
	var out []Placement
	if len(s.Queue) == 0 {
		return out
	}

	cur := shtb.At(s.Queue[0])
	for _, l := range pf.Enumerate(s.Matrix, cur) {
		out = append(out, Placement{
			Idx:               len(out),
			Shape:             cur,
			NormalOrientation: l.Orientation,
			landing:           l,
		})
	}

	holdIdx, canHold := s.holdCandidate()
	if !canHold {
		return out
	}
	heldShape := shtb.At(holdIdx)
	for _, l := range pf.Enumerate(s.Matrix, heldShape) {
		out = append(out, Placement{
			Idx:               len(out),
			Shape:             heldShape,
			NormalOrientation: l.Orientation,
			DidHold:           true,
			landing:           l,
		})
	}
	return out
}

// holdCandidate returns the shape-table index that would become the
// current piece if the player held, and whether holding is possible at
// all (it is not, with an empty hold and fewer than two queued pieces).
func (s State) holdCandidate() (idx int, ok bool) {
	if s.Hold != nil {
		return *s.Hold, true
	}
	if len(s.Queue) > 1 {
		return s.Queue[1], true
	}
	return 0, false
}

// Place applies pl: stamps the shape's cells into the board at its
// landing, clears any completed rows, and advances the queue and hold
// slot. A hold swap never drops a piece: the piece that would have
// played normally becomes the new hold.
func (s State) Place(pl Placement) State {
	m := s.Matrix.Clone()
	for _, c := range pl.Shape.Cells(pl.landing.Orientation) {
		m.Set(pl.landing.Row+c.Row, pl.landing.Col+c.Col)
	}
	m.ClearFullRows()

	ns := State{Matrix: m}
	if !pl.DidHold {
		ns.Hold = s.Hold
		ns.Queue = append([]int(nil), s.Queue[1:]...)
		return ns
	}

	newHold := s.Queue[0]
	ns.Hold = &newHold
	if s.Hold != nil {
		ns.Queue = append([]int(nil), s.Queue[1:]...)
	} else {
		ns.Queue = append([]int(nil), s.Queue[2:]...)
	}
	return ns
}
