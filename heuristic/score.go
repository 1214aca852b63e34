package heuristic

import (
	"blockcore/geometry"
	"blockcore/matrix"
)

// Score evaluates m: lower is better. It iterates covered-hole
// detection, estimating the pieces needed to clear each covered region
// and accumulating their cost alongside the remaining row count.
func Score(params ScoreParams, m matrix.Matrix) int64 {
	mm := m.Clone()
	mm.InsertEmptyBottomRow()

	var score, depth int64
	var buf ResidueBuf

	for {
		i, res, found := CoveredHole(mm, &buf)
		if !found {
			break
		}
		rowsFrom, rowsTo := i+1, res.Limit

		var pieces int64
		for _, area := range negativeSpaces(mm, rowsFrom, rowsTo) {
			pieces += int64(area+3) / 4
		}

		mm.RemoveRows(rowsFrom, rowsTo)

		delta := pieces - depth
		if delta < 1 {
			delta = 1
		}
		score += delta
		depth++
	}

	return score*params.PieceEstimateFactor + int64(mm.Rows())*params.RowFactor
}

// negativeSpaces returns the area of every disjoint negative-space region
// spanning rows [from, to) of m.
func negativeSpaces(m matrix.Matrix, from, to int) []int {
	rows := make([][]geometry.Range, 0, to-from)
	for r := from; r < to; r++ {
		rows = append(rows, m.Gaps(r))
	}
	return geometry.ContiguousAreas(rows)
}
