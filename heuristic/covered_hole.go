package heuristic

import (
	"blockcore/geometry"
	"blockcore/matrix"
)

// ResidueBuf holds per-column residue ranges. The contract permits reusing
// the same buffer across multiple CoveredHole calls to save allocations;
// CoveredHole clears and resizes it on every call, so correctness does not
// depend on reuse.
type ResidueBuf []geometry.Range

// CoveredHole scans m top-to-bottom for the first covered hole: an empty
// cell with a filled cell somewhere above it in the same column. It
// returns the row containing the hole and the half-open range of residue
// rows above it, and reports whether a hole was found. buf is scratch
// space, see ResidueBuf.
func CoveredHole(m matrix.Matrix, buf *ResidueBuf) (row int, residue geometry.Range, found bool) {
	cols := m.Cols()
	*buf = resize(*buf, cols)
	b := *buf
	for j := range b {
		b[j] = geometry.Range{}
	}

	for i := m.Rows() - 1; i >= 0; i-- {
		for j := 0; j < cols; j++ {
			if !m.Get(i, j) {
				continue
			}
			res := &b[j]
			if res.Start > i+1 {
				return i + 1, *res, true
			}
			end := res.Limit
			if i+1 > end {
				end = i + 1
			}
			*res = geometry.Range{Start: i, Limit: end}
		}
	}

	for j := 0; j < cols; j++ {
		if b[j].Start > 0 {
			return 0, b[j], true
		}
	}
	return 0, geometry.Range{}, false
}

func resize(buf ResidueBuf, n int) ResidueBuf {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make(ResidueBuf, n)
}
