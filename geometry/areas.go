package geometry

// ContiguousAreas takes the per-row gap ranges (column spans of empty
// cells, one slice per row in row order) and unions any range in row k
// with any range in row k+1 that it intersects. It returns the area
// (sum of range lengths) of every resulting component with area > 0, in
// unspecified order.
func ContiguousAreas(rows [][]Range) []int {
	var gaps []Range
	rowEnd := make([]int, 0, len(rows))
	for _, row := range rows {
		gaps = append(gaps, row...)
		rowEnd = append(rowEnd, len(gaps))
	}

	uf := newUnionFind(len(gaps))
	prevStart, prevEnd := -1, 0
	for _, end := range rowEnd {
		if prevStart >= 0 {
			row1 := gaps[prevStart:prevEnd]
			row2 := gaps[prevEnd:end]
			for _, p := range IntersectingRanges(row1, row2) {
				uf.union(prevStart+p.I, prevEnd+p.J)
			}
		}
		prevStart, prevEnd = prevEnd, end
	}

	areas := make([]int, len(gaps))
	for i, g := range gaps {
		areas[uf.find(i)] += g.Len()
	}

	out := make([]int, 0, len(areas))
	for _, a := range areas {
		if a > 0 {
			out = append(out, a)
		}
	}
	return out
}
