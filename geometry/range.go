// Package geometry provides the gap-geometry primitives used by the
// heuristic evaluator to detect negative space: half-open interval
// intersection and connected-component area aggregation across rows.
package geometry

// Range is a half-open integer interval [Start, Limit). Two ranges that
// merely touch ([a,b) and [b,c)) do not intersect.
type Range struct {
	Start int
	Limit int
}

// Len returns the number of integers covered by r.
func (r Range) Len() int {
	return r.Limit - r.Start
}

// Intersects reports whether r and other share an interior point.
func (r Range) Intersects(other Range) bool {
	lo := r.Start
	if other.Start > lo {
		lo = other.Start
	}
	hi := r.Limit
	if other.Limit < hi {
		hi = other.Limit
	}
	return lo < hi
}
