// Package bestfirst is a concrete, minimal Search (blockcore/search):
// a priority-queue frontier ordered by heuristic.Score plus
// heuristic.Penalty, with a dedup table pruning states already reached
// at least as cheaply.
package bestfirst

import (
	"container/heap"

	"blockcore/heuristic"
	"blockcore/place"
	"blockcore/search"
	"blockcore/shape"
	"blockcore/state"
)

// defaultDedupSize is the starting capacity of the dedup table, rounded
// up to a power of two by newDedupTable.
const defaultDedupSize = 1 << 16

// Search is a best-first frontier over board states. The zero value is
// not useful; construct with New.
type Search struct {
	shtb   *shape.Table
	pf     *place.Finder
	params heuristic.ScoreParams

	frontier   nodeHeap
	best       map[search.MoveId]int64
	nextMoveID search.MoveId
	nodeCount  uint64
	dedup      *dedupTable
}

// New returns a Search that evaluates frontier states with params,
// using shtb and pf to enumerate child placements.
func New(shtb *shape.Table, pf *place.Finder, params heuristic.ScoreParams) *Search {
	return &Search{shtb: shtb, pf: pf, params: params}
}

// Start seeds the frontier with one node per placement reachable from
// root, each assigned a fresh MoveId.
func (s *Search) Start(root state.State) {
	s.frontier = nil
	s.best = make(map[search.MoveId]int64)
	s.nextMoveID = 0
	s.nodeCount = 0
	s.dedup = newDedupTable(defaultDedupSize)

	heap.Init(&s.frontier)
	for _, pl := range root.Placements(s.shtb, s.pf) {
		child := root.Place(pl)
		id := s.nextMoveID
		s.nextMoveID++
		cost := heuristic.Score(s.params, child.Matrix) + heuristic.Penalty(s.params, 1)
		heap.Push(&s.frontier, &frontierNode{
			state:    child,
			trace:    []int{pl.Idx},
			rootMove: id,
			depth:    1,
			cost:     cost,
		})
	}
}

// Step pops the cheapest frontier node, expands its children, and
// reports a RatingUpdate if the popped node improves on the best
// previously-known cost for its root move.
func (s *Search) Step() (*search.RatingUpdate, error) {
	if s.frontier.Len() == 0 {
		return nil, search.ErrExhausted
	}

	n := heap.Pop(&s.frontier).(*frontierNode)
	s.nodeCount++

	key := stateHash(n.state)
	if prevCost, seen := s.dedup.probe(key); seen && prevCost <= n.cost {
		return nil, nil
	}
	s.dedup.store(key, n.cost)

	var update *search.RatingUpdate
	if best, ok := s.best[n.rootMove]; !ok || n.cost < best {
		s.best[n.rootMove] = n.cost
		update = &search.RatingUpdate{MoveId: n.rootMove, Rating: n.cost, Trace: n.trace}
	}

	for _, pl := range n.state.Placements(s.shtb, s.pf) {
		child := n.state.Place(pl)
		depth := n.depth + 1
		cost := heuristic.Score(s.params, child.Matrix) + heuristic.Penalty(s.params, depth)
		trace := append(append([]int(nil), n.trace...), pl.Idx)
		heap.Push(&s.frontier, &frontierNode{
			state:    child,
			trace:    trace,
			rootMove: n.rootMove,
			depth:    depth,
			cost:     cost,
		})
	}

	return update, nil
}

// NodeCount returns the number of frontier nodes popped so far,
// including those the dedup table pruned without expanding.
func (s *Search) NodeCount() uint64 {
	return s.nodeCount
}
