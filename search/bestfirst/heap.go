package bestfirst

import (
	"blockcore/search"
	"blockcore/state"
)

// frontierNode is one pending expansion: a board state reached by a
// specific trace of placement indices from the root, tagged with the
// root move it descends from.
type frontierNode struct {
	state    state.State
	trace    []int
	rootMove search.MoveId
	depth    int64
	cost     int64
}

// nodeHeap is a container/heap of frontierNodes ordered by ascending
// cost (lower is better, matching score's "lower is better" contract).
type nodeHeap []*frontierNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*frontierNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}
