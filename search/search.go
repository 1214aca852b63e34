// Package search defines the contract a best-first frontier must satisfy
// to drive an analysis, and the driver loop that walks that contract.
// The frontier internals themselves (component behind the Search
// interface) are deliberately out of scope beyond this contract; see
// search/bestfirst for a concrete implementation.
package search

import (
	"errors"
	"time"

	"blockcore/state"
)

// MoveId opaquely identifies a root-level placement choice. Two moves
// discovered at the root never share a MoveId.
type MoveId uint64

// RatingUpdate reports that a root move's best-known rating strictly
// improved. Trace is the placement-index sequence from the root state
// that produced the improvement.
type RatingUpdate struct {
	MoveId MoveId
	Rating int64
	Trace  []int
}

// ErrExhausted is returned by Step once the frontier has no more nodes
// to expand.
var ErrExhausted = errors.New("search: frontier exhausted")

// Search is the contract the driver loop consumes. Start seeds the
// frontier from a root state; Step advances it by one expansion.
//
// Step returns (update, nil) when a root move's rating strictly
// improved, (nil, nil) when useful work was done but nothing improved
// (an "iteration boundary"), and (nil, ErrExhausted) once the frontier
// is empty.
type Search interface {
	Start(root state.State)
	Step() (*RatingUpdate, error)
	NodeCount() uint64
}

// Stats summarizes a completed (or abandoned) search run.
type Stats struct {
	Iterations uint64
	Nodes      uint64
	Elapsed    time.Duration
}

// Emit is called once per rating improvement the driver observes. It
// returns false to signal that the consumer has gone away; Drive then
// stops at once without finishing normally.
type Emit func(update RatingUpdate, iteration uint64) bool

// Drive runs sch to completion (or until limit node expansions have
// happened, or emit reports the consumer is gone), returning final
// stats and whether the run finished normally. iteration advances on
// every no-improvement step, never on an improvement, which gives
// callers a total order over improvements via (rating, iteration).
//
// The node-count check happens before each step, matching the
// contract: a search already at the limit never takes one more step.
func Drive(sch Search, root state.State, limit uint64, emit Emit) (Stats, bool) {
	started := time.Now()
	var iteration uint64

	sch.Start(root)
	for sch.NodeCount() < limit {
		update, err := sch.Step()
		if err != nil {
			break
		}
		if update == nil {
			iteration++
			continue
		}
		if !emit(*update, iteration) {
			return Stats{}, false
		}
	}

	return Stats{
		Iterations: iteration,
		Nodes:      sch.NodeCount(),
		Elapsed:    time.Since(started),
	}, true
}
