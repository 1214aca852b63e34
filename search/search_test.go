package search

import (
	"testing"

	"blockcore/state"

	"github.com/stretchr/testify/assert"
)

// scriptedSearch replays a fixed sequence of Step results, letting tests
// drive Drive's bookkeeping without a real frontier.
type scriptedSearch struct {
	steps   []*RatingUpdate // nil entry means "no improvement"
	pos     int
	nodes   uint64
	started bool
}

func (s *scriptedSearch) Start(root state.State) { s.started = true }

func (s *scriptedSearch) Step() (*RatingUpdate, error) {
	if s.pos >= len(s.steps) {
		return nil, ErrExhausted
	}
	u := s.steps[s.pos]
	s.pos++
	s.nodes++
	return u, nil
}

func (s *scriptedSearch) NodeCount() uint64 { return s.nodes }

func TestDrive_IterationAdvancesOnlyOnNoImprovement(t *testing.T) {
	sch := &scriptedSearch{steps: []*RatingUpdate{
		{MoveId: 1, Rating: 10},
		nil,
		{MoveId: 2, Rating: 5},
		nil,
		nil,
	}}

	var iterations []uint64
	stats, finished := Drive(sch, state.State{}, 1000, func(u RatingUpdate, iteration uint64) bool {
		iterations = append(iterations, iteration)
		return true
	})

	assert.True(t, finished)
	assert.True(t, sch.started)
	assert.Equal(t, []uint64{0, 1}, iterations)
	assert.Equal(t, uint64(3), stats.Iterations)
	assert.Equal(t, uint64(5), stats.Nodes)
}

func TestDrive_StopsAtNodeLimitBeforeStepping(t *testing.T) {
	sch := &scriptedSearch{steps: []*RatingUpdate{
		{MoveId: 1, Rating: 1},
		{MoveId: 1, Rating: 1},
		{MoveId: 1, Rating: 1},
	}}

	stats, finished := Drive(sch, state.State{}, 2, func(u RatingUpdate, iteration uint64) bool {
		return true
	})

	assert.True(t, finished)
	assert.Equal(t, uint64(2), stats.Nodes)
}

func TestDrive_EmitFailureStopsImmediatelyAndSkipsStats(t *testing.T) {
	sch := &scriptedSearch{steps: []*RatingUpdate{
		{MoveId: 1, Rating: 1},
		{MoveId: 2, Rating: 2},
	}}

	calls := 0
	stats, finished := Drive(sch, state.State{}, 1000, func(u RatingUpdate, iteration uint64) bool {
		calls++
		return false
	})

	assert.False(t, finished)
	assert.Equal(t, 1, calls)
	assert.Equal(t, Stats{}, stats)
}

func TestDrive_ExhaustionBreaksLoop(t *testing.T) {
	sch := &scriptedSearch{steps: nil}

	stats, finished := Drive(sch, state.State{}, 1000, func(u RatingUpdate, iteration uint64) bool {
		t.Fatal("emit should never be called")
		return true
	})

	assert.True(t, finished)
	assert.Equal(t, uint64(0), stats.Iterations)
	assert.Equal(t, uint64(0), stats.Nodes)
}
