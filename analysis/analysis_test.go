package analysis

import (
	"math"
	"testing"
	"time"

	"blockcore/piece"
	"blockcore/search"

	"github.com/stretchr/testify/assert"
)

// spamHDTraces stands in for a real trace reconstructor in tests that
// only care about Analysis bookkeeping: one HD per trace element.
func spamHDTraces(trace []int) []piece.Input {
	out := make([]piece.Input, len(trace))
	for i := range out {
		out[i] = piece.HD
	}
	return out
}

func TestAnalysis_Poll(t *testing.T) {
	snk, handle := newAnalysis(spamHDTraces)

	id, err := handle.Poll()
	assert.NoError(t, err)
	assert.Nil(t, id)

	assert.True(t, snk.send(msg{
		moveId: 6,
		mov:    move{iteration: 1, rating: 1234, trace: []int{6, 7, 8}},
	}))

	id, err = handle.Poll()
	assert.NoError(t, err)
	assert.Equal(t, search.MoveId(6), *id)
	assert.Equal(t, int64(1234), handle.Suggestion(6, 0).Rating)

	id, err = handle.Poll()
	assert.NoError(t, err)
	assert.Nil(t, id)

	snk.finish(Stats{})
	close(snk.tx) // mirrors the worker's defer close(snk.tx) on exit

	_, err = handle.Poll()
	assert.ErrorIs(t, err, ErrDone)
}

func exampleAnalysis(t *testing.T, snk *sink) {
	t.Helper()
	assert.True(t, snk.send(msg{
		moveId: 6,
		mov:    move{iteration: 1, rating: 1234, trace: []int{6, 7, 8}},
	}))
	assert.True(t, snk.send(msg{
		moveId: 7,
		mov:    move{iteration: 2, rating: 1233, trace: []int{7, 8, 9, 10}},
	}))
	assert.True(t, snk.send(msg{
		moveId: 6,
		mov:    move{iteration: 3, rating: 1233, trace: []int{6, 7, 9}},
	}))
	close(snk.tx)
}

func TestAnalysis_Wait(t *testing.T) {
	snk, handle := newAnalysis(spamHDTraces)

	id, err := handle.Poll()
	assert.NoError(t, err)
	assert.Nil(t, id)

	exampleAnalysis(t, snk)
	handle.Wait()

	_, err = handle.Poll()
	assert.ErrorIs(t, err, ErrDone)
}

func TestAnalysis_Suggestion(t *testing.T) {
	snk, handle := newAnalysis(spamHDTraces)
	exampleAnalysis(t, snk)
	handle.Wait()

	assert.Equal(t, Suggestion{Rating: 1233, Inputs: []piece.Input{piece.HD, piece.HD, piece.HD}},
		handle.Suggestion(6, math.MaxInt))
	assert.Equal(t, Suggestion{Rating: 1233, Inputs: []piece.Input{piece.HD, piece.HD, piece.HD, piece.HD}},
		handle.Suggestion(7, math.MaxInt))
	assert.Equal(t, []piece.Input{piece.HD}, handle.Suggestion(7, 1).Inputs)
	assert.Equal(t, []piece.Input{piece.HD, piece.HD}, handle.Suggestion(7, 2).Inputs)
}

func TestAnalysis_Cmp(t *testing.T) {
	snk, handle := newAnalysis(spamHDTraces)
	exampleAnalysis(t, snk)
	handle.Wait()

	assert.Equal(t, 0, handle.Cmp(6, 6))
	assert.Positive(t, handle.Cmp(6, 7)) // ratings tie; move 6's final iteration (3) > move 7's (2)
	assert.Negative(t, handle.Cmp(7, 6))
}

func TestAnalysis_Statistics(t *testing.T) {
	snk, handle := newAnalysis(spamHDTraces)
	assert.Nil(t, handle.Stats())

	s := Stats{Iterations: 1, Nodes: 2, TimeTaken: 300 * time.Millisecond}
	snk.finish(s)
	assert.Equal(t, &s, handle.Stats())
}

func TestAnalysis_CloseCancelsAPendingSend(t *testing.T) {
	snk, handle := newAnalysis(spamHDTraces)

	// Fill the channel so the next send blocks, then cancel via the
	// handle; the blocked send must observe cancellation rather than
	// hanging forever.
	for i := 0; i < channelCapacity; i++ {
		assert.True(t, snk.send(msg{moveId: search.MoveId(i), mov: move{}}))
	}

	done := make(chan bool, 1)
	go func() {
		done <- snk.send(msg{moveId: 999, mov: move{}})
	}()

	handle.Close()
	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("send did not observe cancellation")
	}
}
