// Package analysis implements the foreground handle to a background
// best-first search: Spawn starts a worker goroutine running the
// search.Drive loop and returns an Analysis the caller polls or waits
// on for incrementally improving move ratings.
package analysis

import (
	"errors"
	"sync"
	"time"

	"blockcore/finesse"
	"blockcore/internal/config"
	"blockcore/internal/searchlog"
	"blockcore/piece"
	"blockcore/place"
	"blockcore/search"
	"blockcore/search/bestfirst"
	"blockcore/shape"
	"blockcore/state"
)

// channelCapacity bounds the worker-to-handle channel, applying
// backpressure when the consumer falls behind.
const channelCapacity = 256

// MoveId re-exports search.MoveId so callers of this package never need
// to import search directly just to hold an id.
type MoveId = search.MoveId

// Suggestion is the caller-facing result of asking about a move: the
// input sequence that realizes it, truncated to the requested length,
// and the move's current best-known rating.
type Suggestion struct {
	Inputs []piece.Input
	Rating int64
}

// Stats summarizes a finished analysis. Populated exactly once, when
// the worker terminates normally.
type Stats struct {
	Iterations uint64
	Nodes      uint64
	TimeTaken  time.Duration
}

// ErrDone indicates the analysis has finished and no further updates to
// any move will ever arrive.
var ErrDone = errors.New("analysis: done")

// move is the latest known record for one MoveId.
type move struct {
	iteration uint64
	rating    int64
	trace     []int
}

// msg is sent from the worker goroutine to the Analysis handle.
type msg struct {
	moveId search.MoveId
	mov    move
}

// statsBox is the single-writer, multi-reader slot the worker populates
// exactly once at the end of a run.
type statsBox struct {
	mu    sync.RWMutex
	stats *Stats
}

func (b *statsBox) set(s Stats) {
	b.mu.Lock()
	b.stats = &s
	b.mu.Unlock()
}

func (b *statsBox) get() *Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stats
}

// Analysis is a handle to a background search. It is single-consumer:
// only the goroutine holding it should call its methods.
type Analysis struct {
	moves       map[search.MoveId]move
	traceInputs func([]int) []piece.Input
	stats       *statsBox
	rx          <-chan msg

	cancelOnce sync.Once
	cancel     chan struct{}
}

// sink is the worker-side counterpart to Analysis, used to push updates
// and, on completion, finalize stats.
type sink struct {
	stats  *statsBox
	tx     chan<- msg
	cancel <-chan struct{}
}

// newAnalysis builds a (sink, handle) pair. traceInputs computes the
// input sequence for a trace; Spawn supplies the real reconstructor,
// while tests can supply a stand-in.
func newAnalysis(traceInputs func([]int) []piece.Input) (*sink, *Analysis) {
	ch := make(chan msg, channelCapacity)
	cancel := make(chan struct{})
	sb := &statsBox{}
	return &sink{stats: sb, tx: ch, cancel: cancel},
		&Analysis{
			moves:       make(map[search.MoveId]move, 128),
			traceInputs: traceInputs,
			stats:       sb,
			rx:          ch,
			cancel:      cancel,
		}
}

// Close signals the worker to abandon the search at its next send.
// Safe to call more than once or not at all (letting the search run to
// completion and the channel close on its own).
func (a *Analysis) Close() {
	a.cancelOnce.Do(func() { close(a.cancel) })
}

func (a *Analysis) recv(m msg) search.MoveId {
	a.moves[m.moveId] = m.mov
	return m.moveId
}

// Poll checks for progress without blocking. A non-nil id means that
// move's rating changed; a nil id and nil error means no progress since
// the last poll; ErrDone means the analysis has finished and no id
// follows.
func (a *Analysis) Poll() (*search.MoveId, error) {
	select {
	case m, ok := <-a.rx:
		if !ok {
			return nil, ErrDone
		}
		id := a.recv(m)
		return &id, nil
	default:
		return nil, nil
	}
}

// Wait blocks until the worker finishes, applying every remaining
// update along the way. After Wait returns, Poll always returns
// ErrDone.
func (a *Analysis) Wait() {
	for m := range a.rx {
		a.recv(m)
	}
}

// AllMoves returns every MoveId currently known, in unspecified order.
func (a *Analysis) AllMoves() []search.MoveId {
	ids := make([]search.MoveId, 0, len(a.moves))
	for id := range a.moves {
		ids = append(ids, id)
	}
	return ids
}

// Cmp orders two known MoveIds by (rating, iteration) ascending — lower
// rating wins, ties broken in favor of the move discovered earlier.
// Returns a negative number if lhs sorts before rhs, positive if after,
// zero if equal. Panics if either id is unknown.
func (a *Analysis) Cmp(lhs, rhs search.MoveId) int {
	l, ok := a.moves[lhs]
	if !ok {
		panic("analysis: unknown move id")
	}
	r, ok := a.moves[rhs]
	if !ok {
		panic("analysis: unknown move id")
	}
	if l.rating != r.rating {
		if l.rating < r.rating {
			return -1
		}
		return 1
	}
	if l.iteration != r.iteration {
		if l.iteration < r.iteration {
			return -1
		}
		return 1
	}
	return 0
}

// Suggestion returns the inputs and rating for move m, using at most
// length placements from its trace. length may exceed the trace's
// length to mean "the whole trace"; it may be 0 to get only the rating.
// Panics if m is unknown.
func (a *Analysis) Suggestion(m search.MoveId, length int) Suggestion {
	mov, ok := a.moves[m]
	if !ok {
		panic("analysis: unknown move id")
	}
	n := length
	if n > len(mov.trace) {
		n = len(mov.trace)
	}
	if n < 0 {
		n = 0
	}
	return Suggestion{Inputs: a.traceInputs(mov.trace[:n]), Rating: mov.rating}
}

// Stats returns the final statistics, or nil if the search has not
// finished yet.
func (a *Analysis) Stats() *Stats {
	return a.stats.get()
}

// send blocks until either the message is queued or the handle signals
// cancellation.
func (s *sink) send(m msg) bool {
	select {
	case s.tx <- m:
		return true
	case <-s.cancel:
		return false
	}
}

func (s *sink) finish(stats Stats) {
	s.stats.set(stats)
}

// runWorker drives sch against root, forwarding every rating
// improvement to the handle via snk, and logging to lg if non-nil. It
// always closes snk's channel on return, whether the search finished
// normally or the handle was dropped mid-analysis.
func runWorker(sch search.Search, root state.State, limit uint64, snk *sink, lg *searchlog.Logger) {
	defer close(snk.tx)

	stats, finished := search.Drive(sch, root, limit, func(update search.RatingUpdate, iteration uint64) bool {
		if lg != nil {
			lg.Log(searchlog.Entry{
				Timestamp: time.Now(),
				MoveId:    uint64(update.MoveId),
				Iteration: iteration,
				Rating:    update.Rating,
				Nodes:     sch.NodeCount(),
				Message:   "improved",
			})
		}
		return snk.send(msg{
			moveId: update.MoveId,
			mov:    move{iteration: iteration, rating: update.Rating, trace: update.Trace},
		})
	})

	if !finished {
		if lg != nil {
			lg.Log(searchlog.Entry{Timestamp: time.Now(), Message: "handle disconnected mid-analysis"})
		}
		return
	}
	snk.finish(Stats{Iterations: stats.Iterations, Nodes: stats.Nodes, TimeTaken: stats.Elapsed})
}

// reconstructInputs replays trace from state0 using shtb for placement
// lookup, emitting Hold where a placement swapped the held piece and a
// finesse sequence plus a terminating hard drop for every placement.
func reconstructInputs(shtb *shape.Table, state0 state.State, trace []int) []piece.Input {
	pf := place.NewFinder()
	ff := finesse.NewFinder()
	cur := state0

	var inputs []piece.Input
	for _, idx := range trace {
		pl, ok := findPlacement(cur, shtb, pf, idx)
		if !ok {
			panic("analysis: trace index out of range")
		}
		if pl.DidHold {
			inputs = append(inputs, piece.Hold)
		}
		fins, ok := ff.Find(cur.Matrix, pl.Shape, pl.NormalOrientation, pl.Col())
		if !ok {
			panic("analysis: finesse finder failed")
		}
		inputs = append(inputs, fins...)
		inputs = append(inputs, piece.HD)
		cur = cur.Place(pl)
	}
	return inputs
}

func findPlacement(s state.State, shtb *shape.Table, pf *place.Finder, idx int) (state.Placement, bool) {
	for _, pl := range s.Placements(shtb, pf) {
		if pl.Idx == idx {
			return pl, true
		}
	}
	return state.Placement{}, false
}

// Spawn starts a new analysis in a background goroutine and returns a
// handle to it immediately. root is cloned twice: one copy drives the
// search worker, the other seeds the trace reconstructor, so neither
// can observe the other's mutations. shtb is not copied; the worker and
// the reconstructor share the same read-only table.
func Spawn(shtb *shape.Table, cfg config.Config, root state.State) *Analysis {
	state0 := root.Clone()
	workerRoot := root.Clone()

	traceInputs := func(trace []int) []piece.Input {
		return reconstructInputs(shtb, state0, trace)
	}
	snk, handle := newAnalysis(traceInputs)

	sch := bestfirst.New(shtb, place.NewFinder(), cfg.ScoreParams)
	go runWorker(sch, workerRoot, cfg.SearchLimit, snk, nil)

	return handle
}

// SpawnWithLogger is Spawn with an explicit searchlog.Logger that gets
// an entry for every rating improvement and one if the worker stops
// because the handle was closed mid-analysis (a normal finish is not
// logged), for callers (like cmd/blockcore) that want a record of the
// run on disk.
func SpawnWithLogger(shtb *shape.Table, cfg config.Config, root state.State, lg *searchlog.Logger) *Analysis {
	state0 := root.Clone()
	workerRoot := root.Clone()

	traceInputs := func(trace []int) []piece.Input {
		return reconstructInputs(shtb, state0, trace)
	}
	snk, handle := newAnalysis(traceInputs)

	sch := bestfirst.New(shtb, place.NewFinder(), cfg.ScoreParams)
	go runWorker(sch, workerRoot, cfg.SearchLimit, snk, lg)

	return handle
}
