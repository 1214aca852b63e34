// Command tourney runs repeated analyses over randomly generated
// boards and queues, reporting aggregate search statistics. It exists
// to exercise the analysis pipeline under varied inputs the way the
// teacher's tournament tool exercises an engine over many games.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"blockcore/analysis"
	"blockcore/internal/config"
	"blockcore/matrix"
	"blockcore/shape"
	"blockcore/state"
)

func main() {
	games := flag.Int("games", 20, "Number of analyses to run")
	cols := flag.Int("cols", 6, "Board width")
	queue := flag.Int("queue", 4, "Upcoming-queue length")
	limit := flag.Uint64("limit", 2000, "Node limit per analysis")
	seed := flag.Int64("seed", 1, "Random seed")

	flag.Parse()

	fmt.Printf("Running %d analyses: cols=%d queue=%d limit=%d seed=%d\n",
		*games, *cols, *queue, *limit, *seed)

	rng := rand.New(rand.NewSource(*seed))
	shtb := shape.Standard()
	cfg := config.Default()
	cfg.SearchLimit = *limit

	var totalNodes, totalIterations uint64
	var totalTime time.Duration

	for i := 0; i < *games; i++ {
		root := randomState(rng, shtb, *cols, *queue)
		handle := analysis.Spawn(shtb, cfg, root)
		handle.Wait()

		stats := handle.Stats()
		if stats == nil {
			continue
		}
		totalNodes += stats.Nodes
		totalIterations += stats.Iterations
		totalTime += stats.TimeTaken
	}

	n := uint64(*games)
	if n == 0 {
		return
	}
	fmt.Printf("avg nodes=%d avg iterations=%d avg time=%s\n",
		totalNodes/n, totalIterations/n, totalTime/time.Duration(n))
}

// randomState builds a board with a few randomly gapped bottom rows and
// a queue of random shape indices, exercising the analysis pipeline
// over varied starting positions rather than only the empty board.
func randomState(rng *rand.Rand, shtb *shape.Table, cols, queueLen int) state.State {
	numShapes := len(shtb.Shapes())
	q := make([]int, queueLen)
	for i := range q {
		q[i] = rng.Intn(numShapes)
	}

	numFilled := rng.Intn(3)
	rows := make([][]bool, numFilled)
	for i := range rows {
		row := make([]bool, cols)
		gap := rng.Intn(cols)
		for c := range row {
			row[c] = c != gap
		}
		rows[i] = row
	}

	return state.State{Matrix: matrix.FromRows(cols, rows), Queue: q}
}
