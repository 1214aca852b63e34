// Command blockcore loads a board and upcoming-piece queue from a file,
// runs an analysis to completion, and prints the best moves it found.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"blockcore/analysis"
	"blockcore/internal/config"
	"blockcore/internal/searchlog"
	"blockcore/shape"
)

func main() {
	boardPath := flag.String("board", "", "Path to a board+queue file (required)")
	configPath := flag.String("config", "", "Path to a YAML config file (optional, defaults built in)")
	logPath := flag.String("log", "", "Path to a search log file (optional)")
	limit := flag.Uint64("limit", 0, "Override the configured node limit (0 keeps the config value)")
	top := flag.Int("top", 3, "Number of ranked suggestions to print")

	flag.Parse()

	if *boardPath == "" {
		fmt.Println("Usage: blockcore -board <path> [options]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *limit > 0 {
		cfg.SearchLimit = *limit
	}

	shtb := shape.Standard()
	root, err := loadBoard(shtb, *boardPath)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	var lg *searchlog.Logger
	if *logPath != "" {
		l, err := searchlog.New(*logPath)
		if err != nil {
			fmt.Printf("Warning: could not open search log: %s\n", err)
		} else {
			lg = l
			defer lg.Close()
		}
	}

	var handle *analysis.Analysis
	if lg != nil {
		handle = analysis.SpawnWithLogger(shtb, cfg, root, lg)
	} else {
		handle = analysis.Spawn(shtb, cfg, root)
	}
	handle.Wait()

	if stats := handle.Stats(); stats != nil {
		fmt.Printf("nodes=%d iterations=%d time=%s\n", stats.Nodes, stats.Iterations, stats.TimeTaken)
	}

	ids := handle.AllMoves()
	sort.Slice(ids, func(i, j int) bool { return handle.Cmp(ids[i], ids[j]) < 0 })

	n := *top
	if n > len(ids) {
		n = len(ids)
	}
	for rank, id := range ids[:n] {
		sug := handle.Suggestion(id, 1<<30)
		fmt.Printf("#%d move=%d rating=%d inputs=%v\n", rank+1, id, sug.Rating, sug.Inputs)
	}
}
