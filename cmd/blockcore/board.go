package main

import (
	"fmt"
	"os"
	"strings"

	"blockcore/matrix"
	"blockcore/shape"
	"blockcore/state"
)

// loadBoard reads a board+queue file. The first line is a
// comma-separated list of shape names for the upcoming-piece queue
// (e.g. "I,O,T,S"); the remaining lines are the board itself, one row
// per line, top row first, '#' for a filled cell and '.' for empty.
func loadBoard(shtb *shape.Table, path string) (state.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return state.State{}, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 2 {
		return state.State{}, fmt.Errorf("board file needs a queue line followed by at least one board row")
	}

	queue, err := parseQueue(shtb, lines[0])
	if err != nil {
		return state.State{}, err
	}

	rows := lines[1:]
	cols := len(rows[0])
	bottomUp := make([][]bool, len(rows))
	for i, line := range rows {
		if len(line) != cols {
			return state.State{}, fmt.Errorf("board row %d has length %d, want %d", i, len(line), cols)
		}
		row := make([]bool, cols)
		for c, ch := range line {
			row[c] = ch == '#'
		}
		bottomUp[len(rows)-1-i] = row
	}

	return state.State{Matrix: matrix.FromRows(cols, bottomUp), Queue: queue}, nil
}

func parseQueue(shtb *shape.Table, line string) ([]int, error) {
	names := strings.Split(strings.TrimSpace(line), ",")
	queue := make([]int, 0, len(names))
	for _, name := range names {
		name = strings.ToUpper(strings.TrimSpace(name))
		idx, ok := shapeIndexByName(shtb, name)
		if !ok {
			return nil, fmt.Errorf("unknown shape %q in queue", name)
		}
		queue = append(queue, idx)
	}
	if len(queue) == 0 {
		return nil, fmt.Errorf("queue must name at least one shape")
	}
	return queue, nil
}

func shapeIndexByName(shtb *shape.Table, name string) (int, bool) {
	for i, sh := range shtb.Shapes() {
		if sh.Name == name {
			return i, true
		}
	}
	return 0, false
}
