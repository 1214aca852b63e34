// Package searchlog is a threaded, channel-backed logger the search
// worker uses to record rating improvements without blocking on I/O: a
// queue channel, a background writer goroutine, a done channel for
// shutdown, and drop-on-full semantics so a slow disk never stalls the
// search.
package searchlog

import (
	"fmt"
	"os"
	"time"
)

// Entry is one record of search progress.
type Entry struct {
	Timestamp time.Time
	MoveId    uint64
	Iteration uint64
	Rating    int64
	Nodes     uint64
	Message   string // e.g. "improved", "handle disconnected mid-analysis"
}

// Logger writes Entries to a file on a background goroutine.
type Logger struct {
	file  *os.File
	queue chan Entry
	done  chan bool
}

// New opens (or creates/appends to) filename and starts the writer
// goroutine.
func New(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		file:  file,
		queue: make(chan Entry, 256),
		done:  make(chan bool),
	}
	go l.writer()
	return l, nil
}

// Log enqueues e for writing. If the queue is full, the entry is
// dropped rather than blocking the search worker.
func (l *Logger) Log(e Entry) {
	select {
	case l.queue <- e:
	default:
		fmt.Fprintln(os.Stderr, "searchlog: queue full, dropping entry")
	}
}

// Close drains the queue and closes the underlying file.
func (l *Logger) Close() {
	close(l.queue)
	<-l.done
	l.file.Close()
}

func (l *Logger) writer() {
	for e := range l.queue {
		line := fmt.Sprintf("%s | move %d | iter %-6d | rating %-8d | nodes %-10d | %s\n",
			e.Timestamp.Format("01-02 15:04:05"),
			e.MoveId,
			e.Iteration,
			e.Rating,
			e.Nodes,
			e.Message,
		)
		l.file.WriteString(line)
	}
	l.done <- true
}
