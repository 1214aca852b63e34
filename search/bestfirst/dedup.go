package bestfirst

import (
	"encoding/binary"
	"hash/fnv"

	"blockcore/state"
)

// dedupEntry is a transposition-table-style entry: a verification hash
// alongside the value being cached.
type dedupEntry struct {
	hash uint64
	cost int64
	used bool
}

// dedupTable is a flat, power-of-two-sized hash table tracking the best
// path cost seen so far for a given board/queue/hold state, so the
// frontier doesn't re-expand a state it has already reached more
// cheaply. It uses an always-replace eviction policy.
type dedupTable struct {
	entries []dedupEntry
	mask    uint64
}

func newDedupTable(size int) *dedupTable {
	n := 1
	for n < size {
		n *= 2
	}
	return &dedupTable{entries: make([]dedupEntry, n), mask: uint64(n - 1)}
}

func (t *dedupTable) index(hash uint64) uint64 {
	return hash & t.mask
}

// probe reports the best cost recorded for hash, if any.
func (t *dedupTable) probe(hash uint64) (int64, bool) {
	e := &t.entries[t.index(hash)]
	if e.used && e.hash == hash {
		return e.cost, true
	}
	return 0, false
}

// store always replaces whatever occupied the slot.
func (t *dedupTable) store(hash uint64, cost int64) {
	t.entries[t.index(hash)] = dedupEntry{hash: hash, cost: cost, used: true}
}

// stateHash hashes a state's board contents, queue, and hold slot.
// Two states with the same hash are treated as the same position for
// dedup purposes.
func stateHash(s state.State) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint32(buf[:4], uint32(s.Matrix.Rows()))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(s.Matrix.Cols()))
	h.Write(buf[:8])

	for r := 0; r < s.Matrix.Rows(); r++ {
		var row uint64
		for c := 0; c < s.Matrix.Cols(); c++ {
			if s.Matrix.Get(r, c) {
				row |= 1 << uint(c)
			}
		}
		binary.LittleEndian.PutUint64(buf[:8], row)
		h.Write(buf[:8])
	}

	for _, q := range s.Queue {
		binary.LittleEndian.PutUint32(buf[:4], uint32(q))
		h.Write(buf[:4])
	}

	if s.Hold != nil {
		binary.LittleEndian.PutUint32(buf[:4], uint32(*s.Hold)+1)
	} else {
		binary.LittleEndian.PutUint32(buf[:4], 0)
	}
	h.Write(buf[:4])

	return h.Sum64()
}
