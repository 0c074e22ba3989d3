package search

import "github.com/corvid-labs/havoc/board"

// TT is a fixed-size, direct-mapped, always-replace transposition table.
// Index = key & mask; a key mismatch on probe is treated as a miss rather
// than resolved, which tolerates collisions at the cost of occasionally
// discarding useful entries. There is no locking: the engine is
// single-threaded and the TT is never accessed concurrently.
type TT struct {
	table []TTEntry
	mask  uint64
}

// NewTT allocates a table sized to the next power of two ≥ size (minimum
// 2, default in this repo 2^20 entries).
func NewTT(size int) *TT {
	n := 2
	for n < size {
		n <<= 1
	}
	return &TT{
		table: make([]TTEntry, n),
		mask:  uint64(n - 1),
	}
}

// Probe returns the entry at key's slot if its key matches and its depth
// is at least minDepth. ok is false on a miss or an empty slot.
func (tt *TT) Probe(key uint64, minDepth int8) (TTEntry, bool) {
	e := tt.table[key&tt.mask]
	if e.Empty() || e.Key != key || e.Depth < minDepth {
		return TTEntry{}, false
	}
	return e, true
}

// Store unconditionally overwrites the slot key maps to.
func (tt *TT) Store(key uint64, depth int8, score int32, flag Flag, best board.Move) {
	tt.table[key&tt.mask] = TTEntry{
		Key:      key,
		Score:    score,
		Depth:    depth,
		Flag:     flag,
		BestMove: best,
	}
}

// Clear zeroes every slot, dropping all learned information.
func (tt *TT) Clear() {
	for i := range tt.table {
		tt.table[i] = TTEntry{}
	}
}

// Len returns the number of slots.
func (tt *TT) Len() int { return len(tt.table) }
