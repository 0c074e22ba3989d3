// Package search implements the alpha-beta search engine: evaluation,
// move ordering, the transposition table, repetition detection,
// quiescence search, the negamax driver, and iterative deepening.
package search

import "github.com/corvid-labs/havoc/board"

// ScoredMove pairs a move with an order key assigned by the MoveOrderer.
// It exists only inside a single search frame.
type ScoredMove struct {
	Move board.Move
	Key  int32
}

// Flag classifies what a TTEntry's score means relative to the bounds it
// was stored with.
type Flag uint8

const (
	NoFlag Flag = iota
	Exact
	Lower
	Upper
)

// TTEntry is one transposition table slot.
type TTEntry struct {
	Key      uint64
	Score    int32
	Depth    int8
	Flag     Flag
	BestMove board.Move
}

// Empty reports whether the slot has never been written.
func (e *TTEntry) Empty() bool { return e.Flag == NoFlag }

// GameHistory is the ordered sequence of position hashes for plies already
// played before search begins, one entry per applied move.
type GameHistory []uint64

// SearchPath is the ordered sequence of position hashes currently on the
// recursion stack: pushed on entry to a non-leaf search frame, popped on
// exit. Owned by the driver, passed mutably down the recursion.
type SearchPath []uint64

// countOccurrences returns how many times key occurs across h and p combined.
func countOccurrences(h GameHistory, p SearchPath, key uint64) int {
	n := 0
	for _, k := range h {
		if k == key {
			n++
		}
	}
	for _, k := range p {
		if k == key {
			n++
		}
	}
	return n
}
