package search

import (
	"testing"

	"github.com/corvid-labs/havoc/board"
)

func TestTTProbeMiss(t *testing.T) {
	tt := NewTT(16)
	if _, ok := tt.Probe(12345, 0); ok {
		t.Errorf("expected a miss on an empty table")
	}
}

func TestTTStoreThenProbe(t *testing.T) {
	tt := NewTT(16)
	tt.Store(42, 5, 100, Exact, board.Move{From: board.SquareE2, To: board.RankFile(3, 4), Promotion: board.NoFigure})

	entry, ok := tt.Probe(42, 5)
	if !ok {
		t.Fatalf("expected a hit after store")
	}
	if entry.Score != 100 || entry.Flag != Exact {
		t.Errorf("got entry %+v, want score=100 flag=Exact", entry)
	}
}

func TestTTProbeRejectsKeyCollision(t *testing.T) {
	tt := NewTT(2) // tiny table: forces two different keys into one slot
	tt.Store(1, 3, 10, Exact, board.NullMove)
	tt.Store(3, 3, 20, Exact, board.NullMove) // same slot (mask=1), different key

	if _, ok := tt.Probe(1, 0); ok {
		t.Errorf("expected key 1 to have been overwritten by the always-replace store of key 3")
	}
	entry, ok := tt.Probe(3, 0)
	if !ok || entry.Score != 20 {
		t.Errorf("expected key 3 present with score 20, got %+v ok=%v", entry, ok)
	}
}

func TestTTProbeRejectsShallowEntry(t *testing.T) {
	tt := NewTT(16)
	tt.Store(7, 2, 5, Exact, board.NullMove)
	if _, ok := tt.Probe(7, 4); ok {
		t.Errorf("expected a miss when requesting depth above the stored entry's depth")
	}
}

func TestTTSizeIsPowerOfTwo(t *testing.T) {
	tt := NewTT(5)
	if n := tt.Len(); n&(n-1) != 0 {
		t.Errorf("NewTT(5).Len() = %d, not a power of two", n)
	}
}
