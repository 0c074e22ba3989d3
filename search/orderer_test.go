package search

import (
	"testing"

	"github.com/corvid-labs/havoc/board"
)

func TestOrderKeyTTBestWins(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.GenerateMoves()
	ttBest := moves[0]

	scored := SortMoves(&pos, moves, ttBest, MaxPhase)
	if scored[0].Move != ttBest {
		t.Errorf("tt-best move did not sort first: got %+v, want %+v", scored[0].Move, ttBest)
	}
	if scored[0].Key != ttBestKey {
		t.Errorf("tt-best key = %d, want %d", scored[0].Key, ttBestKey)
	}
}

func TestOrderKeyCaptureAboveQuiet(t *testing.T) {
	pos := board.NewPosition()
	for _, uci := range []string{"e2e4", "d7d5"} {
		m, err := board.ParseUCI(&pos, uci)
		if err != nil {
			t.Fatalf("ParseUCI(%q): %v", uci, err)
		}
		pos = pos.Apply(m)
	}

	moves := pos.GenerateMoves()
	scored := SortMoves(&pos, moves, board.NullMove, MaxPhase)

	capture, err := board.ParseUCI(&pos, "e4d5")
	if err != nil {
		t.Fatalf("ParseUCI(e4d5): %v", err)
	}
	if scored[0].Move != capture {
		t.Errorf("expected the only capture (e4d5) to sort first, got %+v", scored[0].Move)
	}
	if scored[0].Key <= quietKey {
		t.Errorf("capture key %d should be greater than quiet key %d", scored[0].Key, quietKey)
	}
}
