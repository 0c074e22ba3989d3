package search

import (
	"testing"

	"github.com/corvid-labs/havoc/board"
)

func TestStartPositionIsBalanced(t *testing.T) {
	pos := board.NewPosition()
	if got := Evaluate(&pos); got != 0 {
		t.Errorf("Evaluate(startpos) = %d, want 0", got)
	}
}

func TestPhaseBounds(t *testing.T) {
	pos := board.NewPosition()
	if got := phase(&pos); got != MaxPhase {
		t.Errorf("phase(startpos) = %d, want %d", got, MaxPhase)
	}

	empty := board.Position{}
	if got := phase(&empty); got != 0 {
		t.Errorf("phase(empty) = %d, want 0", got)
	}
}

func TestEvaluateSignMatchesSideToMove(t *testing.T) {
	pos := board.NewPosition()
	m, err := board.ParseUCI(&pos, "e2e4")
	if err != nil {
		t.Fatalf("ParseUCI: %v", err)
	}
	after := pos.Apply(m)

	// The position is symmetric material-wise but one tempo ahead for
	// White; from Black's perspective (side to move) that should not be
	// a positive score.
	scoreForBlack := Evaluate(&after)
	if scoreForBlack > 0 {
		t.Errorf("Evaluate favored the side not to move: got %d", scoreForBlack)
	}
}
