package board

import "testing"

func TestStartPositionMoveCount(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateMoves()
	if len(moves) != 20 {
		t.Errorf("got %d legal moves from the starting position, want 20", len(moves))
	}
}

func TestApplyIsNonMutating(t *testing.T) {
	pos := NewPosition()
	before := pos.Hash()

	m, err := ParseUCI(&pos, "e2e4")
	if err != nil {
		t.Fatalf("ParseUCI: %v", err)
	}
	_ = pos.Apply(m)

	if pos.Hash() != before {
		t.Errorf("Apply mutated the receiver: hash changed from %d to %d", before, pos.Hash())
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos := NewPosition()
	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m, err := ParseUCI(&pos, uci)
		if err != nil {
			t.Fatalf("ParseUCI(%q): %v", uci, err)
		}
		pos = pos.Apply(m)
	}

	if pos.EnpassantSquare() == NoSquare {
		t.Fatalf("expected an en-passant target square after a double push")
	}

	m, err := ParseUCI(&pos, "e5d6")
	if err != nil {
		t.Fatalf("en-passant capture should be legal: %v", err)
	}
	next := pos.Apply(m)
	if next.Get(RankFile(4, 3)) != NoPiece {
		t.Errorf("captured pawn still on d5 after en-passant")
	}
}

func TestCastlingRightsLostOnKingMove(t *testing.T) {
	pos := NewPosition()
	for _, uci := range []string{"e2e4", "e7e5", "e1e2"} {
		m, err := ParseUCI(&pos, uci)
		if err != nil {
			t.Fatalf("ParseUCI(%q): %v", uci, err)
		}
		pos = pos.Apply(m)
	}
	if pos.CastlingAbility()&(WhiteOO|WhiteOOO) != 0 {
		t.Errorf("white castling rights survived a king move")
	}
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	pos := NewPosition()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := ParseUCI(&pos, uci)
		if err != nil {
			t.Fatalf("ParseUCI(%q): %v", uci, err)
		}
		pos = pos.Apply(m)
	}
	if pos.Checkers() == 0 {
		t.Fatalf("expected white king in check after fool's mate")
	}
	if len(pos.GenerateMoves()) != 0 {
		t.Errorf("expected no legal moves at checkmate, got %d", len(pos.GenerateMoves()))
	}
}
