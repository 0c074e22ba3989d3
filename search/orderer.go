package search

import "github.com/corvid-labs/havoc/board"

// Move ordering key tiers. Higher sorts first.
const (
	ttBestKey      int32 = 1000000
	enPassantKey   int32 = 900
	quietKey       int32 = 0
)

// OrderKey assigns a sort key to m in pos: ttBest (if set and matching m)
// sorts first, then MVV/LVA captures, then en-passant, then everything
// else. The magnitude is ordinal only, not portable across positions.
func OrderKey(pos *board.Position, m board.Move, ttBest board.Move, ph int32) int32 {
	if !ttBest.IsNull() && m.From == ttBest.From && m.To == ttBest.To && m.Promotion == ttBest.Promotion {
		return ttBestKey
	}

	victim := pos.Get(m.To)
	if victim != board.NoPiece {
		attacker := pos.Get(m.From)
		return taperedPieceValue(victim.Figure(), ph)*10 - taperedPieceValue(attacker.Figure(), ph)
	}

	if isEnPassant(pos, m) {
		return enPassantKey
	}

	return quietKey
}

// isEnPassant reports whether m is an en-passant capture: the mover is a
// pawn landing on the position's en-passant target square, with no piece
// actually sitting on that square.
func isEnPassant(pos *board.Position, m board.Move) bool {
	if pos.Get(m.To) != board.NoPiece {
		return false
	}
	mover := pos.Get(m.From)
	return mover.Figure() == board.Pawn && m.To == pos.EnpassantSquare() && pos.EnpassantSquare() != board.NoSquare
}

// SortMoves assigns an order key to every candidate move and sorts the
// result descending by key. Tie-break among equal keys is unspecified.
func SortMoves(pos *board.Position, moves []board.Move, ttBest board.Move, ph int32) []ScoredMove {
	scored := make([]ScoredMove, len(moves))
	for i, m := range moves {
		scored[i] = ScoredMove{Move: m, Key: OrderKey(pos, m, ttBest, ph)}
	}
	for i := 1; i < len(scored); i++ {
		for j := i; j > 0 && scored[j].Key > scored[j-1].Key; j-- {
			scored[j], scored[j-1] = scored[j-1], scored[j]
		}
	}
	return scored
}
