package search

import "github.com/corvid-labs/havoc/board"

// deltaMargin bounds the maximum material swing of a single capture that
// also promotes (queen gain minus pawn loss, rounded up).
const deltaMargin int32 = 1100

// Quiescence resolves capture sequences beyond the main search horizon.
// It is fail-hard (returns exactly α or β at a cutoff) and does not touch
// the transposition table or the repetition detector.
func Quiescence(pos *board.Position, alpha, beta int32) int32 {
	standPat := Evaluate(pos)
	if standPat >= beta {
		return beta
	}

	if !hasPawnOnPrePromotionRank(pos) && standPat+deltaMargin < alpha {
		return alpha
	}

	if standPat > alpha {
		alpha = standPat
	}

	ph := phase(pos)
	captures := capturesOnly(pos)
	scored := SortMoves(pos, captures, board.NullMove, ph)

	for _, sm := range scored {
		child := pos.Apply(sm.Move)
		score := -Quiescence(&child, -beta, -alpha)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// hasPawnOnPrePromotionRank reports whether the side to move has a pawn
// on its 7th-relative rank (rank index 6 for White, 1 for Black), i.e. a
// promotion is one push away and the delta-pruning margin could be wrong.
func hasPawnOnPrePromotionRank(pos *board.Position) bool {
	rank := 6
	if pos.SideToMove() == board.Black {
		rank = 1
	}
	pawns := pos.ByPiece(pos.SideToMove(), board.Pawn)
	return pawns&board.RankBb(rank) != 0
}

// capturesOnly filters legal moves down to ordinary captures and
// en-passant captures, the only moves quiescence considers.
func capturesOnly(pos *board.Position) []board.Move {
	all := pos.GenerateMoves()
	out := make([]board.Move, 0, len(all))
	for _, m := range all {
		if pos.Get(m.To) != board.NoPiece || isEnPassant(pos, m) {
			out = append(out, m)
		}
	}
	return out
}
