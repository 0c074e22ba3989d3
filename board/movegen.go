// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

// GenerateMoves returns every legal move for the side to move: pseudo-legal
// moves are generated first, then filtered by applying each one and
// rejecting it if the mover's own king ends up attacked.
func (pos *Position) GenerateMoves() []Move {
	pseudo := pos.pseudoMoves()
	us := pos.sideToMove
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		child := pos.Apply(m)
		kingBB := child.ByPiece(us, King)
		if kingBB != 0 && child.attackersTo(kingBB.AsSquare(), us.Opposite()) != 0 {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

func (pos *Position) pseudoMoves() []Move {
	us := pos.sideToMove
	var moves []Move
	moves = pos.genPawnMoves(us, moves)
	moves = pos.genJumpMoves(us, Knight, KnightAttack, moves)
	moves = pos.genSlidingMoves(us, Bishop, BishopAttack, moves)
	moves = pos.genSlidingMoves(us, Rook, RookAttack, moves)
	moves = pos.genSlidingMoves(us, Queen, QueenAttack, moves)
	moves = pos.genJumpMoves(us, King, func(sq Square) Bitboard { return KingAttack(sq) }, moves)
	moves = pos.genCastleMoves(us, moves)
	return moves
}

func (pos *Position) genJumpMoves(us Color, fig Figure, attack func(Square) Bitboard, moves []Move) []Move {
	own := pos.ByColor(us)
	from := pos.ByPiece(us, fig)
	for from != 0 {
		sq := from.Pop()
		targets := attack(sq) &^ own
		for targets != 0 {
			to := targets.Pop()
			moves = append(moves, Move{From: sq, To: to, Promotion: NoFigure})
		}
	}
	return moves
}

func (pos *Position) genSlidingMoves(us Color, fig Figure, attack func(Square, Bitboard) Bitboard, moves []Move) []Move {
	own := pos.ByColor(us)
	occ := pos.Occupancy()
	from := pos.ByPiece(us, fig)
	for from != 0 {
		sq := from.Pop()
		targets := attack(sq, occ) &^ own
		for targets != 0 {
			to := targets.Pop()
			moves = append(moves, Move{From: sq, To: to, Promotion: NoFigure})
		}
	}
	return moves
}

func (pos *Position) genCastleMoves(us Color, moves []Move) []Move {
	them := us.Opposite()
	occ := pos.Occupancy()

	tryCastle := func(right Castle, kingFrom, kingTo, rookFrom Square, betweenKing, betweenAll Bitboard) []Move {
		if pos.castle&right == 0 {
			return moves
		}
		if occ&betweenAll != 0 {
			return moves
		}
		if pos.IsAttacked(kingFrom, them) {
			return moves
		}
		// King must not pass through or land on an attacked square.
		passSq := betweenKing
		for passSq != 0 {
			sq := passSq.Pop()
			if pos.IsAttacked(sq, them) {
				return moves
			}
		}
		if pos.IsAttacked(kingTo, them) {
			return moves
		}
		_ = rookFrom
		moves = append(moves, Move{From: kingFrom, To: kingTo, Promotion: NoFigure})
		return moves
	}

	if us == White {
		moves = tryCastle(WhiteOO, SquareE1, SquareG1, SquareH1,
			SquareF1.Bitboard()|SquareG1.Bitboard(), SquareF1.Bitboard()|SquareG1.Bitboard())
		moves = tryCastle(WhiteOOO, SquareE1, SquareC1, SquareA1,
			SquareD1.Bitboard()|SquareC1.Bitboard(), SquareD1.Bitboard()|SquareC1.Bitboard()|SquareB1.Bitboard())
	} else {
		moves = tryCastle(BlackOO, SquareE8, SquareG8, SquareH8,
			SquareF8.Bitboard()|SquareG8.Bitboard(), SquareF8.Bitboard()|SquareG8.Bitboard())
		moves = tryCastle(BlackOOO, SquareE8, SquareC8, SquareA8,
			SquareD8.Bitboard()|SquareC8.Bitboard(), SquareD8.Bitboard()|SquareC8.Bitboard()|SquareB8.Bitboard())
	}
	return moves
}

func (pos *Position) genPawnMoves(us Color, moves []Move) []Move {
	occ := pos.Occupancy()
	them := us.Opposite()
	theirs := pos.ByColor(them)
	pawns := pos.ByPiece(us, Pawn)

	forward, startRank, promoRank := 1, 1, 7
	if us == Black {
		forward, startRank, promoRank = -1, 6, 0
	}

	addPawnMove := func(from, to Square) {
		if to.Rank() == promoRank {
			for _, promo := range []Figure{Queen, Rook, Bishop, Knight} {
				moves = append(moves, Move{From: from, To: to, Promotion: promo})
			}
		} else {
			moves = append(moves, Move{From: from, To: to, Promotion: NoFigure})
		}
	}

	bb := pawns
	for bb != 0 {
		from := bb.Pop()
		r, f := from.Rank(), from.File()

		// Single push.
		r1 := r + forward
		if r1 >= 0 && r1 < 8 {
			to := RankFile(r1, f)
			if !occ.Has(to) {
				addPawnMove(from, to)
				// Double push.
				if r == startRank {
					r2 := r + 2*forward
					to2 := RankFile(r2, f)
					if !occ.Has(to2) {
						moves = append(moves, Move{From: from, To: to2, Promotion: NoFigure})
					}
				}
			}
			// Captures.
			for _, df := range []int{-1, 1} {
				f1 := f + df
				if f1 < 0 || f1 >= 8 {
					continue
				}
				to := RankFile(r1, f1)
				if theirs.Has(to) {
					addPawnMove(from, to)
				} else if pos.epSquare != NoSquare && to == pos.epSquare {
					moves = append(moves, Move{From: from, To: to, Promotion: NoFigure})
				}
			}
		}
	}
	return moves
}
