// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

// Apply returns the position reached by playing m from pos. pos itself is
// left unmodified: the rules library's apply is non-destructive, so board
// clones are produced per move expansion rather than undone.
func (pos Position) Apply(m Move) Position {
	next := pos // value copy

	us := pos.sideToMove
	them := us.Opposite()
	mover := pos.Get(m.From)

	next.epSquare = NoSquare

	// Captures, including en passant.
	if cap := pos.Get(m.To); cap != NoPiece {
		next.remove(m.To, cap)
	} else if mover.Figure() == Pawn && m.To == pos.epSquare {
		capSq := RankFile(m.From.Rank(), m.To.File())
		if capPi := pos.Get(capSq); capPi != NoPiece {
			next.remove(capSq, capPi)
		}
	}

	next.remove(m.From, mover)
	if m.Promotion != NoFigure {
		next.put(m.To, ColorFigure(us, m.Promotion))
	} else {
		next.put(m.To, mover)
	}

	// Castling: move the rook too.
	if mover.Figure() == King {
		switch {
		case m.From == SquareE1 && m.To == SquareG1:
			next.remove(SquareH1, ColorFigure(White, Rook))
			next.put(SquareF1, ColorFigure(White, Rook))
		case m.From == SquareE1 && m.To == SquareC1:
			next.remove(SquareA1, ColorFigure(White, Rook))
			next.put(SquareD1, ColorFigure(White, Rook))
		case m.From == SquareE8 && m.To == SquareG8:
			next.remove(SquareH8, ColorFigure(Black, Rook))
			next.put(SquareF8, ColorFigure(Black, Rook))
		case m.From == SquareE8 && m.To == SquareC8:
			next.remove(SquareA8, ColorFigure(Black, Rook))
			next.put(SquareD8, ColorFigure(Black, Rook))
		}
	}

	// New en-passant target on a double pawn push.
	if mover.Figure() == Pawn {
		dr := m.To.Rank() - m.From.Rank()
		if dr == 2 || dr == -2 {
			next.epSquare = RankFile((m.From.Rank()+m.To.Rank())/2, m.From.File())
		}
	}

	next.castle = pos.castle &^ castleRightsLost(m.From, m.To)
	next.sideToMove = them
	next.hash = next.computeHash()
	return next
}

// castleRightsLost returns the castling rights revoked by a move touching
// the given from/to squares: moving a king or rook off its home square, or
// capturing a rook on its home square.
func castleRightsLost(from, to Square) Castle {
	var lost Castle
	touch := func(sq Square) {
		switch sq {
		case SquareE1:
			lost |= WhiteOO | WhiteOOO
		case SquareA1:
			lost |= WhiteOOO
		case SquareH1:
			lost |= WhiteOO
		case SquareE8:
			lost |= BlackOO | BlackOOO
		case SquareA8:
			lost |= BlackOOO
		case SquareH8:
			lost |= BlackOO
		}
	}
	touch(from)
	touch(to)
	return lost
}
