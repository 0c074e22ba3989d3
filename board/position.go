// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

// Castle is a bitmask of remaining castling rights.
type Castle uint8

const (
	WhiteOO Castle = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO

	NoCastle  Castle = 0
	AnyCastle        = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// Position is a value type: every mutator returns a new Position rather
// than mutating the receiver, so a position can be shared freely across
// a search tree without defensive copying at call sites.
type Position struct {
	byFigure [FigureArraySize]Bitboard
	byColor  [2]Bitboard // index 0 = White, 1 = Black

	sideToMove Color
	castle     Castle
	epSquare   Square // NoSquare when there is no en-passant target
	hash       uint64
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	var pos Position
	pos.sideToMove = White
	pos.castle = AnyCastle
	pos.epSquare = NoSquare

	back := [8]Figure{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		pos.put(RankFile(0, f), ColorFigure(White, back[f]))
		pos.put(RankFile(1, f), ColorFigure(White, Pawn))
		pos.put(RankFile(6, f), ColorFigure(Black, Pawn))
		pos.put(RankFile(7, f), ColorFigure(Black, back[f]))
	}
	pos.hash = pos.computeHash()
	return pos
}

func (pos *Position) colorIndex(c Color) int { return int(c) - 1 }

// put places pi on sq. sq must be empty. Used only during construction
// and inside Apply's working copy.
func (pos *Position) put(sq Square, pi Piece) {
	bb := sq.Bitboard()
	pos.byFigure[pi.Figure()] |= bb
	pos.byColor[pos.colorIndex(pi.Color())] |= bb
}

// remove clears sq, which must hold pi.
func (pos *Position) remove(sq Square, pi Piece) {
	bb := ^sq.Bitboard()
	pos.byFigure[pi.Figure()] &= bb
	pos.byColor[pos.colorIndex(pi.Color())] &= bb
}

// Get returns the piece at sq, or NoPiece.
func (pos *Position) Get(sq Square) Piece {
	bb := sq.Bitboard()
	var c Color
	if pos.byColor[0]&bb != 0 {
		c = White
	} else if pos.byColor[1]&bb != 0 {
		c = Black
	} else {
		return NoPiece
	}
	for f := Pawn; f <= King; f++ {
		if pos.byFigure[f]&bb != 0 {
			return ColorFigure(c, f)
		}
	}
	return NoPiece
}

// ByColor returns the occupancy bitboard of c.
func (pos *Position) ByColor(c Color) Bitboard { return pos.byColor[pos.colorIndex(c)] }

// ByPiece returns the occupancy bitboard of pieces of color c and figure f.
func (pos *Position) ByPiece(c Color, f Figure) Bitboard {
	return pos.byColor[pos.colorIndex(c)] & pos.byFigure[f]
}

// Occupancy returns the bitboard of all occupied squares.
func (pos *Position) Occupancy() Bitboard { return pos.byColor[0] | pos.byColor[1] }

// SideToMove returns the side on move.
func (pos *Position) SideToMove() Color { return pos.sideToMove }

// CastlingAbility returns the remaining castling rights.
func (pos *Position) CastlingAbility() Castle { return pos.castle }

// EnpassantSquare returns the en-passant target square, or NoSquare.
func (pos *Position) EnpassantSquare() Square { return pos.epSquare }

// Hash returns the Zobrist hash of the position. Equal hashes imply
// (with negligible collision probability) equal positions, including
// castling rights, en-passant target, and side to move.
func (pos *Position) Hash() uint64 { return pos.hash }

func (pos *Position) computeHash() uint64 {
	var h uint64
	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		if pi := pos.Get(sq); pi != NoPiece {
			h ^= zobristPiece[pi][sq]
		}
	}
	if pos.epSquare != NoSquare {
		h ^= zobristEnpassant[pos.epSquare]
	}
	h ^= zobristCastle[pos.castle]
	h ^= zobristColor[pos.sideToMove]
	return h
}

// Checkers returns the bitboard of enemy pieces giving check to the
// side-to-move's king. Empty iff side-to-move is not in check.
func (pos *Position) Checkers() Bitboard {
	us := pos.sideToMove
	them := us.Opposite()
	kingBB := pos.ByPiece(us, King)
	if kingBB == 0 {
		return BbEmpty
	}
	return pos.attackersTo(kingBB.AsSquare(), them)
}

// attackersTo returns the bitboard of pieces of color `by` attacking sq.
func (pos *Position) attackersTo(sq Square, by Color) Bitboard {
	occ := pos.Occupancy()
	var attackers Bitboard

	attackers |= KnightAttack(sq) & pos.ByPiece(by, Knight)
	attackers |= KingAttack(sq) & pos.ByPiece(by, King)
	attackers |= BishopAttack(sq, occ) & (pos.ByPiece(by, Bishop) | pos.ByPiece(by, Queen))
	attackers |= RookAttack(sq, occ) & (pos.ByPiece(by, Rook) | pos.ByPiece(by, Queen))

	// Pawn attacks: a pawn of `by` attacks sq if sq is in that pawn's
	// attack set, i.e. sq is a "pawnAttack" step away relative to by's
	// forward direction. Equivalently, check the squares a by-pawn
	// standing on sq would attack from the opposite ray.
	if by == White {
		attackers |= whitePawnAttackSources(sq) & pos.ByPiece(White, Pawn)
	} else {
		attackers |= blackPawnAttackSources(sq) & pos.ByPiece(Black, Pawn)
	}
	return attackers
}

func whitePawnAttackSources(sq Square) Bitboard {
	r, f := sq.Rank(), sq.File()
	var bb Bitboard
	if r-1 >= 0 {
		if f-1 >= 0 {
			bb |= RankFile(r-1, f-1).Bitboard()
		}
		if f+1 < 8 {
			bb |= RankFile(r-1, f+1).Bitboard()
		}
	}
	return bb
}

func blackPawnAttackSources(sq Square) Bitboard {
	r, f := sq.Rank(), sq.File()
	var bb Bitboard
	if r+1 < 8 {
		if f-1 >= 0 {
			bb |= RankFile(r+1, f-1).Bitboard()
		}
		if f+1 < 8 {
			bb |= RankFile(r+1, f+1).Bitboard()
		}
	}
	return bb
}

// IsAttacked reports whether sq is attacked by color `by`.
func (pos *Position) IsAttacked(sq Square, by Color) bool {
	return pos.attackersTo(sq, by) != 0
}
