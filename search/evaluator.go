package search

import "github.com/corvid-labs/havoc/board"

// Evaluate returns a tapered material + piece-square score for pos from
// the side-to-move's perspective: positive means side-to-move is ahead.
func Evaluate(pos *board.Position) int32 {
	var mg, eg int32
	ph := phase(pos)

	for f := board.Pawn; f <= board.King; f++ {
		white := pos.ByPiece(board.White, f)
		for white != 0 {
			sq := white.Pop()
			mg += MGPieceValues[f] + MGPST[f][sq]
			eg += EGPieceValues[f] + EGPST[f][sq]
		}
		black := pos.ByPiece(board.Black, f)
		for black != 0 {
			sq := black.Pop()
			fsq := sq.FlipRank()
			mg -= MGPieceValues[f] + MGPST[f][fsq]
			eg -= EGPieceValues[f] + EGPST[f][fsq]
		}
	}

	raw := (mg*ph + eg*(MaxPhase-ph)) / MaxPhase
	if pos.SideToMove() == board.White {
		return raw
	}
	return -raw
}
