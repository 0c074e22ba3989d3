package search

import "github.com/corvid-labs/havoc/board"

// Piece values and phase weights, indexed by board.Figure (Pawn..King).
var (
	MGPieceValues = [6]int32{100, 300, 300, 500, 900, 0}
	EGPieceValues = [6]int32{128, 213, 276, 441, 825, 0}
	PhaseWeights  = [6]int32{0, 1, 1, 2, 4, 0}
)

// MaxPhase is the phase value of a position with full material.
const MaxPhase = 24

// MGPST and EGPST are piece-square tables, one 64-entry row per figure,
// indexed by a White-relative square (Black's pieces look up the
// rank-flipped square). Values below are the literal fixture numbers:
// MGPST is used unmirrored for every figure; EGPST reuses the same rows
// except for the king, whose endgame row centralizes instead of hugging
// the back rank.
var MGPST = [6][64]int32{
	// Pawn
	{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Knight
	{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	// Bishop
	{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	// Rook
	{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Queen
	{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	// King (middlegame: stay behind the pawn shield)
	{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

var EGPST = [6][64]int32{
	MGPST[0], MGPST[1], MGPST[2], MGPST[3], MGPST[4],
	// King (endgame: centralize)
	{
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}

// taperedPieceValue blends a piece's MG/EG value by phase, the same
// formula the evaluator uses for the overall score (§4.1 step 3 /
// §4.2's MVV/LVA key).
func taperedPieceValue(f board.Figure, phase int32) int32 {
	mg, eg := MGPieceValues[f], EGPieceValues[f]
	return (mg*phase + eg*(MaxPhase-phase)) / MaxPhase
}

// phase estimates how far pos is from the endgame: 0 = no material left
// among knights/bishops/rooks/queens, MaxPhase = full middlegame material.
func phase(pos *board.Position) int32 {
	var p int32
	for _, c := range [2]board.Color{board.White, board.Black} {
		for f := board.Knight; f <= board.Queen; f++ {
			n := pos.ByPiece(c, f).Popcnt()
			p += n * PhaseWeights[f]
		}
	}
	if p > MaxPhase {
		p = MaxPhase
	}
	return p
}
