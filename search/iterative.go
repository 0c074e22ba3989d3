package search

import "github.com/corvid-labs/havoc/board"

const aspirationDelta int32 = 25

const (
	negInf int32 = -1 << 30
	posInf int32 = 1 << 30
)

// Engine owns the transposition table across requests; the table is
// intentionally retained between them so later searches benefit from
// earlier ones.
type Engine struct {
	tt *TT
}

// NewEngine allocates an engine with a transposition table of hashSize
// entries (rounded up to a power of two).
func NewEngine(hashSize int) *Engine {
	return &Engine{tt: NewTT(hashSize)}
}

// Warnf is called when the driver falls back to a non-search move choice;
// callers that want these surfaced (e.g. on the worker's error channel)
// should set it before calling EvaluateAndMove. nil means warnings are
// dropped.
var Warnf func(format string, args ...interface{})

func warn(format string, args ...interface{}) {
	if Warnf != nil {
		Warnf(format, args...)
	}
}

// EvaluateAndMove runs iterative deepening with aspiration windows from
// depth 1 to maxDepth and returns the best move found at the final depth
// together with its score, both from the side-to-move's perspective.
func (e *Engine) EvaluateAndMove(pos *board.Position, maxDepth int, history GameHistory) (board.Move, int32) {
	path := make(SearchPath, 0, maxDepth+32)

	alpha, beta := negInf, posInf
	delta := aspirationDelta

	var move board.Move
	var score int32

	for d := 1; d <= maxDepth; d++ {
		for {
			path = path[:0]
			move, score = Search(pos, d, alpha, beta, history, &path, e.tt)

			if score <= alpha {
				alpha = negInf
				continue
			}
			if score >= beta {
				beta = posInf
				continue
			}
			alpha = score - delta
			beta = score + delta
			break
		}
	}

	if move.IsNull() {
		legal := pos.GenerateMoves()
		if len(legal) > 0 {
			warn("no move returned by search at root, playing first legal move")
			return legal[0], score
		}
		warn("no legal move at root")
		return board.NullMove, score
	}
	return move, score
}

// EvaluateBoard runs a single full-window search at the given depth and
// returns only the score, for the `eval` command.
func (e *Engine) EvaluateBoard(pos *board.Position, depth int, history GameHistory) int32 {
	path := make(SearchPath, 0, depth+32)
	_, score := Search(pos, depth, negInf, posInf, history, &path, e.tt)
	return score
}

// GenerateMove runs a single full-window search at the given depth and
// returns only the move, for the `move` command.
func (e *Engine) GenerateMove(pos *board.Position, depth int, history GameHistory) board.Move {
	path := make(SearchPath, 0, depth+32)
	move, _ := Search(pos, depth, negInf, posInf, history, &path, e.tt)
	if move.IsNull() {
		legal := pos.GenerateMoves()
		if len(legal) > 0 {
			warn("no move returned by search at root, playing first legal move")
			return legal[0]
		}
		warn("no legal move at root")
	}
	return move
}

// Clear drops everything the transposition table has learned.
func (e *Engine) Clear() { e.tt.Clear() }
