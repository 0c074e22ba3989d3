package search

import "github.com/corvid-labs/havoc/board"

// mateScore is the (un-normalized) base of the score assigned to a
// checkmate found with `depth` plies of search still remaining: the mated
// side scores -(mateScore + depth), so a mate nearer the root scores
// further from zero and a deeper mate is slightly less bad for the mated
// side, which makes the search prefer the fastest mate.
// The score is not adjusted on TT store/probe; see the repo notes on
// mate-distance handling across transpositions reached at different
// remaining depth.
const mateScore int32 = 9999999

// Search runs negamax with α-β pruning, transposition-table-assisted
// pruning, ordered move iteration, and — at the horizon — quiescence.
// The returned score is from the side-to-move's perspective; best is the
// null move at horizon, repetition, and terminal (mate/stalemate) nodes.
func Search(pos *board.Position, depth int, alpha, beta int32, history GameHistory, path *SearchPath, tt *TT) (board.Move, int32) {
	key := pos.Hash()

	if len(*path) > 0 && IsRepetition(history, *path, key) {
		return board.NullMove, 0
	}

	if entry, ok := tt.Probe(key, int8(depth)); ok {
		switch entry.Flag {
		case Exact:
			return entry.BestMove, entry.Score
		case Lower:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case Upper:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			return entry.BestMove, entry.Score
		}
	}

	var ttBest board.Move = board.NullMove
	if entry, ok := tt.Probe(key, 0); ok {
		ttBest = entry.BestMove
	}

	if depth <= 0 {
		return board.NullMove, Quiescence(pos, alpha, beta)
	}

	moves := pos.GenerateMoves()
	if len(moves) == 0 {
		if pos.Checkers() == 0 {
			return board.NullMove, 0
		}
		return board.NullMove, -(mateScore + int32(depth))
	}

	ph := phase(pos)
	scored := SortMoves(pos, moves, ttBest, ph)

	*path = append(*path, key)
	defer func() { *path = (*path)[:len(*path)-1] }()

	origAlpha := alpha
	bestScore := int32(-1 << 30)
	bestMove := board.NullMove
	cutoff := false

	for _, sm := range scored {
		child := pos.Apply(sm.Move)
		_, childScore := Search(&child, depth-1, -beta, -alpha, history, path, tt)
		score := -childScore

		if score > bestScore {
			bestScore = score
			bestMove = sm.Move
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			cutoff = true
			break
		}
	}

	if cutoff {
		tt.Store(key, int8(depth), bestScore, Lower, bestMove)
	} else if bestScore > origAlpha {
		tt.Store(key, int8(depth), bestScore, Exact, bestMove)
	} else {
		tt.Store(key, int8(depth), bestScore, Upper, bestMove)
	}

	return bestMove, bestScore
}
