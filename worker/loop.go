package worker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/corvid-labs/havoc/board"
	"github.com/corvid-labs/havoc/search"
)

// Loop reads one request per line from r, drives engine, and writes one
// response line per request to w. A line that is exactly "quit" returns
// nil immediately, signalling the caller to exit the process with a
// success code. Malformed requests and illegal moves are returned as
// errors: per the error-handling design, the worker is expected to die
// and be restarted by its supervisor, not to recover in place.
func Loop(r io.Reader, w io.Writer, engine *search.Engine, log zerolog.Logger) error {
	search.Warnf = func(format string, args ...interface{}) {
		log.Warn().Msg(fmt.Sprintf(format, args...))
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}

		var req Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			return errors.Wrapf(err, "parsing request %q", line)
		}

		resp, err := handle(engine, req)
		if err != nil {
			return errors.Wrapf(err, "handling request %q", line)
		}
		if _, err := fmt.Fprintln(w, resp); err != nil {
			return errors.Wrap(err, "writing response")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading request stream")
	}
	return nil
}

// handle replays req.Moves from the standard starting position, builds
// the game history, and dispatches to the engine per req.Command.
func handle(engine *search.Engine, req Request) (string, error) {
	pos := board.NewPosition()
	history := make(search.GameHistory, 0, len(req.Moves))

	for _, uci := range req.Moves {
		m, err := board.ParseUCI(&pos, uci)
		if err != nil {
			return "", errors.Wrapf(err, "applying move %q", uci)
		}
		pos = pos.Apply(m)
		history = append(history, pos.Hash())
	}

	switch req.Command {
	case CommandEval:
		score := engine.EvaluateBoard(&pos, req.Depth, history)
		return fmt.Sprintf("Score: %d", score), nil

	case CommandMove:
		move := engine.GenerateMove(&pos, req.Depth, history)
		return fmt.Sprintf("Best move: %s", move.UCI()), nil

	case CommandEvalMove:
		move, score := engine.EvaluateAndMove(&pos, req.Depth, history)
		san := board.SAN(&pos, move)
		return fmt.Sprintf("%s %d", san, score), nil

	default:
		return "", errors.Errorf("unrecognized command %q", req.Command)
	}
}
