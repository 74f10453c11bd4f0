package engine

import (
	stderrors "errors"

	"github.com/phaul/chessdb/internal/chess"
	"github.com/phaul/chessdb/internal/errors"
)

// Replay folds a descriptor stream into the game's ply history: the returned
// slice starts with the given position and holds one further position per
// applied move, which is the sequence navigation and board display work from.
//
// On failure the error carries the 1-based ply number, and the positions
// reached before the failing ply are returned alongside it.
func Replay(start Position, moves []chess.Move) ([]Position, error) {
	history := make([]Position, 0, len(moves)+1)
	history = append(history, start)

	current := start
	for i, m := range moves {
		next, err := current.Make(m)
		if err != nil {
			var moveErr *errors.MoveError
			if stderrors.As(err, &moveErr) {
				moveErr.Ply = i + 1
				return history, moveErr
			}
			return history, errors.Wrapf(err, "ply %d", i+1)
		}
		history = append(history, next)
		current = next
	}

	return history, nil
}
