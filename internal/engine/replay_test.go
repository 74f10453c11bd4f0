package engine

import (
	stderrors "errors"
	"testing"

	"github.com/phaul/chessdb/internal/chess"
	"github.com/phaul/chessdb/internal/errors"
)

func TestReplay(t *testing.T) {
	moves := []chess.Move{
		{Kind: chess.Pawn, To: sq('e', '4')},
		{Kind: chess.Pawn, To: sq('e', '5')},
		{Kind: chess.Knight, To: sq('f', '3')},
		{Kind: chess.Knight, To: sq('c', '6')},
	}

	history, err := Replay(InitialPosition(), moves)
	if err != nil {
		t.Fatalf("Replay() error = %v", err)
	}

	if len(history) != len(moves)+1 {
		t.Fatalf("len(history) = %d; want %d", len(history), len(moves)+1)
	}
	if history[0] != InitialPosition() {
		t.Error("history does not start with the starting position")
	}
	if got := history[4].FEN(); got != "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R" {
		t.Errorf("final FEN = %q", got)
	}
	if history[4].Active != chess.White {
		t.Errorf("Active after 4 plies = %v; want White", history[4].Active)
	}
}

func TestReplayError(t *testing.T) {
	moves := []chess.Move{
		{Kind: chess.Pawn, To: sq('e', '4')},
		{Kind: chess.Queen, To: sq('h', '4')}, // black queen cannot reach h4 yet
	}

	history, err := Replay(InitialPosition(), moves)
	if err == nil {
		t.Fatal("expected replay to fail")
	}
	if !stderrors.Is(err, errors.ErrNoSource) {
		t.Errorf("error %v is not ErrNoSource", err)
	}

	var moveErr *errors.MoveError
	if !stderrors.As(err, &moveErr) {
		t.Fatalf("error %v is not a MoveError", err)
	}
	if moveErr.Ply != 2 {
		t.Errorf("Ply = %d; want 2", moveErr.Ply)
	}

	// The plies reached before the failure are still returned.
	if len(history) != 2 {
		t.Errorf("len(history) = %d; want 2", len(history))
	}
}

func TestReplayEmpty(t *testing.T) {
	history, err := Replay(InitialPosition(), nil)
	if err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if len(history) != 1 {
		t.Errorf("len(history) = %d; want 1", len(history))
	}
}
