package chess

import (
	stderrors "errors"
	"testing"

	"github.com/phaul/chessdb/internal/errors"
)

func TestSquareEncoding(t *testing.T) {
	tests := []struct {
		file  File
		rank  Rank
		index int
		name  string
	}{
		{'a', '1', 0, "a1"},
		{'h', '1', 7, "h1"},
		{'a', '2', 8, "a2"},
		{'e', '4', 28, "e4"},
		{'h', '8', 63, "h8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := SquareAt(tt.file, tt.rank)
			if sq.Index() != tt.index {
				t.Errorf("Index() = %d; want %d", sq.Index(), tt.index)
			}
			if sq.File() != tt.file || sq.Rank() != tt.rank {
				t.Errorf("File(), Rank() = %c, %c; want %c, %c", sq.File(), sq.Rank(), tt.file, tt.rank)
			}
			if sq.String() != tt.name {
				t.Errorf("String() = %q; want %q", sq.String(), tt.name)
			}
		})
	}
}

func TestSquareFromIndex(t *testing.T) {
	for _, i := range []int{0, 27, 63} {
		sq, err := SquareFromIndex(i)
		if err != nil {
			t.Errorf("SquareFromIndex(%d) error = %v", i, err)
		}
		if sq.Index() != i {
			t.Errorf("SquareFromIndex(%d).Index() = %d", i, sq.Index())
		}
	}

	for _, i := range []int{-1, 64, 1000} {
		_, err := SquareFromIndex(i)
		if err == nil {
			t.Errorf("SquareFromIndex(%d) expected error", i)
		} else if !stderrors.Is(err, errors.ErrBadSquare) {
			t.Errorf("SquareFromIndex(%d) error %v is not ErrBadSquare", i, err)
		}
	}
}

func TestSquareOffset(t *testing.T) {
	e4 := SquareAt('e', '4')

	if got, ok := e4.Offset(1, 2); !ok || got != SquareAt('f', '6') {
		t.Errorf("e4.Offset(1, 2) = %v, %v; want f6, true", got, ok)
	}
	if got, ok := e4.Offset(-2, -1); !ok || got != SquareAt('c', '3') {
		t.Errorf("e4.Offset(-2, -1) = %v, %v; want c3, true", got, ok)
	}

	edges := []struct {
		sq     Square
		df, dr int
	}{
		{SquareAt('a', '1'), -1, 0},
		{SquareAt('a', '1'), 0, -1},
		{SquareAt('h', '8'), 1, 0},
		{SquareAt('h', '8'), 0, 1},
	}
	for _, e := range edges {
		if _, ok := e.sq.Offset(e.df, e.dr); ok {
			t.Errorf("%v.Offset(%d, %d) should fall off the board", e.sq, e.df, e.dr)
		}
	}
}

func TestDecodeColour(t *testing.T) {
	if c, err := DecodeColour(0); err != nil || c != White {
		t.Errorf("DecodeColour(0) = %v, %v; want White, nil", c, err)
	}
	if c, err := DecodeColour(1); err != nil || c != Black {
		t.Errorf("DecodeColour(1) = %v, %v; want Black, nil", c, err)
	}
	if _, err := DecodeColour(2); !stderrors.Is(err, errors.ErrBadColour) {
		t.Errorf("DecodeColour(2) error = %v; want ErrBadColour", err)
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(Pawn), 'P'},
		{W(King), 'K'},
		{B(Pawn), 'p'},
		{B(Queen), 'q'},
		{B(Knight), 'n'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}
