package chess

import (
	"fmt"
	"strings"

	"github.com/phaul/chessdb/internal/errors"
)

// InitialFEN is the placement field of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// FEN encodes the board as a FEN placement field: eight ranks from rank 8
// down to rank 1 separated by '/', runs of empty squares as decimal digits,
// pieces as letters with uppercase for White and lowercase for Black.
func (b Board) FEN() string {
	var sb strings.Builder

	for r := LastRank; r >= FirstRank; r-- {
		empty := 0
		for f := FirstFile; f <= LastFile; f++ {
			p, ok := b.Get(SquareAt(f, r))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > FirstRank {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// BoardFromFEN parses a FEN placement field. It fails when a rank does not
// add up to exactly 8 squares, when there are fewer or more than 8 ranks, or
// on an unrecognized character.
func BoardFromFEN(fen string) (Board, error) {
	b := Board{}

	ranks := strings.Split(fen, "/")
	if len(ranks) != BoardSize {
		return Board{}, fmt.Errorf("%d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, rankStr := range ranks {
		r := Rank(int(LastRank) - i)
		f := FirstFile

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			switch {
			case c >= '1' && c <= '8':
				f = File(int(f) + int(c-'0'))
			default:
				k := KindFromLetter(c)
				if k == 0 {
					return Board{}, fmt.Errorf("character %q: %w", c, errors.ErrInvalidFEN)
				}
				if !ValidFile(f) {
					return Board{}, fmt.Errorf("rank %c overfull: %w", r, errors.ErrInvalidFEN)
				}
				colour := White
				if c >= 'a' {
					colour = Black
				}
				b = b.Put(SquareAt(f, r), Piece{Colour: colour, Kind: k})
				f++
			}
		}

		if int(f)-int(FirstFile) != BoardSize {
			return Board{}, fmt.Errorf("rank %c has %d squares: %w", r, int(f)-int(FirstFile), errors.ErrInvalidFEN)
		}
	}

	return b, nil
}
