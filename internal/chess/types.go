// Package chess provides the core chess types: colours, piece kinds, squares,
// moves, and an immutable board.
package chess

import (
	"fmt"

	"github.com/phaul/chessdb/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Encode returns the wire encoding of a colour (0 for White, 1 for Black).
func (c Colour) Encode() int {
	return int(c)
}

// DecodeColour converts the external 0/1 colour encoding to a Colour.
func DecodeColour(v int) (Colour, error) {
	switch v {
	case 0:
		return White, nil
	case 1:
		return Black, nil
	default:
		return White, fmt.Errorf("colour %d: %w", v, errors.ErrBadColour)
	}
}

// Kind represents a chess piece kind. The zero value means "no kind" so that
// optional kinds (promotions, empty squares) need no separate flag.
type Kind int

const (
	Pawn Kind = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter SAN representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an upper- or lowercase SAN letter to a kind.
// It returns the zero Kind for unrecognized letters.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return 0
	}
}

// Piece is a coloured piece.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// Letter returns the FEN letter of a piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a human readable representation, e.g. "White Knight".
func (p Piece) String() string {
	return fmt.Sprintf("%v %v", p.Colour, p.Kind)
}

// W creates a white piece.
func W(k Kind) Piece {
	return Piece{Colour: White, Kind: k}
}

// B creates a black piece.
func B(k Kind) Piece {
	return Piece{Colour: Black, Kind: k}
}

// ColourOffset returns the pawn push direction: +1 rank for White, -1 for
// Black.
func ColourOffset(c Colour) int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank pawns of the given colour start from.
func HomeRank(c Colour) Rank {
	if c == White {
		return '2'
	}
	return '7'
}
