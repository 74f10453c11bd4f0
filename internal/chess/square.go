package chess

import (
	"fmt"

	"github.com/phaul/chessdb/internal/errors"
)

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// File represents a chess file (column) - 'a' to 'h'.
type File byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstRank Rank = '1'
	LastRank  Rank = '8'
	FirstFile File = 'a'
	LastFile  File = 'h'
)

// ValidFile reports whether f is one of 'a'-'h'.
func ValidFile(f File) bool {
	return f >= FirstFile && f <= LastFile
}

// ValidRank reports whether r is one of '1'-'8'.
func ValidRank(r Rank) bool {
	return r >= FirstRank && r <= LastRank
}

// Square addresses one of the 64 board squares. Squares are numbered 0-63,
// a1=0, b1=1, ..., h8=63, matching the external integer encoding.
type Square int

// SquareAt builds a square from file and rank coordinates. The coordinates
// must be valid; use SquareFromIndex for untrusted input.
func SquareAt(f File, r Rank) Square {
	return Square(int(r-FirstRank)*BoardSize + int(f-FirstFile))
}

// SquareFromIndex converts an external 0-63 integer to a Square, rejecting
// out of range values.
func SquareFromIndex(i int) (Square, error) {
	if i < 0 || i > 63 {
		return 0, fmt.Errorf("index %d: %w", i, errors.ErrBadSquare)
	}
	return Square(i), nil
}

// File returns the file of the square.
func (s Square) File() File {
	return File(int(FirstFile) + int(s)%BoardSize)
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	return Rank(int(FirstRank) + int(s)/BoardSize)
}

// Index returns the 0-63 integer encoding of the square.
func (s Square) Index() int {
	return int(s)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(s.File()), byte(s.Rank())})
}

// Offset returns the square displaced by the given file and rank deltas and
// whether it is still on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f := File(int(s.File()) + df)
	r := Rank(int(s.Rank()) + dr)
	if !ValidFile(f) || !ValidRank(r) {
		return 0, false
	}
	return SquareAt(f, r), true
}
