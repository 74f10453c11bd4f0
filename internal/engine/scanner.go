// Package engine implements source-square resolution and position
// transitions for the chessdb core.
package engine

import (
	"github.com/phaul/chessdb/internal/chess"
)

// Predicate decides whether a candidate source square is acceptable, given
// the board being searched. Callers typically combine the piece identity
// with the move's disambiguators.
type Predicate func(chess.Square, chess.Board) bool

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// Source locates the square a piece of the given kind moved from to reach
// the destination, walking the kind's movement geometry backwards from the
// destination. It returns the first candidate satisfying match, or false if
// none is found. The colour and capture arguments only matter for pawns,
// whose geometry depends on both.
//
// Source re-derives "which piece moved" from partial notation; it does not
// generate legal moves and performs no check or pin analysis.
func Source(b chess.Board, to chess.Square, kind chess.Kind, colour chess.Colour, capture bool, match Predicate) (chess.Square, bool) {
	switch kind {
	case chess.Pawn:
		return pawnSource(b, to, colour, capture, match)
	case chess.Knight:
		return leaperSource(b, to, knightOffsets, match)
	case chess.King:
		return leaperSource(b, to, kingOffsets, match)
	case chess.Bishop:
		return sliderSource(b, to, diagonalDirs, match)
	case chess.Rook:
		return sliderSource(b, to, straightDirs, match)
	case chess.Queen:
		return sliderSource(b, to, queenDirs, match)
	default:
		return 0, false
	}
}

// leaperSource checks each fixed leap offset around the destination.
// Leapers are not blocked by intervening pieces.
func leaperSource(b chess.Board, to chess.Square, offsets [8][2]int, match Predicate) (chess.Square, bool) {
	for _, o := range offsets {
		sq, ok := to.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if b.Occupied(sq) && match(sq, b) {
			return sq, true
		}
	}
	return 0, false
}

// sliderSource scans each ray outward from the destination. A ray ends at
// the first occupied square it meets, whether or not that square matches;
// sliding pieces cannot be seen through.
func sliderSource(b chess.Board, to chess.Square, dirs [][2]int, match Predicate) (chess.Square, bool) {
	for _, d := range dirs {
		sq, ok := to.Offset(d[0], d[1])
		for ok {
			if b.Occupied(sq) {
				if match(sq, b) {
					return sq, true
				}
				break
			}
			sq, ok = sq.Offset(d[0], d[1])
		}
	}
	return 0, false
}

// pawnSource resolves pawn moves, which depend on the mover's colour and on
// whether the move captures.
//
// Non-capture: the source is one square behind the destination; if that
// square is empty the source may instead be two squares behind, provided
// that square is the pawn's home rank (double push across an empty
// intermediate square). Capture: the source is one of the two diagonally
// behind squares.
func pawnSource(b chess.Board, to chess.Square, colour chess.Colour, capture bool, match Predicate) (chess.Square, bool) {
	dir := chess.ColourOffset(colour)

	if capture {
		for _, df := range [2]int{-1, 1} {
			sq, ok := to.Offset(df, -dir)
			if !ok {
				continue
			}
			if b.Occupied(sq) && match(sq, b) {
				return sq, true
			}
		}
		return 0, false
	}

	one, ok := to.Offset(0, -dir)
	if !ok {
		return 0, false
	}
	if b.Occupied(one) {
		if match(one, b) {
			return one, true
		}
		return 0, false
	}

	two, ok := to.Offset(0, -2*dir)
	if !ok || two.Rank() != chess.HomeRank(colour) {
		return 0, false
	}
	if b.Occupied(two) && match(two, b) {
		return two, true
	}
	return 0, false
}
