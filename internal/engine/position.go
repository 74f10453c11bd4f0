package engine

import (
	"fmt"

	"github.com/phaul/chessdb/internal/chess"
	"github.com/phaul/chessdb/internal/errors"
)

// CastleSide selects between the two castling directions.
type CastleSide int

const (
	ShortSide CastleSide = iota // king side
	LongSide                    // queen side
)

// Castling is the 4-bit castling availability set. The bit layout matches
// the external integer encoding.
type Castling int

const (
	WhiteShort Castling = 1 << iota
	WhiteLong
	BlackShort
	BlackLong

	AllCastling = WhiteShort | WhiteLong | BlackShort | BlackLong
)

// bit returns the availability bit for one colour and side.
func bit(colour chess.Colour, side CastleSide) Castling {
	switch {
	case colour == chess.White && side == ShortSide:
		return WhiteShort
	case colour == chess.White && side == LongSide:
		return WhiteLong
	case colour == chess.Black && side == ShortSide:
		return BlackShort
	default:
		return BlackLong
	}
}

// Position is a board together with castling availability, the colour to
// move, and the en-passant state.
//
// Positions are immutable values. Make returns a brand-new Position and
// never alters its receiver, so a game's ply history is simply a slice of
// Positions and concurrent readers need no synchronization.
type Position struct {
	Board    chess.Board
	Castling Castling
	Active   chess.Colour

	// EnPassant target of the immediately preceding move, if any. It is
	// recomputed from scratch on every Make and never inherited.
	EnPassant bool
	EPSquare  chess.Square
}

// InitialPosition returns the standard starting position.
func InitialPosition() Position {
	return Position{
		Board:    chess.InitialBoard(),
		Castling: AllCastling,
		Active:   chess.White,
	}
}

// EmptyPosition returns a position with no pieces, no castling rights and
// White to move.
func EmptyPosition() Position {
	return Position{Active: chess.White}
}

// Specific builds a position from externally supplied parts: a FEN placement
// field, the 0-15 castling availability integer, the 0/1 active colour
// encoding, and an optional 0-63 en-passant square index (nil when absent).
// The first failure encountered is returned.
func Specific(fenPlacement string, castling int, colour int, enPassant *int) (Position, error) {
	board, err := chess.BoardFromFEN(fenPlacement)
	if err != nil {
		return Position{}, err
	}

	if castling < 0 || castling > int(AllCastling) {
		return Position{}, fmt.Errorf("castling availability %d out of range", castling)
	}

	active, err := chess.DecodeColour(colour)
	if err != nil {
		return Position{}, err
	}

	p := Position{
		Board:    board,
		Castling: Castling(castling),
		Active:   active,
	}

	if enPassant != nil {
		sq, err := chess.SquareFromIndex(*enPassant)
		if err != nil {
			return Position{}, errors.Wrap(err, "en passant")
		}
		p.EnPassant = true
		p.EPSquare = sq
	}

	return p, nil
}

// CanCastle tests the availability bit for the given colour and side.
func (p Position) CanCastle(colour chess.Colour, side CastleSide) bool {
	return p.Castling&bit(colour, side) != 0
}

// SetCastle returns a position with the availability bit for the given
// colour and side set or cleared.
func (p Position) SetCastle(colour chess.Colour, side CastleSide, allowed bool) Position {
	if allowed {
		p.Castling |= bit(colour, side)
	} else {
		p.Castling &^= bit(colour, side)
	}
	return p
}

// FEN returns the placement field of the position's board. It deliberately
// does not assemble a full FEN record; active colour, castling, en passant
// and move counters are carried separately by the position.
func (p Position) FEN() string {
	return p.Board.FEN()
}

// Make applies a move descriptor to the position and returns the resulting
// position. The source square is resolved geometrically: castle moves use
// the fixed king origin, normal moves consult the scanner filtered by the
// move's kind, colour, and disambiguators. Castling rights, en-passant
// state, and the active colour are recomputed for the new position.
//
// Make fails, naming the piece kind, when no source square can be resolved.
// The receiver is left untouched either way.
func (p Position) Make(m chess.Move) (Position, error) {
	if m.IsCastle() {
		return p.makeCastle(m.Class == chess.KingsideCastle)
	}
	return p.makeNormal(m)
}

// castleFiles are the fixed king and rook origin/destination files per
// side; the rank depends on the castling colour.
type castleFiles struct {
	kingTo, rookFrom, rookTo chess.File
}

var castleGeometry = map[bool]castleFiles{
	true:  {kingTo: 'g', rookFrom: 'h', rookTo: 'f'}, // short
	false: {kingTo: 'c', rookFrom: 'a', rookTo: 'd'}, // long
}

func (p Position) makeCastle(short bool) (Position, error) {
	rank := chess.Rank('1')
	if p.Active == chess.Black {
		rank = '8'
	}

	g := castleGeometry[short]
	kingFrom := chess.SquareAt('e', rank)
	kingTo := chess.SquareAt(g.kingTo, rank)
	rookFrom := chess.SquareAt(g.rookFrom, rank)
	rookTo := chess.SquareAt(g.rookTo, rank)

	b := p.Board
	b = b.Clear(kingFrom).Clear(rookFrom)
	b = b.Put(kingTo, chess.Piece{Colour: p.Active, Kind: chess.King})
	b = b.Put(rookTo, chess.Piece{Colour: p.Active, Kind: chess.Rook})

	next := Position{
		Board:    b,
		Castling: p.Castling &^ (bit(p.Active, ShortSide) | bit(p.Active, LongSide)),
		Active:   p.Active.Opposite(),
	}
	return next, nil
}

func (p Position) makeNormal(m chess.Move) (Position, error) {
	want := chess.Piece{Colour: p.Active, Kind: m.Kind}
	match := func(sq chess.Square, b chess.Board) bool {
		if got, ok := b.Get(sq); !ok || got != want {
			return false
		}
		if m.FromFile != 0 && sq.File() != m.FromFile {
			return false
		}
		if m.FromRank != 0 && sq.Rank() != m.FromRank {
			return false
		}
		return true
	}

	from, ok := Source(p.Board, m.To, m.Kind, p.Active, m.Capture, match)
	if !ok {
		return Position{}, &errors.MoveError{
			Err:   errors.ErrNoSource,
			Piece: m.Kind.String(),
		}
	}

	placed := want
	if m.Promotion != 0 {
		placed = chess.Piece{Colour: p.Active, Kind: m.Promotion}
	}

	b := p.Board.Clear(from).Put(m.To, placed)

	// An en-passant capture removes a pawn that is beside, not under, the
	// destination: same file as the destination, same rank as the source.
	if m.Kind == chess.Pawn && m.Capture && p.EnPassant && m.To == p.EPSquare {
		b = b.Clear(chess.SquareAt(m.To.File(), from.Rank()))
	}

	next := Position{
		Board:    b,
		Castling: p.Castling &^ rightsTouched(from) &^ rightsTouched(m.To),
		Active:   p.Active.Opposite(),
	}

	// A fresh en-passant target exists only after a two-rank pawn push.
	if m.Kind == chess.Pawn && !m.Capture && from.Rank() == chess.HomeRank(p.Active) {
		if diff := int(m.To.Rank()) - int(from.Rank()); diff == 2 || diff == -2 {
			mid, _ := from.Offset(0, chess.ColourOffset(p.Active))
			next.EnPassant = true
			next.EPSquare = mid
		}
	}

	return next, nil
}

// rightsTouched maps the six rights-relevant squares to the availability
// bits they revoke when used as source or destination of a move. The king
// origins clear both of their colour's bits; each rook origin clears one.
func rightsTouched(sq chess.Square) Castling {
	switch sq {
	case chess.SquareAt('e', '1'):
		return WhiteShort | WhiteLong
	case chess.SquareAt('h', '1'):
		return WhiteShort
	case chess.SquareAt('a', '1'):
		return WhiteLong
	case chess.SquareAt('e', '8'):
		return BlackShort | BlackLong
	case chess.SquareAt('h', '8'):
		return BlackShort
	case chess.SquareAt('a', '8'):
		return BlackLong
	default:
		return 0
	}
}
