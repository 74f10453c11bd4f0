package chess

// MoveClass categorizes the move descriptors the engine consumes.
type MoveClass int

const (
	NormalMove MoveClass = iota
	KingsideCastle
	QueensideCastle
)

// Move is a structured move descriptor, as produced by an external notation
// parser. For NormalMove the source square is not given; it is resolved from
// the destination, the kind, and the optional disambiguators. A zero FromFile
// or FromRank means the disambiguator is absent.
type Move struct {
	// Class of move (normal or one of the castles).
	Class MoveClass

	// The kind of the piece being moved.
	Kind Kind

	// Destination square.
	To Square

	// Optional file and rank disambiguators (0 when absent).
	FromFile File
	FromRank Rank

	// Whether this move captures.
	Capture bool

	// The kind promoted to (0 when not a promotion).
	Promotion Kind
}

// ShortCastle returns a king-side castling move descriptor.
func ShortCastle() Move {
	return Move{Class: KingsideCastle, Kind: King}
}

// LongCastle returns a queen-side castling move descriptor.
func LongCastle() Move {
	return Move{Class: QueensideCastle, Kind: King}
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != 0
}
