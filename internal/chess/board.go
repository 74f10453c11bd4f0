package chess

// Board is a square to piece mapping. The zero value is the empty board.
//
// Boards are immutable values: Put and Clear return a new Board and never
// touch the receiver, so a Board can be shared freely between goroutines and
// kept in ply histories without copying discipline. No legality invariant is
// enforced; a Board will happily hold positions impossible in a real game.
type Board struct {
	// One byte per square: 0 for empty, otherwise kind and colour packed
	// by pack().
	squares [64]byte
}

func pack(p Piece) byte {
	return byte(p.Kind)<<1 | byte(p.Colour)
}

func unpack(b byte) Piece {
	return Piece{Colour: Colour(b & 1), Kind: Kind(b >> 1)}
}

// EmptyBoard returns a board with no pieces.
func EmptyBoard() Board {
	return Board{}
}

// InitialBoard returns the standard 32-piece starting arrangement.
func InitialBoard() Board {
	b := Board{}
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, k := range backRank {
		f := File(int(FirstFile) + i)
		b = b.Put(SquareAt(f, '1'), W(k))
		b = b.Put(SquareAt(f, '2'), W(Pawn))
		b = b.Put(SquareAt(f, '7'), B(Pawn))
		b = b.Put(SquareAt(f, '8'), B(k))
	}
	return b
}

// Get returns the piece on the given square and whether the square is
// occupied.
func (b Board) Get(sq Square) (Piece, bool) {
	v := b.squares[sq]
	if v == 0 {
		return Piece{}, false
	}
	return unpack(v), true
}

// Occupied reports whether the given square holds a piece.
func (b Board) Occupied(sq Square) bool {
	return b.squares[sq] != 0
}

// Put returns a new board with the piece placed on the given square,
// replacing whatever was there.
func (b Board) Put(sq Square, p Piece) Board {
	b.squares[sq] = pack(p)
	return b
}

// Clear returns a new board with the given square emptied.
func (b Board) Clear(sq Square) Board {
	b.squares[sq] = 0
	return b
}
