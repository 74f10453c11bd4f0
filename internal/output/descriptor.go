package output

import (
	"fmt"

	"github.com/phaul/chessdb/internal/chess"
	"github.com/phaul/chessdb/internal/errors"
)

// MoveDescriptor is the JSON shape of a structured move descriptor as
// delivered by the external notation parser. Exactly one of Castle or Kind
// is set: castles carry no destination, normal moves name the piece letter
// and destination with optional disambiguators and promotion.
type MoveDescriptor struct {
	Castle    string `json:"castle,omitempty"` // "short" or "long"
	Kind      string `json:"kind,omitempty"`   // SAN letter: P N B R Q K
	To        string `json:"to,omitempty"`     // algebraic square, e.g. "f3"
	FromFile  string `json:"from_file,omitempty"`
	FromRank  string `json:"from_rank,omitempty"`
	Capture   bool   `json:"capture,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// Move converts the descriptor to the engine's move form, validating each
// field.
func (d MoveDescriptor) Move() (chess.Move, error) {
	if d.Castle != "" {
		switch d.Castle {
		case "short":
			return chess.ShortCastle(), nil
		case "long":
			return chess.LongCastle(), nil
		default:
			return chess.Move{}, fmt.Errorf("castle %q: %w", d.Castle, errors.ErrBadMove)
		}
	}

	if len(d.Kind) != 1 {
		return chess.Move{}, fmt.Errorf("kind %q: %w", d.Kind, errors.ErrBadMove)
	}
	kind := chess.KindFromLetter(d.Kind[0])
	if kind == 0 {
		return chess.Move{}, fmt.Errorf("kind %q: %w", d.Kind, errors.ErrBadMove)
	}

	to, err := parseSquare(d.To)
	if err != nil {
		return chess.Move{}, err
	}

	m := chess.Move{
		Class:   chess.NormalMove,
		Kind:    kind,
		To:      to,
		Capture: d.Capture,
	}

	if d.FromFile != "" {
		if len(d.FromFile) != 1 || !chess.ValidFile(chess.File(d.FromFile[0])) {
			return chess.Move{}, fmt.Errorf("from_file %q: %w", d.FromFile, errors.ErrBadMove)
		}
		m.FromFile = chess.File(d.FromFile[0])
	}
	if d.FromRank != "" {
		if len(d.FromRank) != 1 || !chess.ValidRank(chess.Rank(d.FromRank[0])) {
			return chess.Move{}, fmt.Errorf("from_rank %q: %w", d.FromRank, errors.ErrBadMove)
		}
		m.FromRank = chess.Rank(d.FromRank[0])
	}
	if d.Promotion != "" {
		if len(d.Promotion) != 1 {
			return chess.Move{}, fmt.Errorf("promotion %q: %w", d.Promotion, errors.ErrBadMove)
		}
		promo := chess.KindFromLetter(d.Promotion[0])
		if promo == 0 {
			return chess.Move{}, fmt.Errorf("promotion %q: %w", d.Promotion, errors.ErrBadMove)
		}
		m.Promotion = promo
	}

	return m, nil
}

// Descriptor converts an engine move back to its JSON descriptor shape.
func Descriptor(m chess.Move) MoveDescriptor {
	switch m.Class {
	case chess.KingsideCastle:
		return MoveDescriptor{Castle: "short"}
	case chess.QueensideCastle:
		return MoveDescriptor{Castle: "long"}
	}

	d := MoveDescriptor{
		Kind:    string(m.Kind.Letter()),
		To:      m.To.String(),
		Capture: m.Capture,
	}
	if m.FromFile != 0 {
		d.FromFile = string(byte(m.FromFile))
	}
	if m.FromRank != 0 {
		d.FromRank = string(byte(m.FromRank))
	}
	if m.Promotion != 0 {
		d.Promotion = string(m.Promotion.Letter())
	}
	return d
}

// Moves converts a descriptor list, reporting the index of the first bad
// entry.
func Moves(ds []MoveDescriptor) ([]chess.Move, error) {
	moves := make([]chess.Move, 0, len(ds))
	for i, d := range ds {
		m, err := d.Move()
		if err != nil {
			return nil, errors.Wrapf(err, "descriptor %d", i)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func parseSquare(s string) (chess.Square, error) {
	if len(s) != 2 || !chess.ValidFile(chess.File(s[0])) || !chess.ValidRank(chess.Rank(s[1])) {
		return 0, fmt.Errorf("square %q: %w", s, errors.ErrBadSquare)
	}
	return chess.SquareAt(chess.File(s[0]), chess.Rank(s[1])), nil
}
