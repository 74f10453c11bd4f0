// Package output converts positions and move descriptors to and from the
// wire formats spoken by the surrounding application: a JSON object and a
// query-parameter set for positions, and a JSON descriptor form for moves.
package output

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/phaul/chessdb/internal/engine"
)

// EncodedPosition is the structured form of a position. EnPassant is
// omitted entirely when the position has no en-passant target; consumers
// distinguish absence from any in-band value.
type EncodedPosition struct {
	FENPosition          string `json:"fen_position"`
	CastlingAvailability int    `json:"castling_availability"`
	ActiveColour         int    `json:"active_colour"`
	EnPassant            *int   `json:"en_passant,omitempty"`
}

// Encode converts a position to its structured form.
func Encode(p engine.Position) EncodedPosition {
	e := EncodedPosition{
		FENPosition:          p.FEN(),
		CastlingAvailability: int(p.Castling),
		ActiveColour:         p.Active.Encode(),
	}
	if p.EnPassant {
		idx := p.EPSquare.Index()
		e.EnPassant = &idx
	}
	return e
}

// JSON marshals a position to its JSON object form.
func JSON(p engine.Position) ([]byte, error) {
	return json.Marshal(Encode(p))
}

// Values converts a position to the query parameters consumed by the
// external move-search service. The en_passant parameter is omitted when
// the position has no en-passant target.
func Values(p engine.Position) url.Values {
	v := url.Values{}
	v.Set("fen_position", p.FEN())
	v.Set("castling_availability", strconv.Itoa(int(p.Castling)))
	v.Set("active_colour", strconv.Itoa(p.Active.Encode()))
	if p.EnPassant {
		v.Set("en_passant", strconv.Itoa(p.EPSquare.Index()))
	}
	return v
}

// Decode rebuilds a position from its structured form.
func Decode(e EncodedPosition) (engine.Position, error) {
	return engine.Specific(e.FENPosition, e.CastlingAvailability, e.ActiveColour, e.EnPassant)
}
