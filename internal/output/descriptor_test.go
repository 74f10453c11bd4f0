package output

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/phaul/chessdb/internal/chess"
	"github.com/phaul/chessdb/internal/errors"
	"github.com/phaul/chessdb/internal/testutil"
)

func TestMoveDescriptorMove(t *testing.T) {
	tests := []struct {
		name    string
		desc    MoveDescriptor
		want    chess.Move
		wantErr error
	}{
		{
			name: "pawn push",
			desc: MoveDescriptor{Kind: "P", To: "e4"},
			want: chess.Move{Kind: chess.Pawn, To: chess.SquareAt('e', '4')},
		},
		{
			name: "knight",
			desc: MoveDescriptor{Kind: "N", To: "f3"},
			want: chess.Move{Kind: chess.Knight, To: chess.SquareAt('f', '3')},
		},
		{
			name: "capture with file disambiguator",
			desc: MoveDescriptor{Kind: "P", To: "d5", FromFile: "e", Capture: true},
			want: chess.Move{Kind: chess.Pawn, To: chess.SquareAt('d', '5'), FromFile: 'e', Capture: true},
		},
		{
			name: "rank disambiguator",
			desc: MoveDescriptor{Kind: "R", To: "d4", FromRank: "1"},
			want: chess.Move{Kind: chess.Rook, To: chess.SquareAt('d', '4'), FromRank: '1'},
		},
		{
			name: "promotion",
			desc: MoveDescriptor{Kind: "P", To: "e8", Promotion: "Q"},
			want: chess.Move{Kind: chess.Pawn, To: chess.SquareAt('e', '8'), Promotion: chess.Queen},
		},
		{
			name: "short castle",
			desc: MoveDescriptor{Castle: "short"},
			want: chess.ShortCastle(),
		},
		{
			name: "long castle",
			desc: MoveDescriptor{Castle: "long"},
			want: chess.LongCastle(),
		},
		{
			name:    "bad castle",
			desc:    MoveDescriptor{Castle: "sideways"},
			wantErr: errors.ErrBadMove,
		},
		{
			name:    "bad kind",
			desc:    MoveDescriptor{Kind: "X", To: "e4"},
			wantErr: errors.ErrBadMove,
		},
		{
			name:    "missing kind",
			desc:    MoveDescriptor{To: "e4"},
			wantErr: errors.ErrBadMove,
		},
		{
			name:    "bad square",
			desc:    MoveDescriptor{Kind: "N", To: "j9"},
			wantErr: errors.ErrBadSquare,
		},
		{
			name:    "bad from file",
			desc:    MoveDescriptor{Kind: "P", To: "d5", FromFile: "z"},
			wantErr: errors.ErrBadMove,
		},
		{
			name:    "bad promotion",
			desc:    MoveDescriptor{Kind: "P", To: "e8", Promotion: "Z"},
			wantErr: errors.ErrBadMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.desc.Move()
			if tt.wantErr != nil {
				if !stderrors.Is(err, tt.wantErr) {
					t.Errorf("Move() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestDescriptorRoundTrip(t *testing.T) {
	moves := []chess.Move{
		{Kind: chess.Pawn, To: chess.SquareAt('e', '4')},
		{Kind: chess.Queen, To: chess.SquareAt('d', '8'), FromRank: '1', Capture: true},
		{Kind: chess.Pawn, To: chess.SquareAt('a', '8'), FromFile: 'b', Capture: true, Promotion: chess.Knight},
		chess.ShortCastle(),
		chess.LongCastle(),
	}

	for _, m := range moves {
		back, err := Descriptor(m).Move()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, back, m)
	}
}

func TestDescriptorJSON(t *testing.T) {
	// The descriptor shape survives a JSON round trip, castles and all.
	in := []MoveDescriptor{
		{Kind: "P", To: "e4"},
		{Castle: "short"},
		{Kind: "P", To: "d5", FromFile: "e", Capture: true},
	}
	data, err := json.Marshal(in)
	testutil.AssertNoError(t, err)

	var out []MoveDescriptor
	testutil.AssertNoError(t, json.Unmarshal(data, &out))
	testutil.AssertEqual(t, out, in)
}

func TestMoves(t *testing.T) {
	ds := []MoveDescriptor{
		{Kind: "P", To: "e4"},
		{Kind: "P", To: "e5"},
	}
	moves, err := Moves(ds)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 2)

	_, err = Moves([]MoveDescriptor{{Kind: "P", To: "e4"}, {Kind: "?", To: "e5"}})
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "descriptor 1")
}
