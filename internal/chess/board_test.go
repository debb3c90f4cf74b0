package chess

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseArrangement_Validation(t *testing.T) {
	empty := strings.Repeat("-", 64)
	withKings := func(s string) string {
		return "k" + s[1:63] + "K"
	}

	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantWhite int
		wantBlack int
	}{
		{"standard", StandardArrangement, nil, 0, 0},
		{"kings only", withKings(empty), nil, 0, 0},
		{"moved kings", "l" + empty[1:63] + "L", nil, 0, 0},
		{"too short", StandardArrangement[:63], errors.ErrArrangementLength, 0, 0},
		{"too long", StandardArrangement + "-", errors.ErrArrangementLength, 0, 0},
		{"empty", "", errors.ErrArrangementLength, 0, 0},
		{"no kings", empty, errors.ErrKingCount, 0, 0},
		{"two white kings", "kK" + empty[2:63] + "K", errors.ErrKingCount, 2, 1},
		{"moved and unmoved black", "kl" + empty[2:63] + "K", errors.ErrKingCount, 1, 2},
		{"unknown letters read as empty", "kxyz" + empty[4:63] + "K", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := ParseArrangement(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ParseArrangement() error = %v, want nil", err)
				}
				if board == nil {
					t.Fatal("ParseArrangement() returned nil board")
				}
				return
			}
			if !stderrors.Is(err, tt.wantErr) {
				t.Fatalf("ParseArrangement() error = %v, want %v", err, tt.wantErr)
			}
			var ae *errors.ArrangementError
			if !stderrors.As(err, &ae) {
				t.Fatalf("ParseArrangement() error type = %T, want *ArrangementError", err)
			}
			if ae.Length != len(tt.input) {
				t.Errorf("ArrangementError.Length = %d, want %d", ae.Length, len(tt.input))
			}
			if tt.wantErr == errors.ErrKingCount && (ae.WhiteKings != tt.wantWhite || ae.BlackKings != tt.wantBlack) {
				t.Errorf("kings = %d/%d, want %d/%d", ae.WhiteKings, ae.BlackKings, tt.wantWhite, tt.wantBlack)
			}
		})
	}
}

func TestParseArrangement_Pieces(t *testing.T) {
	board, err := ParseArrangement(StandardArrangement)
	if err != nil {
		t.Fatalf("ParseArrangement(standard) error: %v", err)
	}

	tests := []struct {
		square string
		want   Piece
	}{
		{"E1", W(King)},
		{"D1", W(Queen)},
		{"A1", W(Rook)},
		{"B1", W(Knight)},
		{"C1", W(Bishop)},
		{"E2", W(Pawn)},
		{"E8", B(King)},
		{"H8", B(Rook)},
		{"A7", B(Pawn)},
		{"E4", NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			p, err := ParsePosition(tt.square)
			if err != nil {
				t.Fatalf("ParsePosition(%q) error: %v", tt.square, err)
			}
			if got := board.Get(p); got != tt.want {
				t.Errorf("Get(%s) = %v, want %v", tt.square, got, tt.want)
			}
		})
	}
}

func TestBoard_ArrangementRoundTrip(t *testing.T) {
	inputs := []string{
		StandardArrangement,
		"r---l--s" + "pppp-ppp" + "--------" + "----p---" + "----P---" + "--------" + "PPPP-PPP" + "S---K--R",
	}
	for _, in := range inputs {
		board, err := ParseArrangement(in)
		if err != nil {
			t.Fatalf("ParseArrangement(%q) error: %v", in, err)
		}
		if got := board.Arrangement(); got != in {
			t.Errorf("Arrangement() = %q, want %q", got, in)
		}
		if got := strings.Join(board.Rows(), ""); got != in {
			t.Errorf("Rows() joined = %q, want %q", got, in)
		}
	}
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	board, _ := ParseArrangement(StandardArrangement)
	e1 := Position{Rank: 7, File: 4}

	cp := board.Copy()
	king := cp.Get(e1)
	king.Moved = true
	cp.Set(e1, king)

	if board.Get(e1).Moved {
		t.Error("Copy() shares piece state with the original")
	}
	if cp.Arrangement() == board.Arrangement() {
		t.Error("Copy() modification not visible in copy")
	}
}

func TestBoard_FindKingAndOccupied(t *testing.T) {
	board, _ := ParseArrangement(StandardArrangement)

	if p, ok := board.FindKing(Black); !ok || p.String() != "E8" {
		t.Errorf("FindKing(Black) = %v, %v, want E8, true", p, ok)
	}
	if got := board.Occupied(White).Len(); got != 16 {
		t.Errorf("Occupied(White).Len() = %d, want 16", got)
	}
	if NewBoard().Occupied(Black) != 0 {
		t.Error("NewBoard().Occupied(Black) should be empty")
	}
	if _, ok := NewBoard().FindKing(White); ok {
		t.Error("NewBoard().FindKing(White) found a king")
	}
}
