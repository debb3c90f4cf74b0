package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

func TestPieceSymbols(t *testing.T) {
	tests := []struct {
		piece  Piece
		symbol byte
	}{
		{W(Pawn), 'P'},
		{B(Knight), 'n'},
		{W(Bishop), 'B'},
		{B(Queen), 'q'},
		{W(Rook), 'R'},
		{Piece{Kind: Rook, Colour: White, Moved: true}, 'S'},
		{Piece{Kind: Rook, Colour: Black, Moved: true}, 's'},
		{W(King), 'K'},
		{Piece{Kind: King, Colour: White, Moved: true}, 'L'},
		{Piece{Kind: King, Colour: Black, Moved: true}, 'l'},
		{NoPiece, '-'},
	}

	for _, tt := range tests {
		t.Run(string(tt.symbol), func(t *testing.T) {
			if got := tt.piece.Symbol(); got != tt.symbol {
				t.Errorf("%v.Symbol() = %q, want %q", tt.piece, got, tt.symbol)
			}
			back, ok := PieceFromSymbol(tt.symbol)
			if ok != !tt.piece.IsEmpty() || back != tt.piece {
				t.Errorf("PieceFromSymbol(%q) = %v, %v, want %v", tt.symbol, back, ok, tt.piece)
			}
		})
	}

	if _, ok := PieceFromSymbol('x'); ok {
		t.Error("PieceFromSymbol('x') ok = true, want false")
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		input   string
		want    Colour
		wantErr bool
	}{
		{"WHITE", White, false},
		{"black", Black, false},
		{"w", White, false},
		{"B", Black, false},
		{"red", White, true},
		{"", White, true},
	}
	for _, tt := range tests {
		got, err := ParseColour(tt.input)
		if tt.wantErr {
			if !stderrors.Is(err, errors.ErrInvalidColour) {
				t.Errorf("ParseColour(%q) error = %v, want ErrInvalidColour", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseColour(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
		}
	}
}

func TestColourAndStatus(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if Forward(White) != -1 || Forward(Black) != 1 {
		t.Errorf("Forward() = %d/%d, want -1/1", Forward(White), Forward(Black))
	}
	if WinFor(White) != WhiteWon || WinFor(Black) != BlackWon {
		t.Error("WinFor() returned the wrong status")
	}
	for _, s := range []Status{Draw, WhiteWon, BlackWon} {
		if !s.IsTerminal() {
			t.Errorf("%v.IsTerminal() = false, want true", s)
		}
	}
	if Ongoing.IsTerminal() {
		t.Error("Ongoing.IsTerminal() = true, want false")
	}
}
