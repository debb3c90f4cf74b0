package fen

import (
	stderrors "errors"
	"sync"
	"testing"

	corechess "github.com/corentings/chess/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantRows []string
		wantTurn chess.Colour
	}{
		{
			name:     "initial",
			fen:      InitialFEN,
			wantRows: []string{"rnbqkbnr", "pppppppp", "", "", "", "", "PPPPPPPP", "RNBQKBNR"},
			wantTurn: chess.White,
		},
		{
			name:     "partial castling rights",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 3 20",
			wantRows: []string{"r---k--s", "", "", "", "", "", "", "S---K--R"},
			wantTurn: chess.Black,
		},
		{
			name:     "no castling rights",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1",
			wantRows: []string{"s---l--s", "", "", "", "", "", "", "S---L--S"},
			wantTurn: chess.White,
		},
		{
			name:     "displaced king",
			fen:      "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
			wantRows: []string{"", "-----l", "", "", "", "", "-----L", "----S"},
			wantTurn: chess.White,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arrangement, turn, err := Decode(tt.fen)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.fen, err)
			}
			testutil.AssertEqual(t, arrangement, testutil.Arrangement(tt.wantRows...))
			testutil.AssertEqual(t, turn, tt.wantTurn)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr error
	}{
		{"garbage", "not a fen", errors.ErrInvalidFEN},
		{"empty", "", errors.ErrInvalidFEN},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1", errors.ErrKingCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.fen)
			if !stderrors.Is(err, tt.wantErr) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.fen, err, tt.wantErr)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		turn      chess.Colour
		moveCount int
		want      string
	}{
		{
			name:      "initial",
			rows:      []string{"rnbqkbnr", "pppppppp", "", "", "", "", "PPPPPPPP", "RNBQKBNR"},
			turn:      chess.White,
			moveCount: 0,
			want:      InitialFEN,
		},
		{
			name:      "after e4",
			rows:      []string{"rnbqkbnr", "pppppppp", "", "", "----P", "", "PPPP-PPP", "RNBQKBNR"},
			turn:      chess.Black,
			moveCount: 1,
			want:      "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:      "moved pieces drop rights",
			rows:      []string{"r---k--s", "", "", "", "", "", "", "R----SL-"},
			turn:      chess.Black,
			moveCount: 9,
			want:      "r3k2r/8/8/8/8/8/8/R4RK1 b q - 0 5",
		},
		{
			name:      "no rights",
			rows:      []string{"l", "", "", "", "", "", "", "-------L"},
			turn:      chess.White,
			moveCount: 40,
			want:      "k7/8/8/8/8/8/8/7K w - - 0 21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, testutil.Arrangement(tt.rows...))
			got := Encode(board, tt.turn, tt.moveCount)
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
			if _, err := corechess.FEN(got); err != nil {
				t.Errorf("corechess.FEN(%q) rejected encoded FEN: %v", got, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b Kkq - 0 4",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	}
	for _, f := range fens {
		arrangement, turn, err := Decode(f)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", f, err)
		}
		board := testutil.MustBoard(t, arrangement)
		again, againTurn, err := Decode(Encode(board, turn, 0))
		if err != nil {
			t.Fatalf("Decode(Encode()) error: %v", err)
		}
		testutil.AssertEqual(t, again, arrangement, "round trip of %q", f)
		testutil.AssertEqual(t, againTurn, turn)
	}
}

func TestDecode_Concurrent(t *testing.T) {
	want, _, err := Decode(InitialFEN)
	testutil.AssertNoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _, _ = Decode(InitialFEN)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		testutil.AssertEqual(t, got, want, "goroutine %d", i)
	}
}
