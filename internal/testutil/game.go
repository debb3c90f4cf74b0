package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Arrangement joins board rows, rank 8 first, into an arrangement string.
// Rows shorter than eight symbols are padded with empty squares so that
// fixtures can be written as "k", "", "", ... for sparse positions.
func Arrangement(rows ...string) string {
	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		row := ""
		if rank < len(rows) {
			row = rows[rank]
		}
		if len(row) > chess.BoardSize {
			row = row[:chess.BoardSize]
		}
		sb.WriteString(row)
		sb.WriteString(strings.Repeat(string(rune(chess.EmptySymbol)), chess.BoardSize-len(row)))
	}
	return sb.String()
}

// MustBoard parses an arrangement and calls t.Fatal on failure.
func MustBoard(t testing.TB, arrangement string) *chess.Board {
	t.Helper()
	board, err := chess.ParseArrangement(arrangement)
	if err != nil {
		t.Fatalf("ParseArrangement(%q) error: %v", arrangement, err)
	}
	return board
}

// MustPosition parses square notation and calls t.Fatal on failure.
func MustPosition(t testing.TB, square string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(square)
	if err != nil {
		t.Fatalf("ParsePosition(%q) error: %v", square, err)
	}
	return p
}

// MustMove parses square-pair notation and calls t.Fatal on failure.
func MustMove(t testing.TB, move string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(move)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", move, err)
	}
	return m
}

// Squares builds a square set from square names and calls t.Fatal on a bad name.
func Squares(t testing.TB, squares ...string) chess.SquareSet {
	t.Helper()
	var set chess.SquareSet
	for _, sq := range squares {
		set = set.Add(MustPosition(t, sq))
	}
	return set
}
