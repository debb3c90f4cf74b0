package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrArrangementLength, ErrKingCount, ErrInvalidSquare, ErrInvalidColour,
		ErrInvalidMove, ErrIllegalMove, ErrGameOver, ErrMalformedPuzzle,
		ErrInvalidFEN, ErrInvalidConfig, ErrGameNotFound, ErrTooManyGames,
		ErrPuzzleNotFound,
	}
	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

func TestArrangementError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ArrangementError
		sentinel error
		contains []string
	}{
		{
			name:     "length",
			err:      &ArrangementError{Err: ErrArrangementLength, Length: 63},
			sentinel: ErrArrangementLength,
			contains: []string{"64", "got 63"},
		},
		{
			name:     "kings",
			err:      &ArrangementError{Err: ErrKingCount, Length: 64, WhiteKings: 2, BlackKings: 0},
			sentinel: ErrKingCount,
			contains: []string{"2 white", "0 black"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error = tt.err
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", err, tt.sentinel)
			}
			var ae *ArrangementError
			if !errors.As(fmt.Errorf("new game: %w", err), &ae) {
				t.Fatalf("errors.As(wrapped, *ArrangementError) = false, want true")
			}
			for _, s := range tt.contains {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("ArrangementError.Error() = %q, should contain %q", err.Error(), s)
				}
			}
		})
	}
}

func TestPuzzleError(t *testing.T) {
	err := &PuzzleError{
		Err:    fmt.Errorf("bad difficulty %q", "IMPOSSIBLE"),
		File:   "puzzles.txt",
		Line:   7,
		Record: "--------,WHITE,IMPOSSIBLE",
	}

	msg := err.Error()
	for _, s := range []string{"puzzles.txt:7", "IMPOSSIBLE", "bad difficulty"} {
		if !strings.Contains(msg, s) {
			t.Errorf("PuzzleError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrMalformedPuzzle) {
		t.Errorf("errors.Is(PuzzleError, ErrMalformedPuzzle) = false, want true")
	}

	bare := &PuzzleError{Line: 3}
	if got := bare.Error(); got != "line 3: malformed puzzle" {
		t.Errorf("PuzzleError{Line: 3}.Error() = %q, want %q", got, "line 3: malformed puzzle")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrIllegalMove, "move %s", "E2 E5")
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("errors.Is(Wrapf(...), ErrIllegalMove) = false, want true")
	}
	if got, want := err.Error(), "move E2 E5: illegal move"; got != want {
		t.Errorf("Wrapf().Error() = %q, want %q", got, want)
	}
}
