// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrArrangementLength indicates an arrangement that is not 64 symbols long.
	ErrArrangementLength = errors.New("arrangement must be 64 symbols long")

	// ErrKingCount indicates an arrangement without exactly one king per side.
	ErrKingCount = errors.New("arrangement must have exactly one king of each colour")

	// ErrInvalidSquare indicates square notation outside A1..H8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidColour indicates an unknown colour name.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidMove indicates text that is not a square pair.
	ErrInvalidMove = errors.New("invalid move notation")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move attempted after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrMalformedPuzzle indicates a puzzle record that cannot be read.
	ErrMalformedPuzzle = errors.New("malformed puzzle")

	// ErrPuzzleNotFound indicates a puzzle index outside the database.
	ErrPuzzleNotFound = errors.New("puzzle not found")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown live game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrTooManyGames indicates the live game limit has been reached.
	ErrTooManyGames = errors.New("too many live games")
)

// ArrangementError describes why an arrangement string was rejected.
// It unwraps to ErrArrangementLength or ErrKingCount.
type ArrangementError struct {
	Err        error // The underlying sentinel
	Length     int   // Length of the rejected arrangement
	WhiteKings int   // White kings found (only for ErrKingCount)
	BlackKings int   // Black kings found (only for ErrKingCount)
}

// Error returns a formatted error message including the offending counts.
func (e *ArrangementError) Error() string {
	switch {
	case errors.Is(e.Err, ErrArrangementLength):
		return fmt.Sprintf("%v: got %d", e.Err, e.Length)
	case errors.Is(e.Err, ErrKingCount):
		return fmt.Sprintf("%v: got %d white, %d black", e.Err, e.WhiteKings, e.BlackKings)
	case e.Err != nil:
		return e.Err.Error()
	}
	return "illegal arrangement"
}

// Unwrap returns the underlying error.
func (e *ArrangementError) Unwrap() error {
	return e.Err
}

// PuzzleError represents a malformed puzzle record with location context.
type PuzzleError struct {
	Err    error  // The underlying error
	File   string // Source file name (if known)
	Line   int    // Line number of the record (1-based)
	Record string // The offending record text
}

// Error returns a formatted error message with location and context.
func (e *PuzzleError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Record != "" {
		parts = append(parts, fmt.Sprintf("record %q", e.Record))
	}

	msg := ErrMalformedPuzzle.Error()
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if len(parts) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, ", "), msg)
}

// Unwrap returns the underlying error.
func (e *PuzzleError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrMalformedPuzzle for every PuzzleError.
func (e *PuzzleError) Is(target error) bool {
	return target == ErrMalformedPuzzle
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
