// Package puzzle provides chess puzzles and a text database of them.
//
// A puzzle record is two lines:
//
//	ARRANGEMENT,TURN,DIFFICULTY
//	description
//
// where ARRANGEMENT is a 64-symbol board, TURN is WHITE or BLACK and
// DIFFICULTY is one of EASY, MEDIUM, HARD or UNSPECIFIED.
package puzzle

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Difficulty ranks puzzles. Easier puzzles sort first; Unspecified sorts last.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Unspecified
)

var difficultyNames = []string{"EASY", "MEDIUM", "HARD", "UNSPECIFIED"}

// String returns the record form of the difficulty, e.g. "EASY".
func (d Difficulty) String() string {
	if int(d) >= 0 && int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return "UNKNOWN"
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDifficulty parses the record form of a difficulty. Names are case-sensitive.
func ParseDifficulty(s string) (Difficulty, error) {
	for i, name := range difficultyNames {
		if s == name {
			return Difficulty(i), nil
		}
	}
	return Unspecified, fmt.Errorf("unknown difficulty %q", s)
}

// Turn names used in records.
const (
	whiteName = "WHITE"
	blackName = "BLACK"
)

func turnName(c chess.Colour) string {
	if c == chess.White {
		return whiteName
	}
	return blackName
}

func parseTurn(s string) (chess.Colour, error) {
	switch s {
	case whiteName:
		return chess.White, nil
	case blackName:
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown turn %q: %w", s, errors.ErrInvalidColour)
}

// Puzzle is a starting position with the side to move, a difficulty and a
// free-text description.
type Puzzle struct {
	Arrangement string
	Turn        chess.Colour
	Difficulty  Difficulty
	Description string
}

// Parse builds a puzzle from its details line and description line.
// The arrangement must pass chess.VerifyArrangement. Fields after the
// third are ignored. Failures are *errors.PuzzleError.
func Parse(details, description string) (Puzzle, error) {
	fail := func(err error) (Puzzle, error) {
		return Puzzle{}, &errors.PuzzleError{Err: err, Record: details}
	}

	components := strings.Split(details, ",")
	if len(components) < 3 {
		return fail(fmt.Errorf("want ARRANGEMENT,TURN,DIFFICULTY: %w", errors.ErrMalformedPuzzle))
	}
	if err := chess.VerifyArrangement(components[0]); err != nil {
		return fail(err)
	}
	turn, err := parseTurn(components[1])
	if err != nil {
		return fail(err)
	}
	difficulty, err := ParseDifficulty(components[2])
	if err != nil {
		return fail(err)
	}

	return Puzzle{
		Arrangement: components[0],
		Turn:        turn,
		Difficulty:  difficulty,
		Description: description,
	}, nil
}

// Details returns the first line of the record form.
func (p Puzzle) Details() string {
	return p.Arrangement + "," + turnName(p.Turn) + "," + p.Difficulty.String()
}

// String returns the two-line record form of the puzzle.
func (p Puzzle) String() string {
	return p.Details() + "\n" + p.Description
}

// Equal reports whether two puzzles have the same arrangement, turn and
// difficulty. Descriptions are not compared.
func (p Puzzle) Equal(other Puzzle) bool {
	return p.Arrangement == other.Arrangement &&
		p.Turn == other.Turn &&
		p.Difficulty == other.Difficulty
}

// Compare orders puzzles by difficulty, then turn (White first), then
// arrangement. It returns a negative number, zero or a positive number.
func Compare(a, b Puzzle) int {
	if a.Difficulty != b.Difficulty {
		return int(a.Difficulty) - int(b.Difficulty)
	}
	if a.Turn != b.Turn {
		return int(a.Turn) - int(b.Turn)
	}
	return strings.Compare(a.Arrangement, b.Arrangement)
}
