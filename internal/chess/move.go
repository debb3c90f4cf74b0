package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a request to move whatever stands on Origin to Destination.
// It carries no result data; captures and castling are worked out on application.
type Move struct {
	Origin      Position
	Destination Position
}

// NewMove creates a move between two positions.
func NewMove(origin, destination Position) Move {
	return Move{Origin: origin, Destination: destination}
}

// ParseMove parses square-pair addressing: "E2 E4", "E2E4" or "e2-e4".
func ParseMove(s string) (Move, error) {
	text := strings.TrimSpace(s)
	var from, to string
	switch fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == '-' }); len(fields) {
	case 1:
		if len(fields[0]) != 4 {
			return Move{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidMove)
		}
		from, to = fields[0][:2], fields[0][2:]
	case 2:
		from, to = fields[0], fields[1]
	default:
		return Move{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidMove)
	}

	origin, err := ParsePosition(from)
	if err != nil {
		return Move{}, fmt.Errorf("move %q origin: %w", s, err)
	}
	destination, err := ParsePosition(to)
	if err != nil {
		return Move{}, fmt.Errorf("move %q destination: %w", s, err)
	}
	return Move{Origin: origin, Destination: destination}, nil
}

// String returns the move as "E2 E4".
func (m Move) String() string {
	return m.Origin.String() + " " + m.Destination.String()
}
