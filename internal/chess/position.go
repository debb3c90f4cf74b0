package chess

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is a board coordinate. Rank 0 is the rank farthest from White
// (the 8th rank), file 0 is the A file.
type Position struct {
	Rank int
	File int
}

// NewPosition returns the position at (rank, file), or false if either
// coordinate is outside [0, 7]. Out-of-range input is never clamped.
func NewPosition(rank, file int) (Position, bool) {
	if rank < 0 || rank >= BoardSize || file < 0 || file >= BoardSize {
		return Position{}, false
	}
	return Position{Rank: rank, File: file}, true
}

// ParsePosition parses square notation such as "E2" (case-insensitive).
func ParsePosition(s string) (Position, error) {
	sq := strings.ToUpper(strings.TrimSpace(s))
	if len(sq) != 2 || sq[0] < 'A' || sq[0] > 'H' || sq[1] < '1' || sq[1] > '8' {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Position{Rank: BoardSize - int(sq[1]-'0'), File: int(sq[0] - 'A')}, nil
}

// String returns the square in upper-case notation, e.g. "E2".
func (p Position) String() string {
	return string([]byte{byte('A' + p.File), byte('0' + BoardSize - p.Rank)})
}

// Valid reports whether both coordinates are on the board.
func (p Position) Valid() bool {
	return p.Rank >= 0 && p.Rank < BoardSize && p.File >= 0 && p.File < BoardSize
}

// Offset returns the position shifted by (dr, df), or false if it leaves the board.
func (p Position) Offset(dr, df int) (Position, bool) {
	return NewPosition(p.Rank+dr, p.File+df)
}

// Index returns the row-major index of the position (0..63).
func (p Position) Index() int {
	return p.Rank*BoardSize + p.File
}

// PositionAt returns the position for a row-major index.
func PositionAt(index int) Position {
	return Position{Rank: index / BoardSize, File: index % BoardSize}
}

// SquareSet is a set of board positions, one bit per square in row-major order.
type SquareSet uint64

// NewSquareSet builds a set from the given positions.
func NewSquareSet(positions ...Position) SquareSet {
	var s SquareSet
	for _, p := range positions {
		s = s.Add(p)
	}
	return s
}

// Add returns the set with p included.
func (s SquareSet) Add(p Position) SquareSet {
	return s | 1<<uint(p.Index())
}

// Remove returns the set with p excluded.
func (s SquareSet) Remove(p Position) SquareSet {
	return s &^ (1 << uint(p.Index()))
}

// Has reports whether p is in the set.
func (s SquareSet) Has(p Position) bool {
	if !p.Valid() {
		return false
	}
	return s&(1<<uint(p.Index())) != 0
}

// Union returns the squares in either set.
func (s SquareSet) Union(other SquareSet) SquareSet {
	return s | other
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether the set has no squares.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// Positions returns the members in row-major order.
func (s SquareSet) Positions() []Position {
	out := make([]Position, 0, s.Len())
	for b := uint64(s); b != 0; b &= b - 1 {
		out = append(out, PositionAt(bits.TrailingZeros64(b)))
	}
	return out
}

// Strings returns the members in row-major order as square names.
func (s SquareSet) Strings() []string {
	positions := s.Positions()
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = p.String()
	}
	return out
}
