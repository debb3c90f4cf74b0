package chess

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ArrangementLength is the number of symbols in an arrangement string.
const ArrangementLength = BoardSize * BoardSize

// StandardArrangement is the standard starting position, rank 8 first.
const StandardArrangement = "rnbqkbnr" +
	"pppppppp" +
	"--------" +
	"--------" +
	"--------" +
	"--------" +
	"PPPPPPPP" +
	"RNBQKBNR"

// Board is an 8x8 grid of pieces indexed by [rank][file].
// Board is a value type: assigning it copies every square and piece flag.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// ParseArrangement builds a board from a 64-symbol arrangement string.
// It fails with an *errors.ArrangementError unless the length is 64 and
// there is exactly one king of each colour. Unknown symbols are read as
// empty squares; no other validation is performed.
func ParseArrangement(arrangement string) (*Board, error) {
	if err := VerifyArrangement(arrangement); err != nil {
		return nil, err
	}
	b := NewBoard()
	for i := 0; i < ArrangementLength; i++ {
		if p, ok := PieceFromSymbol(arrangement[i]); ok {
			b.Squares[i/BoardSize][i%BoardSize] = p
		}
	}
	return b, nil
}

// VerifyArrangement checks the length and king counts of an arrangement.
func VerifyArrangement(arrangement string) error {
	if len(arrangement) != ArrangementLength {
		return &errors.ArrangementError{Err: errors.ErrArrangementLength, Length: len(arrangement)}
	}
	white, black := 0, 0
	for i := 0; i < ArrangementLength; i++ {
		switch arrangement[i] {
		case 'K', 'L':
			white++
		case 'k', 'l':
			black++
		}
	}
	if white != 1 || black != 1 {
		return &errors.ArrangementError{
			Err:        errors.ErrKingCount,
			Length:     len(arrangement),
			WhiteKings: white,
			BlackKings: black,
		}
	}
	return nil
}

// Arrangement serializes the board to its 64-symbol form.
func (b *Board) Arrangement() string {
	var sb strings.Builder
	sb.Grow(ArrangementLength)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Squares[rank][file].Symbol())
		}
	}
	return sb.String()
}

// Rows returns the arrangement split into eight rank strings, rank 8 first.
func (b *Board) Rows() []string {
	arrangement := b.Arrangement()
	rows := make([]string, BoardSize)
	for rank := range rows {
		rows[rank] = arrangement[rank*BoardSize : (rank+1)*BoardSize]
	}
	return rows
}

// Get returns the piece at p, or NoPiece if p is empty or off the board.
func (b *Board) Get(p Position) Piece {
	if !p.Valid() {
		return NoPiece
	}
	return b.Squares[p.Rank][p.File]
}

// Set places a piece at p. Positions off the board are ignored.
func (b *Board) Set(p Position, piece Piece) {
	if p.Valid() {
		b.Squares[p.Rank][p.File] = piece
	}
}

// Clear empties the square at p.
func (b *Board) Clear(p Position) {
	b.Set(p, NoPiece)
}

// IsEmpty reports whether the square at p is unoccupied.
func (b *Board) IsEmpty(p Position) bool {
	return b.Get(p).IsEmpty()
}

// FindKing returns the position of the given colour's king.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[rank][file]
			if p.Kind == King && p.Colour == colour {
				return Position{Rank: rank, File: file}, true
			}
		}
	}
	return Position{}, false
}

// Occupied returns the squares holding a piece of the given colour.
func (b *Board) Occupied(colour Colour) SquareSet {
	var s SquareSet
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[rank][file]
			if !p.IsEmpty() && p.Colour == colour {
				s = s.Add(Position{Rank: rank, File: file})
			}
		}
	}
	return s
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
