// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
// White is zero so that the side to move is the move count modulo two.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour parses WHITE/BLACK in any case, or the FEN letters w/b.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown colour %q: %w", s, errors.ErrInvalidColour)
}

// Kind represents a chess piece type. Empty marks an unoccupied square.
type Kind int

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single upper-case letter of a piece kind.
func (k Kind) Letter() byte {
	letters := []byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece. Moved is only meaningful for rooks and kings,
// which serialize to different symbols before and after their first move.
type Piece struct {
	Kind   Kind
	Colour Colour
	Moved  bool
}

// NoPiece is the zero Piece, standing for an empty square.
var NoPiece = Piece{}

// IsEmpty reports whether p stands for an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Symbol returns the arrangement symbol of the piece.
// Unmoved rooks and kings are R and K, moved ones S and L; Black is lower case.
func (p Piece) Symbol() byte {
	if p.Kind == Empty {
		return EmptySymbol
	}
	letter := p.Kind.Letter()
	if p.Moved {
		switch p.Kind {
		case Rook:
			letter = 'S'
		case King:
			letter = 'L'
		}
	}
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.Kind == Empty {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// EmptySymbol marks an unoccupied square in an arrangement.
const EmptySymbol = '-'

// PieceFromSymbol decodes an arrangement symbol.
// It returns false for the empty symbol and for unknown letters.
func PieceFromSymbol(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	p := Piece{Colour: colour}
	switch c {
	case 'P':
		p.Kind = Pawn
	case 'N':
		p.Kind = Knight
	case 'B':
		p.Kind = Bishop
	case 'R':
		p.Kind = Rook
	case 'S':
		p.Kind, p.Moved = Rook, true
	case 'Q':
		p.Kind = Queen
	case 'K':
		p.Kind = King
	case 'L':
		p.Kind, p.Moved = King, true
	default:
		return NoPiece, false
	}
	return p, true
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// Constants for board dimensions and home ranks.
// Rank 0 is the rank farthest from White.
const (
	BoardSize = 8

	WhiteHomeRank     = 7
	BlackHomeRank     = 0
	WhitePawnRank     = 6
	BlackPawnRank     = 1
	KingHomeFile      = 4
	QueensideRookFile = 0
	KingsideRookFile  = 7
)

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return WhiteHomeRank
	}
	return BlackHomeRank
}

// PawnRank returns the rank pawns of the given colour start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return WhitePawnRank
	}
	return BlackPawnRank
}

// Forward returns -1 for White and +1 for Black (pawn direction in ranks).
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Status is the state of a game. Ongoing is initial; the others are terminal.
type Status int

const (
	Ongoing Status = iota
	Draw
	WhiteWon
	BlackWon
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Draw:
		return "Draw"
	case WhiteWon:
		return "WhiteWon"
	case BlackWon:
		return "BlackWon"
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the game.
func (s Status) IsTerminal() bool {
	return s != Ongoing
}

// WinFor returns the status for a win by colour.
func WinFor(colour Colour) Status {
	if colour == White {
		return WhiteWon
	}
	return BlackWon
}
