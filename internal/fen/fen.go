// Package fen converts between Forsyth-Edwards Notation and the
// arrangement form used by the engine.
//
// FEN has no per-piece move history, so castling rights stand in for it:
// a king or corner rook is read as unmoved only while a castling right
// still depends on it, and every other king and rook is read as moved.
// En passant targets and move clocks are ignored.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	corechess "github.com/corentings/chess/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castleRight ties a FEN castling letter to the rook corner it preserves.
type castleRight struct {
	letter   string
	colour   chess.Colour
	rookFile int
}

var castleRights = []castleRight{
	{"K", chess.White, chess.KingsideRookFile},
	{"Q", chess.White, chess.QueensideRookFile},
	{"k", chess.Black, chess.KingsideRookFile},
	{"q", chess.Black, chess.QueensideRookFile},
}

// Decode parses a six-field FEN string into an arrangement and the side to move.
// The arrangement is checked the same way as one supplied directly, so a FEN
// without exactly one king per side fails with an *errors.ArrangementError.
func Decode(s string) (string, chess.Colour, error) {
	opt, err := corechess.FEN(strings.Join(strings.Fields(s), " "))
	if err != nil {
		return "", chess.White, fmt.Errorf("%q: %v: %w", s, err, errors.ErrInvalidFEN)
	}
	pos := corechess.NewGame(opt).Position()

	board := chess.NewBoard()
	for sq, piece := range pos.Board().SquareMap() {
		kind, ok := kindOf(piece.Type())
		if !ok {
			continue
		}
		colour := chess.White
		if piece.Color() == corechess.Black {
			colour = chess.Black
		}
		p := chess.Position{Rank: chess.BoardSize - 1 - int(sq.Rank()), File: int(sq.File())}
		board.Set(p, chess.Piece{Kind: kind, Colour: colour, Moved: kind == chess.King || kind == chess.Rook})
	}

	rights := string(pos.CastleRights())
	for _, cr := range castleRights {
		if !strings.Contains(rights, cr.letter) {
			continue
		}
		home := chess.HomeRank(cr.colour)
		kingSq := chess.Position{Rank: home, File: chess.KingHomeFile}
		rookSq := chess.Position{Rank: home, File: cr.rookFile}
		king, rook := board.Get(kingSq), board.Get(rookSq)
		if king.Kind != chess.King || king.Colour != cr.colour || rook.Kind != chess.Rook || rook.Colour != cr.colour {
			continue
		}
		king.Moved, rook.Moved = false, false
		board.Set(kingSq, king)
		board.Set(rookSq, rook)
	}

	turn := chess.White
	if pos.Turn() == corechess.Black {
		turn = chess.Black
	}

	arrangement := board.Arrangement()
	if err := chess.VerifyArrangement(arrangement); err != nil {
		return "", turn, fmt.Errorf("FEN %q: %w", s, err)
	}
	return arrangement, turn, nil
}

func kindOf(t corechess.PieceType) (chess.Kind, bool) {
	switch t {
	case corechess.Pawn:
		return chess.Pawn, true
	case corechess.Knight:
		return chess.Knight, true
	case corechess.Bishop:
		return chess.Bishop, true
	case corechess.Rook:
		return chess.Rook, true
	case corechess.Queen:
		return chess.Queen, true
	case corechess.King:
		return chess.King, true
	}
	return chess.Empty, false
}

// Encode writes board as a six-field FEN. moveCount is the game's move
// counter, so the fullmove number is moveCount/2 + 1. The castling field is
// derived from unmoved kings and corner rooks on their home squares; the en
// passant field is always "-" and the halfmove clock always 0.
func Encode(board *chess.Board, turn chess.Colour, moveCount int) string {
	var sb strings.Builder

	for rank := 0; rank < chess.BoardSize; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := piece.Kind.Letter()
			if piece.Colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}

	sb.WriteByte(' ')
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(CastlingField(board))

	fmt.Fprintf(&sb, " - 0 %d", moveCount/2+1)
	return sb.String()
}

// CastlingField returns the FEN castling availability for board, or "-".
func CastlingField(board *chess.Board) string {
	var field strings.Builder
	for _, cr := range castleRights {
		home := chess.HomeRank(cr.colour)
		king := board.Squares[home][chess.KingHomeFile]
		rook := board.Squares[home][cr.rookFile]
		if king.Kind == chess.King && king.Colour == cr.colour && !king.Moved &&
			rook.Kind == chess.Rook && rook.Colour == cr.colour && !rook.Moved {
			field.WriteString(cr.letter)
		}
	}
	if field.Len() == 0 {
		return "-"
	}
	return field.String()
}
