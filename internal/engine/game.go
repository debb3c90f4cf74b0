package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is a chess game in progress: a board, a move counter from which the
// side to move is derived, and a status. A Game is mutated only through
// Move and AttemptMove. It is not safe for concurrent use; callers that
// share a Game must serialize access or work on a Clone.
type Game struct {
	board     chess.Board
	moveCount int
	status    chess.Status
}

// NewGame creates a game from the standard starting arrangement with White to move.
func NewGame() (*Game, error) {
	return NewGameFromArrangement(chess.StandardArrangement, chess.White)
}

// NewGameFromArrangement creates a game from a 64-symbol arrangement with
// the given side to move. It fails with an *errors.ArrangementError when the
// arrangement has the wrong length or king counts.
func NewGameFromArrangement(arrangement string, turn chess.Colour) (*Game, error) {
	board, err := chess.ParseArrangement(arrangement)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(board, turn)
}

// NewGameFromBoard creates a game from a copy of board. The board must
// hold exactly one king of each colour.
func NewGameFromBoard(board *chess.Board, turn chess.Colour) (*Game, error) {
	if err := chess.VerifyArrangement(board.Arrangement()); err != nil {
		return nil, err
	}
	return &Game{board: *board, moveCount: int(turn), status: chess.Ongoing}, nil
}

// Board returns a snapshot of the board. Changing it never affects the game.
func (g *Game) Board() chess.Board {
	return g.board
}

// PieceAt returns the piece on p, or false if p is empty or off the board.
func (g *Game) PieceAt(p chess.Position) (chess.Piece, bool) {
	piece := g.board.Get(p)
	return piece, !piece.IsEmpty()
}

// Arrangement serializes the current board to its 64-symbol form.
func (g *Game) Arrangement() string {
	return g.board.Arrangement()
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return chess.Colour(g.moveCount % 2)
}

// MoveCount returns the move counter. It starts at 0 for White to move
// and 1 for Black to move, and grows by one per successful move.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// Status returns the game status.
func (g *Game) Status() chess.Status {
	return g.status
}

// IsOver reports whether the game has reached a terminal status.
func (g *Game) IsOver() bool {
	return g.status.IsTerminal()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return IsKingUnderAttack(&g.board, g.Turn())
}

// ReachableFrom returns the legal destinations of the piece on p, or an
// empty set if p is empty. Pieces of the side not to move are included.
func (g *Game) ReachableFrom(p chess.Position) chess.SquareSet {
	return LegalDestinations(&g.board, p)
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	if g.IsOver() {
		return nil
	}
	return LegalMoves(&g.board, g.Turn())
}

// AttemptMove plays m if it is legal and reports whether it was played.
// A failed attempt leaves the game unchanged.
func (g *Game) AttemptMove(m chess.Move) bool {
	return g.Move(m) == nil
}

// Move plays m. It returns an error wrapping errors.ErrGameOver when the
// game has ended, or errors.ErrIllegalMove when the origin is empty, holds
// a piece of the side not to move, cannot reach the destination, or the
// move would leave the mover's king under attack. On error the game is
// unchanged.
func (g *Game) Move(m chess.Move) error {
	if g.IsOver() {
		return fmt.Errorf("%s: %w", m, errors.ErrGameOver)
	}
	if !m.Origin.Valid() || !m.Destination.Valid() {
		return fmt.Errorf("%s: square off the board: %w", m, errors.ErrIllegalMove)
	}
	turn := g.Turn()
	piece := g.board.Get(m.Origin)
	switch {
	case piece.IsEmpty():
		return fmt.Errorf("%s: no piece on %s: %w", m, m.Origin, errors.ErrIllegalMove)
	case piece.Colour != turn:
		return fmt.Errorf("%s: %s is not to move: %w", m, piece.Colour, errors.ErrIllegalMove)
	case !Destinations(&g.board, m.Origin, false).Has(m.Destination):
		return fmt.Errorf("%s: %s cannot reach %s: %w", m, piece.Kind, m.Destination, errors.ErrIllegalMove)
	}

	// Tentative application on a scratch board.
	next := g.board
	applyMove(&next, m)
	if IsKingUnderAttack(&next, turn) {
		return fmt.Errorf("%s: leaves %s king in check: %w", m, turn, errors.ErrIllegalMove)
	}

	g.board = next
	g.moveCount++
	g.status = StatusFor(&g.board, g.Turn())
	return nil
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	clone := *g
	return &clone
}
