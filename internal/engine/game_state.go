package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if colour is to move, in check, and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsKingUnderAttack(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is to move, not in check, and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsKingUnderAttack(board, colour) && !HasLegalMoves(board, colour)
}

// StatusFor returns the game status with colour to move: Ongoing while it
// has a legal move, otherwise a win for the opponent if colour is in check
// and a Draw if it is not.
func StatusFor(board *chess.Board, colour chess.Colour) chess.Status {
	if HasLegalMoves(board, colour) {
		return chess.Ongoing
	}
	if IsKingUnderAttack(board, colour) {
		return chess.WinFor(colour.Opposite())
	}
	return chess.Draw
}
