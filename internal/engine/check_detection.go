package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// AttackedSquares returns the union of the attack footprints of every
// piece of colour by. Squares holding by's own pieces are included when
// defended.
func AttackedSquares(board *chess.Board, by chess.Colour) chess.SquareSet {
	var set chess.SquareSet
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() || piece.Colour != by {
				continue
			}
			set = set.Union(Destinations(board, chess.Position{Rank: rank, File: file}, true))
		}
	}
	return set
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, p chess.Position, by chess.Colour) bool {
	return AttackedSquares(board, by).Has(p)
}

// IsKingUnderAttack returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsKingUnderAttack(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}
