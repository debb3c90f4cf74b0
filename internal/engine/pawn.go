package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnDestinations returns pushes onto empty squares (two from the
// starting rank when both are empty) and occupied forward diagonals.
// A diagonal holding a friendly piece counts only with includeDefended.
// There is no en passant and no promotion.
func pawnDestinations(board *chess.Board, origin chess.Position, colour chess.Colour, includeDefended bool) chess.SquareSet {
	var set chess.SquareSet
	dir := chess.Forward(colour)

	// Forward move
	if one, ok := origin.Offset(dir, 0); ok && board.IsEmpty(one) {
		set = set.Add(one)
		// Double push from starting rank
		if origin.Rank == chess.PawnRank(colour) {
			if two, ok := origin.Offset(2*dir, 0); ok && board.IsEmpty(two) {
				set = set.Add(two)
			}
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		to, ok := origin.Offset(dir, df)
		if !ok {
			continue
		}
		if !board.IsEmpty(to) && canLandOn(board, to, colour, includeDefended) {
			set = set.Add(to)
		}
	}
	return set
}
