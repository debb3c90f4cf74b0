package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalDestinations returns the destinations of the piece on origin that
// do not leave its own king under attack. An empty origin yields an empty set.
func LegalDestinations(board *chess.Board, origin chess.Position) chess.SquareSet {
	piece := board.Get(origin)
	if piece.IsEmpty() {
		return 0
	}
	var legal chess.SquareSet
	for _, to := range Destinations(board, origin, false).Positions() {
		if tryMove(board, chess.Move{Origin: origin, Destination: to}, piece.Colour) {
			legal = legal.Add(to)
		}
	}
	return legal
}

// LegalMoves returns every legal move for colour, ordered by origin then
// destination in row-major order.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, origin := range board.Occupied(colour).Positions() {
		for _, to := range LegalDestinations(board, origin).Positions() {
			moves = append(moves, chess.Move{Origin: origin, Destination: to})
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// It stops at the first safe move found.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, origin := range board.Occupied(colour).Positions() {
		for _, to := range Destinations(board, origin, false).Positions() {
			if tryMove(board, chess.Move{Origin: origin, Destination: to}, colour) {
				return true
			}
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, m chess.Move, colour chess.Colour) bool {
	testBoard := *board
	applyMove(&testBoard, m)
	return !IsKingUnderAttack(&testBoard, colour)
}
