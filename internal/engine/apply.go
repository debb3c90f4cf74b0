package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// applyMove moves the piece on m.Origin to m.Destination without any
// legality checks. A captured piece is discarded. A king moving two files
// also relocates its rook, and any king or rook that moves is marked moved.
func applyMove(board *chess.Board, m chess.Move) {
	piece := board.Get(m.Origin)
	if piece.IsEmpty() {
		return
	}
	if isCastle(piece, m) {
		applyCastleRook(board, m)
	}
	if piece.Kind == chess.King || piece.Kind == chess.Rook {
		piece.Moved = true
	}
	board.Clear(m.Origin)
	board.Set(m.Destination, piece)
}

// ApplyMove returns a copy of board with m applied, or false if m is not
// legal for the piece on its origin.
func ApplyMove(board *chess.Board, m chess.Move) (*chess.Board, bool) {
	if !LegalDestinations(board, m.Origin).Has(m.Destination) {
		return nil, false
	}
	next := board.Copy()
	applyMove(next, m)
	return next, true
}
