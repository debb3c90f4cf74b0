// Package engine implements the movement rules, legality checks and game
// state machine of classical chess without en passant or promotion.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
//
// The result is informational; game status never depends on it.
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	// Count pieces for each side
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() || piece.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(rank, file)
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(rank, file)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// A8 (rank 0, file 0) is light.
func isLightSquare(rank, file int) bool {
	return (rank+file)%2 == 0
}

// Perft counts the leaf nodes of the legal move tree of the given depth
// with colour to move.
func Perft(board *chess.Board, colour chess.Colour, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, colour)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		next := *board
		applyMove(&next, m)
		nodes += Perft(&next, colour.Opposite(), depth-1)
	}
	return nodes
}
