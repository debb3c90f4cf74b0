package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Offsets are (rank, file) deltas.
var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs      = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// slidingDirs returns the ray directions of a bishop, rook or queen.
func slidingDirs(kind chess.Kind) [][2]int {
	switch kind {
	case chess.Bishop:
		return diagonalDirs
	case chess.Rook:
		return orthogonalDirs
	case chess.Queen:
		return queenDirs
	}
	return nil
}

// Destinations returns the squares the piece on origin may move to under
// its movement pattern, before self-check filtering.
//
// With includeDefended false a target holding a friendly piece is skipped,
// and a king also skips every square the opponent attacks but gains its
// castling squares. With includeDefended true the result is the piece's
// attack footprint: occupied targets count regardless of colour and a king
// contributes its raw adjacency pattern. A pawn keeps its pushes onto empty
// squares but claims a diagonal only while something stands on it.
//
// An empty origin yields an empty set.
func Destinations(board *chess.Board, origin chess.Position, includeDefended bool) chess.SquareSet {
	piece := board.Get(origin)
	switch piece.Kind {
	case chess.Pawn:
		return pawnDestinations(board, origin, piece.Colour, includeDefended)
	case chess.Knight:
		return stepDestinations(board, origin, piece.Colour, knightOffsets, includeDefended)
	case chess.Bishop, chess.Rook, chess.Queen:
		return slidingDestinations(board, origin, piece.Colour, slidingDirs(piece.Kind), includeDefended)
	case chess.King:
		if includeDefended {
			return kingPattern(board, origin, piece.Colour, true)
		}
		return kingDestinations(board, origin, piece.Colour)
	}
	return 0
}

// canLandOn reports whether a piece of the given colour may finish on p.
func canLandOn(board *chess.Board, p chess.Position, colour chess.Colour, includeDefended bool) bool {
	target := board.Get(p)
	return target.IsEmpty() || includeDefended || target.Colour != colour
}

// stepDestinations handles fixed-offset movers (knight, king pattern).
func stepDestinations(board *chess.Board, origin chess.Position, colour chess.Colour, offsets [][2]int, includeDefended bool) chess.SquareSet {
	var set chess.SquareSet
	for _, offset := range offsets {
		to, ok := origin.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		if canLandOn(board, to, colour, includeDefended) {
			set = set.Add(to)
		}
	}
	return set
}

// slidingDestinations ray-casts along each direction, stopping at the
// first occupied square.
func slidingDestinations(board *chess.Board, origin chess.Position, colour chess.Colour, dirs [][2]int, includeDefended bool) chess.SquareSet {
	var set chess.SquareSet
	for _, dir := range dirs {
		to, ok := origin.Offset(dir[0], dir[1])
		for ok {
			if !board.IsEmpty(to) {
				if canLandOn(board, to, colour, includeDefended) {
					set = set.Add(to)
				}
				break // Blocked
			}
			set = set.Add(to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return set
}

// kingPattern is the king's adjacency without attack filtering or castling.
// Attack sets use it for an opposing king so that king legality never
// recurses into itself.
func kingPattern(board *chess.Board, origin chess.Position, colour chess.Colour, includeDefended bool) chess.SquareSet {
	return stepDestinations(board, origin, colour, kingOffsets, includeDefended)
}

// kingDestinations is the king's pattern minus opponent-attacked squares,
// plus any castling destinations.
func kingDestinations(board *chess.Board, origin chess.Position, colour chess.Colour) chess.SquareSet {
	attacked := AttackedSquares(board, colour.Opposite())
	set := kingPattern(board, origin, colour, false) &^ attacked
	return set.Union(castlingDestinations(board, origin, attacked))
}
