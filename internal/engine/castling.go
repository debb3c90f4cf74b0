package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingDestinations returns the two-file king destinations available
// from origin. The king must be unmoved and on its home square; the
// corner rook must be an unmoved rook of the same colour. The two squares
// the king crosses must be empty, and neither they nor the king's square
// may be attacked. The B-file square is not checked on the queenside.
func castlingDestinations(board *chess.Board, origin chess.Position, attacked chess.SquareSet) chess.SquareSet {
	king := board.Get(origin)
	if king.Kind != chess.King || king.Moved {
		return 0
	}
	home := chess.HomeRank(king.Colour)
	if origin.Rank != home || origin.File != chess.KingHomeFile {
		return 0
	}
	if attacked.Has(origin) {
		return 0
	}

	var set chess.SquareSet
	for _, rookFile := range []int{chess.QueensideRookFile, chess.KingsideRookFile} {
		rook := board.Squares[home][rookFile]
		if rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.Moved {
			continue
		}
		dir := sign(rookFile - origin.File)
		safe := true
		for step := 1; step <= 2; step++ {
			crossed := chess.Position{Rank: home, File: origin.File + step*dir}
			if !board.IsEmpty(crossed) || attacked.Has(crossed) {
				safe = false
				break
			}
		}
		if safe {
			set = set.Add(chess.Position{Rank: home, File: origin.File + 2*dir})
		}
	}
	return set
}

// isCastle reports whether moving piece from origin to destination is a
// castling king move.
func isCastle(piece chess.Piece, m chess.Move) bool {
	return piece.Kind == chess.King &&
		m.Origin.Rank == m.Destination.Rank &&
		abs(m.Destination.File-m.Origin.File) == 2
}

// applyCastleRook relocates the rook that accompanies a castling king move
// and marks it moved.
func applyCastleRook(board *chess.Board, m chess.Move) {
	rank := m.Origin.Rank
	rookFile := chess.QueensideRookFile
	if m.Destination.File > m.Origin.File {
		rookFile = chess.KingsideRookFile
	}
	rookFrom := chess.Position{Rank: rank, File: rookFile}
	rookTo := chess.Position{Rank: rank, File: (m.Origin.File + m.Destination.File) / 2}

	rook := board.Get(rookFrom)
	rook.Moved = true
	board.Clear(rookFrom)
	board.Set(rookTo, rook)
}
