package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Zobrist keys indexed by colour, kind, moved flag and square.
// The moved flag is part of the key because it changes castling options.
var (
	zobristPieces      [2][7][2][chess.ArrangementLength]uint64
	zobristBlackToMove uint64
)

func init() {
	// Fixed seed so hashes are stable across runs.
	rng := rand.New(rand.NewPCG(0x6368657373, 0x72756c6573))
	for c := range zobristPieces {
		for k := range zobristPieces[c] {
			for m := range zobristPieces[c][k] {
				for sq := range zobristPieces[c][k][m] {
					zobristPieces[c][k][m][sq] = rng.Uint64()
				}
			}
		}
	}
	zobristBlackToMove = rng.Uint64()
}

// GenerateZobristHash returns the Zobrist hash of a board with the given side to move.
func GenerateZobristHash(board *chess.Board, turn chess.Colour) uint64 {
	var hash uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() {
				continue
			}
			moved := 0
			if piece.Moved {
				moved = 1
			}
			hash ^= zobristPieces[piece.Colour][piece.Kind][moved][rank*chess.BoardSize+file]
		}
	}
	if turn == chess.Black {
		hash ^= zobristBlackToMove
	}
	return hash
}

// WeakHash is a cheap order-sensitive checksum of the arrangement, used
// as a second opinion when two Zobrist hashes collide.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for i, c := range []byte(board.Arrangement()) {
		if c != chess.EmptySymbol {
			hash += uint32(c) * uint32(i+1)
		}
	}
	return hash
}
