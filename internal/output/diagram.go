// Package output writes game states as text diagrams, JSON documents or FEN.
package output

import (
	"bufio"
	"io"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// fileLabels is the diagram footer.
const fileLabels = "   A  B  C  D  E  F  G  H"

// WriteDiagram writes board as eight rows of bracketed cells, rank 8 first.
// Squares in highlight are wrapped in '*' instead of brackets. With
// coordinates, each row is prefixed by its rank and a file footer follows.
func WriteDiagram(w io.Writer, board *chess.Board, highlight chess.SquareSet, coordinates bool) error {
	bw := bufio.NewWriter(w)
	for rank := 0; rank < chess.BoardSize; rank++ {
		if coordinates {
			bw.WriteString(strconv.Itoa(chess.BoardSize - rank))
			bw.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			left, right := byte('['), byte(']')
			if highlight.Has(chess.Position{Rank: rank, File: file}) {
				left, right = '*', '*'
			}
			symbol := byte(' ')
			if piece := board.Squares[rank][file]; !piece.IsEmpty() {
				symbol = piece.Symbol()
			}
			bw.Write([]byte{left, symbol, right})
		}
		bw.WriteByte('\n')
	}
	if coordinates {
		bw.WriteString(fileLabels)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
