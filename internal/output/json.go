package output

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/puzzle"
)

// GameState is the JSON document describing a game.
type GameState struct {
	Arrangement          string   `json:"arrangement"`
	Board                []string `json:"board"`
	Turn                 string   `json:"turn"`
	Status               string   `json:"status"`
	Over                 bool     `json:"over"`
	InCheck              bool     `json:"inCheck"`
	MoveCount            int      `json:"moveCount"`
	FEN                  string   `json:"fen"`
	InsufficientMaterial bool     `json:"insufficientMaterial"`
	LegalMoves           []string `json:"legalMoves,omitempty"`
}

// NewGameState describes the current state of g.
func NewGameState(g *engine.Game) *GameState {
	board := g.Board()
	state := &GameState{
		Arrangement:          board.Arrangement(),
		Board:                board.Rows(),
		Turn:                 colourName(g.Turn()),
		Status:               g.Status().String(),
		Over:                 g.IsOver(),
		InCheck:              g.InCheck(),
		MoveCount:            g.MoveCount(),
		FEN:                  fen.Encode(&board, g.Turn(), g.MoveCount()),
		InsufficientMaterial: engine.HasInsufficientMaterial(&board),
	}
	for _, m := range g.LegalMoves() {
		state.LegalMoves = append(state.LegalMoves, m.String())
	}
	return state
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// JSONPuzzle is a puzzle database entry.
type JSONPuzzle struct {
	Index       int    `json:"index"`
	Arrangement string `json:"arrangement"`
	Turn        string `json:"turn"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
}

// NewPuzzleList converts puzzles to JSON entries, keeping their order.
func NewPuzzleList(puzzles []puzzle.Puzzle) []JSONPuzzle {
	out := make([]JSONPuzzle, len(puzzles))
	for i, p := range puzzles {
		out[i] = JSONPuzzle{
			Index:       i,
			Arrangement: p.Arrangement,
			Turn:        colourName(p.Turn),
			Difficulty:  p.Difficulty.String(),
			Description: p.Description,
		}
	}
	return out
}

// JSONReport is the JSON form of a puzzle analysis.
type JSONReport struct {
	Index                int    `json:"index"`
	Status               string `json:"status,omitempty"`
	InCheck              bool   `json:"inCheck"`
	LegalMoves           int    `json:"legalMoves"`
	InsufficientMaterial bool   `json:"insufficientMaterial"`
	DuplicateOf          *int   `json:"duplicateOf,omitempty"`
	Error                string `json:"error,omitempty"`
}

// NewJSONReport converts an analysis report.
func NewJSONReport(r *processing.Report) JSONReport {
	out := JSONReport{
		Index:                r.Index,
		InCheck:              r.InCheck,
		LegalMoves:           r.LegalMoves,
		InsufficientMaterial: r.InsufficientMaterial,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
		return out
	}
	out.Status = r.Status.String()
	if r.Duplicate {
		of := r.DuplicateOf
		out.DuplicateOf = &of
	}
	return out
}
