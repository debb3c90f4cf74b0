package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/puzzle"
)

// startOptions selects the starting position. At most one of arrangement,
// fen and puzzle (>= 0) may be set; none means the standard position.
type startOptions struct {
	arrangement string
	turn        string
	fen         string
	puzzle      int
}

// startGame creates the game described by opts. db is only consulted for puzzles.
func startGame(opts startOptions, db *puzzle.Database) (*engine.Game, error) {
	set := 0
	for _, ok := range []bool{opts.arrangement != "", opts.fen != "", opts.puzzle >= 0} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("-arrangement, -fen and -puzzle are mutually exclusive")
	}

	switch {
	case opts.puzzle >= 0:
		if db == nil {
			return nil, fmt.Errorf("-puzzle needs a -puzzles database")
		}
		return db.NewGame(opts.puzzle)
	case opts.fen != "":
		arrangement, turn, err := fen.Decode(opts.fen)
		if err != nil {
			return nil, err
		}
		return engine.NewGameFromArrangement(arrangement, turn)
	case opts.arrangement != "":
		turn, err := chess.ParseColour(opts.turn)
		if err != nil {
			return nil, err
		}
		return engine.NewGameFromArrangement(opts.arrangement, turn)
	}
	return engine.NewGame()
}

// splitMoves splits a comma-separated move list, dropping empty entries.
func splitMoves(list string) []string {
	var moves []string
	for _, field := range strings.Split(list, ",") {
		if field = strings.TrimSpace(field); field != "" {
			moves = append(moves, field)
		}
	}
	return moves
}

// applyMoves plays each move of list in order and stops at the first one
// that cannot be parsed or is refused.
func applyMoves(g *engine.Game, list string, logger *slog.Logger) error {
	for i, text := range splitMoves(list) {
		m, err := chess.ParseMove(text)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		mover := g.Turn()
		if err := g.Move(m); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, text, err)
		}
		logger.Debug("move applied", "move", m, "colour", mover, "status", g.Status())
	}
	return nil
}

// reachable is the JSON form of a -from query.
type reachable struct {
	Square       string   `json:"square"`
	Destinations []string `json:"destinations"`
}

// writeGame writes g in the configured format. With from set, diagrams
// highlight the origin and every square it can legally move to; JSON output
// gets a second document listing the destinations.
func writeGame(cfg *config.Config, g *engine.Game, from string) error {
	var origin chess.Position
	var destinations chess.SquareSet
	if from != "" {
		var err error
		if origin, err = chess.ParsePosition(from); err != nil {
			return err
		}
		destinations = g.ReachableFrom(origin)
	}

	if from != "" && cfg.Output.Format == config.Diagram {
		board := g.Board()
		highlight := destinations.Add(origin)
		if err := output.WriteDiagram(cfg.OutputFile, &board, highlight, cfg.Output.Coordinates); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cfg.OutputFile, "%s\n%s: %s\n",
			output.StatusLine(g), origin, strings.Join(destinations.Strings(), " "))
		return err
	}

	w := output.NewGameWriter(cfg.OutputFile, cfg.Output)
	if err := w.WriteGame(g); err != nil {
		return err
	}
	if jw, ok := w.(*output.JSONWriter); ok && from != "" {
		if err := jw.WriteValue(reachable{Square: origin.String(), Destinations: destinations.Strings()}); err != nil {
			return err
		}
	}
	return w.Flush()
}
