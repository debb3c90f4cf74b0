package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/puzzle"
)

// loadDatabase loads the configured puzzle database and applies -merge.
func loadDatabase(cfg *config.Config, logger *slog.Logger) (*puzzle.Database, error) {
	db, err := puzzle.LoadFile(cfg.Puzzle.DatabaseFile)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded puzzles", "file", cfg.Puzzle.DatabaseFile, "count", db.Len())

	if *mergeFile == "" {
		return db, nil
	}
	added, err := db.MergeFile(*mergeFile)
	if err != nil {
		return nil, err
	}
	logger.Info("merged puzzles", "file", *mergeFile, "added", added, "count", db.Len())

	if cfg.Puzzle.SaveAfterMerge && added > 0 {
		if err := db.SaveFile(cfg.Puzzle.DatabaseFile); err != nil {
			return nil, err
		}
		logger.Info("saved puzzles", "file", cfg.Puzzle.DatabaseFile)
	}
	return db, nil
}

// writePuzzleList lists the database, one puzzle per block or as a JSON array.
func writePuzzleList(cfg *config.Config, db *puzzle.Database) error {
	if cfg.Output.Format == config.JSON {
		return output.NewJSONWriter(cfg.OutputFile, cfg.Output.Indent).WriteValue(output.NewPuzzleList(db.All()))
	}
	for i, p := range db.All() {
		if _, err := fmt.Fprintf(cfg.OutputFile, "%d: %s [%s] %s\n", i, p.Turn, p.Difficulty, p.Description); err != nil {
			return err
		}
	}
	return nil
}

// checkDatabase analyses every puzzle and reports problems. A summary is
// logged; reports are written as JSON or as one line per notable puzzle.
func checkDatabase(ctx context.Context, cfg *config.Config, db *puzzle.Database, logger *slog.Logger) error {
	reports, err := processing.AnalyzeAll(ctx, db.All(), cfg.Puzzle.Workers)
	if err != nil {
		return err
	}

	summary := processing.Summarize(reports)
	logger.Info("checked puzzles",
		"total", summary.Total,
		"ongoing", summary.Ongoing,
		"checkmates", summary.Checkmates,
		"stalemates", summary.Stalemates,
		"duplicates", summary.Duplicates,
		"errors", summary.Errors)

	if cfg.Output.Format == config.JSON {
		out := make([]output.JSONReport, len(reports))
		for i := range reports {
			out[i] = output.NewJSONReport(&reports[i])
		}
		return output.NewJSONWriter(cfg.OutputFile, cfg.Output.Indent).WriteValue(out)
	}

	for i := range reports {
		if line := reportLine(&reports[i]); line != "" {
			if _, err := fmt.Fprintln(cfg.OutputFile, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// reportLine describes a puzzle that cannot be played as a puzzle, or "".
func reportLine(r *processing.Report) string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%d: invalid: %v", r.Index, r.Err)
	case r.Duplicate:
		return fmt.Sprintf("%d: duplicate of %d", r.Index, r.DuplicateOf)
	case !r.Solvable():
		return fmt.Sprintf("%d: already decided: %s", r.Index, r.Status)
	}
	return ""
}
