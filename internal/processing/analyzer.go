// Package processing analyses puzzle positions, singly or in parallel.
package processing

import (
	"context"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/puzzle"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Report describes a puzzle's starting position.
type Report struct {
	Index  int
	Puzzle puzzle.Puzzle
	// Status is what the game status would be if the position arose in play.
	Status               chess.Status
	InCheck              bool
	LegalMoves           int
	InsufficientMaterial bool

	// Duplicate is set when an earlier puzzle has the same arrangement and
	// side to move; DuplicateOf is that puzzle's index.
	Duplicate   bool
	DuplicateOf int

	Err error
}

// Solvable reports whether the side to move has a move to make.
func (r *Report) Solvable() bool {
	return r.Err == nil && r.Status == chess.Ongoing
}

// Analyze inspects the position a puzzle starts from.
func Analyze(index int, p puzzle.Puzzle) Report {
	report := Report{Index: index, Puzzle: p}

	board, err := chess.ParseArrangement(p.Arrangement)
	if err != nil {
		report.Err = err
		return report
	}

	report.Status = engine.StatusFor(board, p.Turn)
	report.InCheck = engine.IsKingUnderAttack(board, p.Turn)
	report.LegalMoves = len(engine.LegalMoves(board, p.Turn))
	report.InsufficientMaterial = engine.HasInsufficientMaterial(board)
	return report
}

// AnalyzeAll analyses every puzzle on a worker pool and flags repeated
// positions. Reports are returned in input order. If ctx is cancelled the
// remaining puzzles are skipped and ctx.Err() is returned with the reports
// collected so far.
func AnalyzeAll(ctx context.Context, puzzles []puzzle.Puzzle, workers int) ([]Report, error) {
	detector := hashing.NewThreadSafeDuplicateDetector(0)

	process := func(item worker.WorkItem) worker.ProcessResult {
		report := Analyze(item.Index, item.Puzzle)
		if report.Err == nil {
			board, _ := chess.ParseArrangement(item.Puzzle.Arrangement)
			detector.CheckAndAdd(board, item.Puzzle.Turn, item.Index)
		}
		return worker.ProcessResult{
			Index:    item.Index,
			Puzzle:   item.Puzzle,
			Analysis: report,
			Error:    report.Err,
		}
	}

	pool := worker.NewPool(process, worker.WithWorkers(workers), worker.WithBufferSize(workers*2))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, p := range puzzles {
			select {
			case <-ctx.Done():
				pool.Stop()
				return
			default:
			}
			pool.Submit(worker.WorkItem{Puzzle: p, Index: i})
		}
	}()

	reports := make([]Report, len(puzzles))
	done := make([]bool, len(puzzles))
	for result := range pool.Results() {
		reports[result.Index] = result.Analysis.(Report)
		done[result.Index] = true
	}

	if err := ctx.Err(); err != nil {
		var partial []Report
		for i := range reports {
			if done[i] {
				partial = append(partial, reports[i])
			}
		}
		return partial, err
	}

	markDuplicates(reports, detector)
	return reports, nil
}

// markDuplicates points every repeated position at its lowest index.
// Run after all workers finish so the outcome does not depend on scheduling.
func markDuplicates(reports []Report, detector *hashing.ThreadSafeDuplicateDetector) {
	for i := range reports {
		r := &reports[i]
		if r.Err != nil {
			continue
		}
		board, _ := chess.ParseArrangement(r.Puzzle.Arrangement)
		if first, ok := detector.FirstIndex(board, r.Puzzle.Turn); ok && first != r.Index {
			r.Duplicate = true
			r.DuplicateOf = first
		}
	}
}

// Summary totals a set of reports.
type Summary struct {
	Total      int
	Ongoing    int
	Checkmates int
	Stalemates int
	Duplicates int
	Errors     int
}

// Summarize counts report outcomes.
func Summarize(reports []Report) Summary {
	s := Summary{Total: len(reports)}
	for i := range reports {
		r := &reports[i]
		switch {
		case r.Err != nil:
			s.Errors++
			continue
		case r.Status == chess.Draw:
			s.Stalemates++
		case r.Status.IsTerminal():
			s.Checkmates++
		default:
			s.Ongoing++
		}
		if r.Duplicate {
			s.Duplicates++
		}
	}
	return s
}
