// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Starting position
	arrangementFlag = flag.String("arrangement", "", "64-character starting arrangement (default: standard)")
	turnFlag        = flag.String("turn", "WHITE", "Side to move with -arrangement: WHITE or BLACK")
	fenFlag         = flag.String("fen", "", "Starting position as FEN")
	puzzleIndex     = flag.Int("puzzle", -1, "Start from puzzle N of the -puzzles database")

	// Moves and queries
	movesFlag = flag.String("moves", "", "Comma-separated square-pair moves to apply (e.g. 'E2E4,E7E5')")
	fromFlag  = flag.String("from", "", "Show the squares reachable from this square")

	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	outputFormat  = flag.String("format", "", "Output format: diagram, json, fen")
	noCoordinates = flag.Bool("nocoords", false, "Omit rank and file labels from diagrams")
	compactJSON   = flag.Bool("compact", false, "Don't indent JSON output")

	// Puzzle database
	puzzleFile   = flag.String("puzzles", "", "Puzzle database file")
	listPuzzles  = flag.Bool("list", false, "List the puzzles in the database")
	checkPuzzles = flag.Bool("check", false, "Analyse every puzzle position")
	mergeFile    = flag.String("merge", "", "Merge puzzles from this file into the database")
	savePuzzles  = flag.Bool("save", false, "Write the database back after -merge")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", config.Normal, "Verbosity: 0=errors, 1=normal, 2=debug")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of analysis workers (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}
	applyContentFlags(cfg)
	applyPuzzleFlags(cfg)

	cfg.Verbosity = *verbosity
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile
	return nil
}

// applyOutputFormatFlags configures the output format. -J wins over -format.
func applyOutputFormatFlags(cfg *config.Config) error {
	switch {
	case *jsonOutput:
		cfg.Output.Format = config.JSON
	case *outputFormat != "":
		format, err := config.ParseOutputFormat(*outputFormat)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	default:
		cfg.Output.Format = config.Diagram
	}
	return nil
}

// applyContentFlags configures diagram and JSON layout.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.Coordinates = !*noCoordinates
	cfg.Output.Indent = !*compactJSON
}

// applyPuzzleFlags configures the puzzle database settings.
func applyPuzzleFlags(cfg *config.Config) {
	cfg.Puzzle.DatabaseFile = *puzzleFile
	cfg.Puzzle.SaveAfterMerge = *savePuzzles
	if *workers > 0 {
		cfg.Puzzle.Workers = *workers
	}
}
