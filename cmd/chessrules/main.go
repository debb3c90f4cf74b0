// chessrules applies moves to a chess position and inspects puzzle collections.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/puzzle"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := cfg.NewLogger()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("chessrules failed", "error", err)
		os.Exit(1)
	}
}

// run performs the puzzle commands, if any, then plays the requested game.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var db *puzzle.Database
	if cfg.Puzzle.DatabaseFile != "" {
		var err error
		if db, err = loadDatabase(cfg, logger); err != nil {
			return err
		}
	}

	if db != nil && (*listPuzzles || *checkPuzzles) {
		if *listPuzzles {
			if err := writePuzzleList(cfg, db); err != nil {
				return err
			}
		}
		if *checkPuzzles {
			if err := checkDatabase(ctx, cfg, db, logger); err != nil {
				return err
			}
		}
		return nil
	}
	if db == nil && (*listPuzzles || *checkPuzzles || *puzzleIndex >= 0 || *mergeFile != "") {
		return fmt.Errorf("-list, -check, -merge and -puzzle need a -puzzles database")
	}
	if *mergeFile != "" && *movesFlag == "" && *fromFlag == "" && *puzzleIndex < 0 {
		return nil
	}

	g, err := startGame(startOptions{
		arrangement: *arrangementFlag,
		turn:        *turnFlag,
		fen:         *fenFlag,
		puzzle:      *puzzleIndex,
	}, db)
	if err != nil {
		return err
	}
	if err := applyMoves(g, *movesFlag, logger); err != nil {
		return err
	}
	return writeGame(cfg, g, *fromFlag)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if cfg.LogFilename == "" {
		return
	}

	file, err := os.Create(cfg.LogFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Applies square-pair moves to a chess position and prints the result.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessrules -moves E2E4,E7E5 -from G1\n")
	fmt.Fprintf(os.Stderr, "  chessrules -fen '6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1' -moves A1A8 -J\n")
	fmt.Fprintf(os.Stderr, "  chessrules -puzzles puzzles.txt -check\n")
	fmt.Fprintf(os.Stderr, "  chessrules -puzzles puzzles.txt -merge extra.txt -save\n")
}
