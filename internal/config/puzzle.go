package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PuzzleConfig holds settings for the puzzle database and its analysis.
type PuzzleConfig struct {
	// DatabaseFile is the puzzle database path ("" = none)
	DatabaseFile string

	// Workers is the number of goroutines used to analyse puzzles
	Workers int

	// SaveAfterMerge writes the database back after merging a file
	SaveAfterMerge bool
}

// NewPuzzleConfig creates a PuzzleConfig with default values.
func NewPuzzleConfig() *PuzzleConfig {
	return &PuzzleConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the puzzle configuration is usable.
func (p *PuzzleConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
