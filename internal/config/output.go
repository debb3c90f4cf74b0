package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat selects how game states are written.
type OutputFormat int

const (
	Diagram OutputFormat = iota // Text board with coordinates
	JSON                        // JSON game-state documents
	FEN                         // One FEN line per game
)

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	switch f {
	case Diagram:
		return "diagram"
	case JSON:
		return "json"
	case FEN:
		return "fen"
	}
	return "unknown"
}

// ParseOutputFormat parses a format flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range []OutputFormat{Diagram, JSON, FEN} {
		if f.String() == s {
			return f, nil
		}
	}
	return Diagram, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects diagram, JSON or FEN output
	Format OutputFormat

	// Coordinates adds rank and file labels to diagrams
	Coordinates bool

	// Indent pretty-prints JSON output
	Indent bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Diagram,
		Coordinates: true,
		Indent:      true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < Diagram || o.Format > FEN {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
