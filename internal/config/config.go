// Package config provides configuration for the chessrules binaries.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // progress and warnings
	Verbose = 2 // running commentary
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=normal, 2=running commentary

	// File handling
	OutputFilename string
	LogFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Server *ServerConfig
	Puzzle *PuzzleConfig
	Output *OutputConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Server:     NewServerConfig(),
		Puzzle:     NewPuzzleConfig(),
		Output:     NewOutputConfig(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d not in [%d, %d]: %w", c.Verbosity, Quiet, Verbose, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log writers must be set: %w", errors.ErrInvalidConfig)
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Puzzle.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// LogLevel maps Verbosity to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Verbosity <= Quiet:
		return slog.LevelError
	case c.Verbosity == Normal:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// NewLogger returns a text logger writing to LogFile at LogLevel.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(c.LogFile, &slog.HandlerOptions{Level: c.LogLevel()}))
}
