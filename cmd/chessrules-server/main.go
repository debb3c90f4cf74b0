// chessrules-server serves live chess games over HTTP and WebSocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/puzzle"
	"github.com/lgbarn/chessrules-go/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("chessrules-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.LogFilename != "" {
		file, err := os.OpenFile(cfg.LogFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.LogFilename, err)
			os.Exit(1)
		}
		defer file.Close()
		cfg.LogFile = file
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := cfg.NewLogger()

	var db *puzzle.Database
	if cfg.Puzzle.DatabaseFile != "" {
		var err error
		if db, err = puzzle.LoadFile(cfg.Puzzle.DatabaseFile); err != nil {
			logger.Error("loading puzzles", "file", cfg.Puzzle.DatabaseFile, "error", err)
			os.Exit(1)
		}
		logger.Info("loaded puzzles", "file", cfg.Puzzle.DatabaseFile, "count", db.Len())
	}

	srv := server.New(cfg.Server, db, logger, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen() }()

	select {
	case err := <-errc:
		if err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down", "games", srv.Games().Len())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), *grace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}
}
