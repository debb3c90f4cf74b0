// flags.go - Command-line flags with environment fallbacks
package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	addr         = flag.String("addr", getenv("CHESSRULES_ADDR", ":3000"), "Listen address")
	origins      = flag.String("origins", getenv("CHESSRULES_ORIGINS", "http://localhost:5173"), "Comma-separated allowed CORS and WebSocket origins")
	puzzleFile   = flag.String("puzzles", getenv("CHESSRULES_PUZZLES", ""), "Puzzle database file")
	maxGames     = flag.Int("max-games", getenvInt("CHESSRULES_MAX_GAMES", 0), "Maximum live games (0 = unlimited)")
	readTimeout  = flag.Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	writeTimeout = flag.Duration("write-timeout", 10*time.Second, "HTTP write timeout")
	grace        = flag.Duration("grace", 5*time.Second, "Time allowed for requests in flight at shutdown")

	logFile   = flag.String("l", "", "Write diagnostics and the access log to this file")
	verbosity = flag.Int("v", config.Normal, "Verbosity: 0=errors, 1=normal, 2=debug")
	version   = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.AllowedOrigins = *origins
	cfg.Server.MaxGames = *maxGames
	cfg.Server.ReadTimeout = *readTimeout
	cfg.Server.WriteTimeout = *writeTimeout
	cfg.Puzzle.DatabaseFile = *puzzleFile
	cfg.LogFilename = *logFile
	cfg.Verbosity = *verbosity
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
