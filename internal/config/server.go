package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP and WebSocket server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3000"
	Addr string

	// AllowedOrigins is a comma-separated CORS origin list
	AllowedOrigins string

	// ReadTimeout and WriteTimeout bound a single HTTP exchange
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MaxGames caps the number of live games (0 = unlimited)
	MaxGames int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:           ":3000",
		AllowedOrigins: "http://localhost:5173",
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
	}
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 {
		return fmt.Errorf("negative server timeout: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("max games (%d) < 0: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
