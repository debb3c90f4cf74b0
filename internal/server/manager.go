package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// Session is a live game and the sockets watching it.
// mu serializes moves, reads and socket writes for the game.
type Session struct {
	ID string

	mu    sync.Mutex
	game  *engine.Game
	conns map[socket]struct{}
}

// socket is the write side of a watching WebSocket connection.
type socket interface {
	WriteJSON(v interface{}) error
	Close() error
}

func newSession(id string, g *engine.Game) *Session {
	return &Session{
		ID:    id,
		game:  g,
		conns: make(map[socket]struct{}),
	}
}

// State returns the current game state.
func (s *Session) State() *output.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return output.NewGameState(s.game)
}

// Reachable returns the legal destinations of the piece on p.
func (s *Session) Reachable(p chess.Position) chess.SquareSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ReachableFrom(p)
}

// Move plays m and sends the new state to every socket of the session.
func (s *Session) Move(m chess.Move) (*output.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.Move(m); err != nil {
		return nil, err
	}
	state := output.NewGameState(s.game)
	s.broadcastLocked(Message{Type: MessageTypeState, Payload: mustJSON(state)})
	return state, nil
}

// attach sends conn the current state and registers it. A conn whose first
// write fails is not registered.
func (s *Session) attach(conn socket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := conn.WriteJSON(Message{Type: MessageTypeState, Payload: mustJSON(output.NewGameState(s.game))}); err != nil {
		return err
	}
	s.conns[conn] = struct{}{}
	return nil
}

func (s *Session) detach(conn socket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

// send writes one message to conn.
func (s *Session) send(conn socket, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return conn.WriteJSON(msg)
}

// broadcastLocked writes msg to every socket, dropping those that fail.
func (s *Session) broadcastLocked(msg Message) {
	for conn := range s.conns {
		if err := conn.WriteJSON(msg); err != nil {
			delete(s.conns, conn)
			conn.Close()
		}
	}
}

func (s *Session) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.Close()
		delete(s.conns, conn)
	}
}

// GameManager holds the live games by ID.
type GameManager struct {
	games    map[string]*Session
	maxGames int
	mu       sync.RWMutex
}

// NewGameManager creates a manager. maxGames of 0 means unlimited.
func NewGameManager(maxGames int) *GameManager {
	return &GameManager{
		games:    make(map[string]*Session),
		maxGames: maxGames,
	}
}

// Create registers g under a new ID.
func (gm *GameManager) Create(g *engine.Game) (*Session, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.maxGames > 0 && len(gm.games) >= gm.maxGames {
		return nil, fmt.Errorf("limit %d: %w", gm.maxGames, errors.ErrTooManyGames)
	}
	id := uuid.New().String()
	s := newSession(id, g)
	gm.games[id] = s
	return s, nil
}

// Get returns the session with the given ID.
func (gm *GameManager) Get(id string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, ok := gm.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	return s, nil
}

// Delete removes a session and closes its sockets.
func (gm *GameManager) Delete(id string) error {
	gm.mu.Lock()
	s, ok := gm.games[id]
	delete(gm.games, id)
	gm.mu.Unlock()

	if !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	s.closeAll()
	return nil
}

// Len returns the number of live games.
func (gm *GameManager) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
