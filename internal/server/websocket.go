package server

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/output"
)

// MessageType names a WebSocket message.
type MessageType string

const (
	MessageTypeMove  MessageType = "move"
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// Message is the WebSocket envelope in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func mustJSON(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

const sessionLocal = "session"

// upgradeGame rejects non-WebSocket requests and unknown games before the
// upgrade, and stores the session for the connection handler.
func (s *Server) upgradeGame(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	sess, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	c.Locals(sessionLocal, sess)
	return c.Next()
}

// serveGame runs one socket: it sends the current state, then applies
// incoming moves until the client disconnects.
func (s *Server) serveGame(conn *websocket.Conn) {
	sess := conn.Locals(sessionLocal).(*Session)
	log := s.logger.With("game", sess.ID)

	if err := sess.attach(conn); err != nil {
		log.Warn("websocket attach failed", "err", err)
		conn.Close()
		return
	}
	defer sess.detach(conn)
	log.Debug("websocket connected")

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			log.Debug("websocket closed", "err", err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError(sess, conn, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if _, err := s.handleMessage(sess, msg); err != nil {
			log.Debug("websocket message rejected", "type", msg.Type, "err", err)
			s.sendError(sess, conn, err)
		}
	}
}

// handleMessage applies one client message. Successful moves reach every
// socket through the session broadcast.
func (s *Server) handleMessage(sess *Session, msg Message) (*output.GameState, error) {
	switch msg.Type {
	case MessageTypeMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, fmt.Errorf("malformed move: %w", err)
		}
		m, err := req.move()
		if err != nil {
			return nil, err
		}
		return sess.Move(m)
	default:
		return nil, fmt.Errorf("unknown message type %q", msg.Type)
	}
}

func (s *Server) sendError(sess *Session, conn *websocket.Conn, err error) {
	msg := Message{Type: MessageTypeError, Payload: mustJSON(errorPayload{Error: err.Error()})}
	if werr := sess.send(conn, msg); werr != nil {
		s.logger.Warn("websocket write failed", "game", sess.ID, "err", werr)
	}
}
