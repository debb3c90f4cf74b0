// Package server exposes live games over HTTP and WebSocket.
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/puzzle"
)

// Server is the HTTP and WebSocket front end over a GameManager.
type Server struct {
	cfg     *config.ServerConfig
	app     *fiber.App
	games   *GameManager
	puzzles *puzzle.Database
	logger  *slog.Logger
}

// New builds a server. puzzles may be nil; accessLog receives one line per request.
func New(cfg *config.ServerConfig, puzzles *puzzle.Database, log *slog.Logger, accessLog io.Writer) *Server {
	if puzzles == nil {
		puzzles = puzzle.NewDatabase()
	}
	s := &Server{
		cfg:     cfg,
		games:   NewGameManager(cfg.MaxGames),
		puzzles: puzzles,
		logger:  log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "chessrules",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          s.handleError,
		DisableStartupMessage: true,
	})
	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{Output: accessLog}))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "games": s.games.Len()})
	})

	api := s.app.Group("/api")
	api.Get("/puzzles", s.listPuzzles)

	games := api.Group("/games")
	games.Post("/", s.createGame)
	games.Get("/:id", s.getGame)
	games.Delete("/:id", s.deleteGame)
	games.Get("/:id/reachable/:square", s.reachable)
	games.Post("/:id/moves", s.makeMove)

	origins := strings.Split(s.cfg.AllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	s.app.Get("/ws/games/:id", s.upgradeGame, websocket.New(s.serveGame, websocket.Config{
		Origins:         origins,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))
}

// App returns the underlying fiber app, for tests and embedding.
func (s *Server) App() *fiber.App {
	return s.app
}

// Games returns the live game registry.
func (s *Server) Games() *GameManager {
	return s.games
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.logger.Info("listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown stops the server, waiting for requests in flight until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// createGameRequest selects the starting position. At most one of
// Arrangement, FEN and Puzzle may be set; with none, the standard position is used.
type createGameRequest struct {
	Arrangement string `json:"arrangement"`
	Turn        string `json:"turn"`
	FEN         string `json:"fen"`
	Puzzle      *int   `json:"puzzle"`
}

func (r *createGameRequest) newGame(db *puzzle.Database) (*engine.Game, error) {
	set := 0
	for _, ok := range []bool{r.Arrangement != "", r.FEN != "", r.Puzzle != nil} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "arrangement, fen and puzzle are mutually exclusive")
	}

	switch {
	case r.Puzzle != nil:
		return db.NewGame(*r.Puzzle)
	case r.FEN != "":
		arrangement, turn, err := fen.Decode(r.FEN)
		if err != nil {
			return nil, err
		}
		return engine.NewGameFromArrangement(arrangement, turn)
	case r.Arrangement != "":
		turn := chess.White
		if r.Turn != "" {
			var err error
			if turn, err = chess.ParseColour(r.Turn); err != nil {
				return nil, err
			}
		}
		return engine.NewGameFromArrangement(r.Arrangement, turn)
	}
	return engine.NewGame()
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r *moveRequest) move() (chess.Move, error) {
	from, err := chess.ParsePosition(r.From)
	if err != nil {
		return chess.Move{}, fmt.Errorf("from: %w", err)
	}
	to, err := chess.ParsePosition(r.To)
	if err != nil {
		return chess.Move{}, fmt.Errorf("to: %w", err)
	}
	return chess.NewMove(from, to), nil
}

type createGameResponse struct {
	ID    string            `json:"id"`
	State *output.GameState `json:"state"`
}

type reachableResponse struct {
	Square       string   `json:"square"`
	Destinations []string `json:"destinations"`
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
		}
	}

	g, err := req.newGame(s.puzzles)
	if err != nil {
		return err
	}
	sess, err := s.games.Create(g)
	if err != nil {
		return err
	}
	s.logger.Debug("game created", "game", sess.ID, "arrangement", g.Arrangement(), "turn", g.Turn())

	return c.Status(fiber.StatusCreated).JSON(createGameResponse{ID: sess.ID, State: sess.State()})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	sess, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(sess.State())
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.games.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) reachable(c *fiber.Ctx) error {
	sess, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	square, err := chess.ParsePosition(c.Params("square"))
	if err != nil {
		return err
	}
	return c.JSON(reachableResponse{
		Square:       square.String(),
		Destinations: sess.Reachable(square).Strings(),
	})
}

func (s *Server) makeMove(c *fiber.Ctx) error {
	sess, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	m, err := req.move()
	if err != nil {
		return err
	}

	state, err := sess.Move(m)
	if err != nil {
		return err
	}
	s.logger.Debug("move", "game", sess.ID, "move", m.String(), "status", state.Status)
	return c.JSON(state)
}

func (s *Server) listPuzzles(c *fiber.Ctx) error {
	return c.JSON(output.NewPuzzleList(s.puzzles.All()))
}

// statusCodes maps sentinel errors to HTTP status codes.
var statusCodes = []struct {
	err  error
	code int
}{
	{errors.ErrGameNotFound, fiber.StatusNotFound},
	{errors.ErrPuzzleNotFound, fiber.StatusNotFound},
	{errors.ErrGameOver, fiber.StatusConflict},
	{errors.ErrIllegalMove, fiber.StatusUnprocessableEntity},
	{errors.ErrTooManyGames, fiber.StatusServiceUnavailable},
	{errors.ErrArrangementLength, fiber.StatusBadRequest},
	{errors.ErrKingCount, fiber.StatusBadRequest},
	{errors.ErrInvalidSquare, fiber.StatusBadRequest},
	{errors.ErrInvalidMove, fiber.StatusBadRequest},
	{errors.ErrInvalidColour, fiber.StatusBadRequest},
	{errors.ErrInvalidFEN, fiber.StatusBadRequest},
}

// statusCode returns the HTTP status for err.
func statusCode(err error) int {
	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		return fe.Code
	}
	for _, sc := range statusCodes {
		if stderrors.Is(err, sc.err) {
			return sc.code
		}
	}
	return fiber.StatusInternalServerError
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := statusCode(err)
	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
	}
	return c.Status(code).JSON(errorPayload{Error: err.Error()})
}
