package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

// GameWriter writes game states in one output format.
type GameWriter interface {
	// WriteGame writes the current state of a game.
	WriteGame(g *engine.Game) error

	// Flush writes any buffered output.
	Flush() error
}

// NewGameWriter returns the writer for cfg.Output.Format, writing to w.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	switch cfg.Format {
	case config.JSON:
		return NewJSONWriter(w, cfg.Indent)
	case config.FEN:
		return &FENWriter{w: w}
	default:
		return &DiagramWriter{w: w, coordinates: cfg.Coordinates}
	}
}

// DiagramWriter writes a diagram followed by a status line.
type DiagramWriter struct {
	w           io.Writer
	coordinates bool
}

// WriteGame writes the board diagram and whose turn it is or how the game ended.
func (dw *DiagramWriter) WriteGame(g *engine.Game) error {
	board := g.Board()
	if err := WriteDiagram(dw.w, &board, 0, dw.coordinates); err != nil {
		return err
	}
	_, err := fmt.Fprintln(dw.w, StatusLine(g))
	return err
}

// Flush is a no-op; diagrams are written immediately.
func (dw *DiagramWriter) Flush() error {
	return nil
}

// StatusLine describes whose move it is, or the result of a finished game.
func StatusLine(g *engine.Game) string {
	if g.IsOver() {
		return "Game over: " + g.Status().String()
	}
	line := g.Turn().String() + " to move"
	if g.InCheck() {
		line += " (in check)"
	}
	return line
}

// FENWriter writes one FEN line per game.
type FENWriter struct {
	w io.Writer
}

// WriteGame writes the FEN of the game's position.
func (fw *FENWriter) WriteGame(g *engine.Game) error {
	board := g.Board()
	_, err := fmt.Fprintln(fw.w, fen.Encode(&board, g.Turn(), g.MoveCount()))
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// JSONWriter writes one GameState document per game.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSON writer, pretty-printing when indent is set.
func NewJSONWriter(w io.Writer, indent bool) *JSONWriter {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return &JSONWriter{enc: enc}
}

// WriteGame encodes the game state.
func (jw *JSONWriter) WriteGame(g *engine.Game) error {
	return jw.enc.Encode(NewGameState(g))
}

// WriteValue encodes any JSON value with the writer's settings.
func (jw *JSONWriter) WriteValue(v interface{}) error {
	return jw.enc.Encode(v)
}

// Flush is a no-op; the encoder writes through.
func (jw *JSONWriter) Flush() error {
	return nil
}
