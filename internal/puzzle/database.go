package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Database is an ordered collection of distinct puzzles.
// It is not safe for concurrent mutation.
type Database struct {
	puzzles []Puzzle
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{}
}

// LoadFile reads a database file.
func LoadFile(filename string) (*Database, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open puzzle database: %w", err)
	}
	defer file.Close()

	db, err := Load(file)
	return db, withFile(err, filename)
}

// Load reads a database: a line holding the record count, followed by that
// many two-line records. Duplicate records are dropped.
func Load(r io.Reader) (*Database, error) {
	lr := newLineReader(r)

	header, ok := lr.next()
	if !ok {
		return nil, lr.fail(fmt.Errorf("missing record count: %w", errors.ErrMalformedPuzzle), "")
	}
	count, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || count < 0 {
		return nil, lr.fail(fmt.Errorf("bad record count: %w", errors.ErrMalformedPuzzle), header)
	}

	db := NewDatabase()
	for i := 0; i < count; i++ {
		p, err := lr.record()
		if err != nil {
			return nil, err
		}
		db.Add(p)
	}
	return db, nil
}

// MergeFile adds the records of a header-less puzzle file.
func (db *Database) MergeFile(filename string) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("cannot open puzzle file: %w", err)
	}
	defer file.Close()

	added, err := db.Merge(file)
	return added, withFile(err, filename)
}

// Merge reads two-line records until end of input and adds those not
// already present. It returns how many were added. On a malformed record
// the database is left unchanged.
func (db *Database) Merge(r io.Reader) (int, error) {
	lr := newLineReader(r)
	var incoming []Puzzle
	for {
		if _, ok := lr.peek(); !ok {
			break
		}
		p, err := lr.record()
		if err != nil {
			return 0, err
		}
		incoming = append(incoming, p)
	}

	added := 0
	for _, p := range incoming {
		if db.Add(p) {
			added++
		}
	}
	return added, nil
}

// Add inserts p in order unless an equal puzzle is present.
func (db *Database) Add(p Puzzle) bool {
	if db.Contains(p) {
		return false
	}
	i, _ := slices.BinarySearchFunc(db.puzzles, p, Compare)
	db.puzzles = slices.Insert(db.puzzles, i, p)
	return true
}

// Contains reports whether an equal puzzle is present.
func (db *Database) Contains(p Puzzle) bool {
	return slices.ContainsFunc(db.puzzles, p.Equal)
}

// SaveFile writes the database to filename, replacing it.
func (db *Database) SaveFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot save puzzle database: %w", err)
	}
	if err := db.Save(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Save writes the record count followed by every record.
func (db *Database) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(db.puzzles))
	for _, p := range db.puzzles {
		fmt.Fprintln(bw, p.String())
	}
	return bw.Flush()
}

// Len returns the number of puzzles.
func (db *Database) Len() int {
	return len(db.puzzles)
}

// At returns the puzzle at index i in sorted order.
func (db *Database) At(i int) (Puzzle, bool) {
	if i < 0 || i >= len(db.puzzles) {
		return Puzzle{}, false
	}
	return db.puzzles[i], true
}

// All returns a copy of the puzzles in sorted order.
func (db *Database) All() []Puzzle {
	return slices.Clone(db.puzzles)
}

// NewGame starts a game from the puzzle at index i.
func (db *Database) NewGame(i int) (*engine.Game, error) {
	p, ok := db.At(i)
	if !ok {
		return nil, errors.Wrapf(errors.ErrPuzzleNotFound, "index %d of %d", i, db.Len())
	}
	return p.NewGame()
}

// NewGame starts a game from the puzzle's arrangement and turn.
func (p Puzzle) NewGame() (*engine.Game, error) {
	return engine.NewGameFromArrangement(p.Arrangement, p.Turn)
}

// lineReader reads lines and tracks the line number for error reports.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
	pending *string
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

func (lr *lineReader) peek() (string, bool) {
	if lr.pending != nil {
		return *lr.pending, true
	}
	if !lr.scanner.Scan() {
		return "", false
	}
	text := strings.TrimSuffix(lr.scanner.Text(), "\r")
	lr.pending = &text
	return text, true
}

func (lr *lineReader) next() (string, bool) {
	text, ok := lr.peek()
	if ok {
		lr.pending = nil
		lr.line++
	}
	return text, ok
}

// record reads a details line and a description line.
func (lr *lineReader) record() (Puzzle, error) {
	details, ok := lr.next()
	if !ok {
		return Puzzle{}, lr.fail(fmt.Errorf("unexpected end of input: %w", errors.ErrMalformedPuzzle), "")
	}
	line := lr.line
	description, ok := lr.next()
	if !ok {
		return Puzzle{}, lr.fail(fmt.Errorf("missing description: %w", errors.ErrMalformedPuzzle), details)
	}

	p, err := Parse(details, description)
	if err != nil {
		if pe, ok := err.(*errors.PuzzleError); ok {
			pe.Line = line
		}
		return Puzzle{}, err
	}
	return p, nil
}

func (lr *lineReader) fail(err error, record string) error {
	if scanErr := lr.scanner.Err(); scanErr != nil {
		err = scanErr
	}
	return &errors.PuzzleError{Err: err, Line: lr.line, Record: record}
}

func withFile(err error, filename string) error {
	if pe, ok := err.(*errors.PuzzleError); ok {
		pe.File = filename
	}
	return err
}
