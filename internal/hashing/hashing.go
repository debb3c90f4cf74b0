// Package hashing provides position hashing and duplicate detection for
// puzzle collections.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DuplicateDetector tracks seen positions for duplicate puzzle detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	// uniqueCount is the number of stored signatures
	uniqueCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position and side to move
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// Index is the lowest collection index the position was seen at
	Index int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a position is a duplicate and adds it to the hash table.
// index identifies the position in its collection; the lowest index seen is
// kept as the original. Returns true if the position was seen before.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, turn chess.Colour, index int) bool {
	if board == nil {
		return false
	}

	sig := PositionSignature{
		Hash:     GenerateZobristHash(board, turn),
		WeakHash: WeakHash(board),
		Index:    index,
	}

	// Check for duplicates
	existing := d.hashTable[sig.Hash]
	for i := range existing {
		if existing[i].WeakHash == sig.WeakHash {
			d.duplicateCount++
			if index < existing[i].Index {
				existing[i].Index = index
			}
			return true
		}
	}

	if d.IsFull() {
		return false
	}

	// Add to hash table
	d.hashTable[sig.Hash] = append(existing, sig)
	d.uniqueCount++
	return false
}

// FirstIndex returns the lowest index a position was added with.
func (d *DuplicateDetector) FirstIndex(board *chess.Board, turn chess.Colour) (int, bool) {
	hash := GenerateZobristHash(board, turn)
	weak := WeakHash(board)
	for _, sig := range d.hashTable[hash] {
		if sig.WeakHash == weak {
			return sig.Index, true
		}
	}
	return 0, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}
