package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/puzzle"
)

func testPuzzle(i int) puzzle.Puzzle {
	return puzzle.Puzzle{
		Arrangement: chess.StandardArrangement,
		Turn:        chess.Colour(i % 2),
		Difficulty:  puzzle.Unspecified,
	}
}

// noopProcessFunc echoes the item back.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Puzzle: item.Puzzle, Index: item.Index}
	}
}

// countingProcessFunc increments counter for each item.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Puzzle: item.Puzzle, Index: item.Index, Analysis: item.Puzzle.Turn}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Puzzle: testPuzzle(i), Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Puzzle: testPuzzle(i), Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	results := collectResults(pool)

	if processed := int(atomic.LoadInt32(&processedCount)); processed != results {
		t.Errorf("processed = %d, results = %d; want equal", processed, results)
	}
	if results >= numItems {
		t.Logf("early stop did not skip any items: %d processed", results)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

func TestPoolTrySubmit(t *testing.T) {
	release := make(chan struct{})
	blockingFunc := func(item WorkItem) ProcessResult {
		<-release
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(blockingFunc, WithWorkers(1), WithBufferSize(2))
	pool.Start()

	if !pool.TrySubmit(WorkItem{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(WorkItem{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}

	// A third may or may not fit depending on whether the worker has taken item 0.
	pool.TrySubmit(WorkItem{Index: 2})

	pool.Stop()
	if pool.TrySubmit(WorkItem{Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}

	close(release)
	go pool.Close()
	collectResults(pool)
}

func TestPoolResultIndices(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Puzzle: item.Puzzle, Index: item.Index}
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Puzzle: testPuzzle(i), Index: i})
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
		if want := chess.Colour(result.Index % 2); result.Puzzle.Turn != want {
			t.Errorf("result %d turn = %v; want %v", result.Index, result.Puzzle.Turn, want)
		}
	}

	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Puzzle: testPuzzle(i), Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 16},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 16},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 16},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if got := cap(pool.workChan); got != tt.wantBuffer {
				t.Errorf("cap(workChan) = %d; want %d", got, tt.wantBuffer)
			}
		})
	}
}
