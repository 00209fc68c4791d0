// Package worker provides a worker pool for solving independent puzzles in
// parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/solver"
)

// WorkItem is one puzzle to solve.
type WorkItem struct {
	Start  *board.Board
	Target *board.Board
	Label  string // e.g. the starting hole, for reporting
	Index  int    // Original index for tracking
}

// ProcessResult is the outcome of solving one WorkItem.
type ProcessResult struct {
	Label  string
	Index  int
	Start  *board.Board
	Result solver.Result
	Err    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// SolveFunc returns a ProcessFunc that runs s on each item. A nil s uses a
// silent solver.
func SolveFunc(s *solver.Solver) ProcessFunc {
	if s == nil {
		s = solver.New()
	}
	return func(item WorkItem) ProcessResult {
		res, err := s.Solve(item.Start, item.Target)
		return ProcessResult{
			Label:  item.Label,
			Index:  item.Index,
			Start:  item.Start,
			Result: res,
			Err:    err,
		}
	}
}

// Pool manages a pool of workers. Each search runs on one goroutine; the
// pool only spreads separate puzzles across workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
	submitted   int64
	completed   int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; by default the
// pool has one worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without solving
		}
		res := p.processFunc(item)
		atomic.AddInt64(&p.completed, 1)
		p.resultChan <- res
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	atomic.AddInt64(&p.submitted, 1)
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		atomic.AddInt64(&p.submitted, 1)
		return true
	default:
		return false
	}
}

// Stop signals workers to stop solving new items.
// Items already queued are drained but not solved.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Submitted returns the number of items accepted so far.
func (p *Pool) Submitted() int64 {
	return atomic.LoadInt64(&p.submitted)
}

// Completed returns the number of items solved so far.
func (p *Pool) Completed() int64 {
	return atomic.LoadInt64(&p.completed)
}

// SolveAll runs every item through a fresh pool and returns the results in
// submission order. When ctx is cancelled no further items are started;
// searches already running finish, skipped items keep a zero ProcessResult
// (nil Start) and the context error is returned.
func SolveAll(ctx context.Context, items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer pool.Close()
		for i, item := range items {
			if err := gCtx.Err(); err != nil {
				pool.Stop()
				return err
			}
			item.Index = i
			pool.Submit(item)
		}
		return nil
	})

	results := make([]ProcessResult, len(items))
	for res := range pool.Results() {
		results[res.Index] = res
		if ctx.Err() != nil {
			pool.Stop()
		}
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
