// Package worker provides a worker pool for replaying many games in
// parallel. Positions are immutable values, so jobs share nothing and need
// no locking.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/phaul/chessdb/internal/chess"
	"github.com/phaul/chessdb/internal/engine"
)

// ReplayJob is one game to replay: a starting position and its move
// descriptors.
type ReplayJob struct {
	Start engine.Position
	Moves []chess.Move
	Index int // Original index for tracking
}

// ReplayResult is the outcome of replaying one job.
type ReplayResult struct {
	Positions []engine.Position // Ply history, start position first
	Index     int
	Err       error
}

// Pool manages a pool of workers replaying jobs in parallel. Results are
// delivered on a channel in completion order; use Index to reassociate them
// with their jobs.
type Pool struct {
	numWorkers int
	workChan   chan ReplayJob
	resultChan chan ReplayResult
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// NewPool creates a worker pool with the specified number of workers and
// channel buffer size.
func NewPool(numWorkers, bufferSize int) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		workChan:   make(chan ReplayJob, bufferSize),
		resultChan: make(chan ReplayResult, bufferSize),
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker replays jobs from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		positions, err := engine.Replay(job.Start, job.Moves)
		p.resultChan <- ReplayResult{
			Positions: positions,
			Index:     job.Index,
			Err:       err,
		}
	}
}

// Submit submits a job for replaying. This may block if the work channel
// buffer is full.
func (p *Pool) Submit(job ReplayJob) {
	p.workChan <- job
}

// Stop signals workers to stop processing new jobs. Jobs already in the
// channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After Close returns, the result channel is closed.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading replayed games.
func (p *Pool) Results() <-chan ReplayResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
