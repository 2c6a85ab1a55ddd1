package highscore

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

const asyncQueueSize = 16

type asyncWrite struct {
	score int
	run   *Run
}

// Async wraps a Store so writes happen on a background goroutine. Sends never
// block: when the queue is full the write is dropped and logged. Best reflects
// queued writes immediately.
type Async struct {
	inner  Store
	logger *log.Logger

	in      chan asyncWrite
	pending atomic.Int64
	wg      sync.WaitGroup

	mu     sync.RWMutex // Guards closed against sends on a closed channel
	closed bool
}

// NewAsync starts the writer goroutine for inner. Call Close to flush.
func NewAsync(inner Store, logger *log.Logger) *Async {
	if logger == nil {
		logger = log.Default()
	}
	a := &Async{
		inner:  inner,
		logger: logger,
		in:     make(chan asyncWrite, asyncQueueSize),
	}
	a.pending.Store(int64(inner.Best()))
	a.wg.Add(1)
	go a.loop()
	return a
}

func (a *Async) loop() {
	defer a.wg.Done()
	for w := range a.in {
		if w.run != nil {
			if rec, ok := a.inner.(RunRecorder); ok {
				rec.RecordRun(*w.run)
			}
			continue
		}
		a.inner.RecordIfBetter(w.score)
	}
}

// Best returns the highest of the stored and queued scores.
func (a *Async) Best() int {
	return int(a.pending.Load())
}

// RecordIfBetter queues the write without blocking. A dropped write gives
// the pending best back so the same score can be offered again.
func (a *Async) RecordIfBetter(score int) {
	var prev int64
	for {
		prev = a.pending.Load()
		if int64(score) <= prev {
			return
		}
		if a.pending.CompareAndSwap(prev, int64(score)) {
			break
		}
	}
	if !a.enqueue(asyncWrite{score: score}) {
		a.pending.CompareAndSwap(int64(score), prev)
	}
}

// RecordRun queues a run record if the inner store keeps history.
func (a *Async) RecordRun(run Run) {
	if _, ok := a.inner.(RunRecorder); !ok {
		return
	}
	a.enqueue(asyncWrite{run: &run})
}

func (a *Async) enqueue(w asyncWrite) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return false
	}
	select {
	case a.in <- w:
		return true
	default:
		a.logger.Warn("highscore write dropped", "score", w.score, "queue", asyncQueueSize)
		return false
	}
}

// Close stops accepting writes and waits for queued ones to finish.
func (a *Async) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.in)
	}
	a.mu.Unlock()
	a.wg.Wait()
}
