// Package highscore holds the best-score contract used by the game and its
// backends: in-memory, portable save data (gdata) and the sqlite score
// database. Writes are best effort; failures are logged, never returned to
// the simulation.
package highscore

import (
	"sync"
	"time"
)

// Store persists the single best score.
type Store interface {
	// Best returns the stored best score, or 0 if none exists.
	Best() int
	// RecordIfBetter stores score only if it beats the stored best.
	RecordIfBetter(score int)
}

// Run describes one finished run.
type Run struct {
	Score    int
	Kills    int
	MaxCombo int
	PeakRank string
	Duration time.Duration
	EndedAt  time.Time
}

// RunRecorder is implemented by stores that keep a per-run history.
type RunRecorder interface {
	RecordRun(run Run)
}

// Memory is a process-local Store.
type Memory struct {
	mu   sync.Mutex
	best int
}

// NewMemory creates an in-memory store seeded with best.
func NewMemory(best int) *Memory {
	return &Memory{best: best}
}

// Best returns the best score.
func (m *Memory) Best() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

// RecordIfBetter keeps the maximum.
func (m *Memory) RecordIfBetter(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.best {
		m.best = score
	}
}
