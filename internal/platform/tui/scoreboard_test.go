package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/swordrush/internal/storage"
)

type fakeHistory struct {
	runs []storage.RunEntry
	err  error
}

func (f fakeHistory) TopRuns(_ string, limit int) ([]storage.RunEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.runs[:min(limit, len(f.runs))], nil
}

func TestScoreboardStates(t *testing.T) {
	runs := []storage.RunEntry{
		{Score: 40, Kills: 18, MaxCombo: 12, PeakRank: "S", DurationMs: 95_000, CreatedAt: time.Now()},
		{Score: 25, Kills: 14, MaxCombo: 21, PeakRank: "SSS", DurationMs: 61_000, CreatedAt: time.Now()},
		{Score: 3, Kills: 3, MaxCombo: 3, PeakRank: "C", DurationMs: 9_000, CreatedAt: time.Now()},
	}

	tests := []struct {
		name    string
		history RunHistory
		want    []string
	}{
		{"no history", nil, []string{"needs the sqlite store", "Best: 40"}},
		{"load error", fakeHistory{err: errors.New("locked")}, []string{"Could not load"}},
		{"empty", fakeHistory{}, []string{"No runs recorded yet"}},
		{"runs", fakeHistory{runs: runs}, []string{"3 runs", "35 kills", "best combo 21", "peak rank SSS", "1:35"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.history, "swordrush", 40, 100, 30)
			view := m.View()
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("view missing %q", w)
				}
			}
		})
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "swordrush", 0, 80, 24)

	next, _ := m.Update(runeKey("b"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}

	next, _ = m.Update(runeKey("q"))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestRankOrder(t *testing.T) {
	if rankOrder("SSS") <= rankOrder("SS") || rankOrder("A") <= rankOrder("D") {
		t.Error("rank names out of order")
	}
	if rankOrder("Z") != -1 {
		t.Errorf("unknown rank = %d, want -1", rankOrder("Z"))
	}
}
