package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/highscore"
)

func withFlags(t *testing.T, store, db, difficulty string) {
	t.Helper()
	oldStore, oldDB, oldDiff := flagStore, flagDBPath, flagDifficulty
	flagStore, flagDBPath, flagDifficulty = store, db, difficulty
	t.Cleanup(func() {
		flagStore, flagDBPath, flagDifficulty = oldStore, oldDB, oldDiff
	})
}

func TestLoadGameConfigPresets(t *testing.T) {
	base := config.DefaultSwordRushConfig()

	tests := []struct {
		difficulty string
		wantLabel  string
		wantErr    bool
	}{
		{"", "normal", false},
		{"easy", "easy", false},
		{"hard", "hard", false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			withFlags(t, storeMemory, "", tt.difficulty)

			cfg, label, err := loadGameConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadGameConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}
			if cfg.Player.Lives != base.Player.Lives {
				t.Errorf("lives = %d, want %d", cfg.Player.Lives, base.Player.Lives)
			}
		})
	}
}

func TestOpenScoresBackends(t *testing.T) {
	logger := log.New(io.Discard)

	t.Run("memory", func(t *testing.T) {
		withFlags(t, storeMemory, "", "")
		sd, err := openScores(logger)
		if err != nil {
			t.Fatalf("openScores: %v", err)
		}
		defer sd.close()
		if _, ok := sd.scores.(*highscore.Memory); !ok {
			t.Errorf("scores = %T, want *highscore.Memory", sd.scores)
		}
		if sd.history != nil {
			t.Error("memory backend should have no history")
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		withFlags(t, storeSQLite, filepath.Join(t.TempDir(), "scores.db"), "")
		sd, err := openScores(logger)
		if err != nil {
			t.Fatalf("openScores: %v", err)
		}
		if _, ok := sd.scores.(*highscore.Async); !ok {
			t.Errorf("scores = %T, want *highscore.Async", sd.scores)
		}
		if sd.history == nil {
			t.Error("sqlite backend should expose history")
		}
		sd.scores.RecordIfBetter(12)
		sd.close()

		// Reopen and check the write was flushed on close.
		sd, err = openScores(logger)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		defer sd.close()
		if got := sd.scores.Best(); got != 12 {
			t.Errorf("Best() after reopen = %d, want 12", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		withFlags(t, "redis", "", "")
		if _, err := openScores(logger); err == nil {
			t.Error("expected error for unknown store")
		}
	})
}
