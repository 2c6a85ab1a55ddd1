package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swordrush/internal/highscore"
)

// Highscores adapts a Store to the highscore.Store contract for one game.
// Errors are logged and swallowed so the game loop never sees them.
type Highscores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// Highscores returns the best-score view of gameID.
func (s *Store) Highscores(gameID string, logger *log.Logger) *Highscores {
	if logger == nil {
		logger = log.Default()
	}
	return &Highscores{store: s, gameID: gameID, logger: logger}
}

// Best returns the stored best score, or 0 on error.
func (h *Highscores) Best() int {
	best, err := h.store.HighScore(h.gameID)
	if err != nil {
		h.logger.Error("read best score", "game", h.gameID, "err", err)
		return 0
	}
	return best
}

// RecordIfBetter stores score if it beats the best.
func (h *Highscores) RecordIfBetter(score int) {
	updated, err := h.store.RecordBest(h.gameID, score)
	if err != nil {
		h.logger.Error("record best score", "game", h.gameID, "score", score, "err", err)
		return
	}
	if updated {
		h.logger.Info("new best score", "game", h.gameID, "score", score)
	}
}

// RecordRun appends the run to the history.
func (h *Highscores) RecordRun(run highscore.Run) {
	_, err := h.store.SaveRun(RunEntry{
		GameID:     h.gameID,
		Score:      run.Score,
		Kills:      run.Kills,
		MaxCombo:   run.MaxCombo,
		PeakRank:   run.PeakRank,
		DurationMs: run.Duration.Milliseconds(),
	})
	if err != nil {
		h.logger.Error("save run", "game", h.gameID, "err", err)
	}
}

var (
	_ highscore.Store       = (*Highscores)(nil)
	_ highscore.RunRecorder = (*Highscores)(nil)
)
