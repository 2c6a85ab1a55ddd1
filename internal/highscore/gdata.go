package highscore

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	gdataObject = "highscore"
	gdataProp   = "best"
)

type gdataRecord struct {
	Best      int       `yaml:"best"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// GData stores the best score in the platform's per-user save-data location.
// A nil manager puts the store in memory-only mode.
type GData struct {
	mu      sync.Mutex
	manager *gdata.Manager
	logger  *log.Logger
	best    int
}

// OpenGData opens the save-data area for appName.
func OpenGData(appName string, logger *log.Logger) (*GData, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("highscore: open gdata %q: %w", appName, err)
	}
	return NewGData(m, logger), nil
}

// NewGData wraps an existing manager and loads the stored best.
func NewGData(m *gdata.Manager, logger *log.Logger) *GData {
	if logger == nil {
		logger = log.Default()
	}
	g := &GData{manager: m, logger: logger}
	g.best = g.load()
	return g
}

func (g *GData) load() int {
	if g.manager == nil || !g.manager.ObjectPropExists(gdataObject, gdataProp) {
		return 0
	}
	data, err := g.manager.LoadObjectProp(gdataObject, gdataProp)
	if err != nil {
		g.logger.Warn("highscore load failed", "err", err)
		return 0
	}
	var rec gdataRecord
	if err := yaml.Unmarshal(data, &rec); err != nil || rec.Best < 0 {
		g.logger.Warn("highscore record corrupt, ignoring", "err", err)
		return 0
	}
	return rec.Best
}

// Best returns the best score.
func (g *GData) Best() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.best
}

// RecordIfBetter persists score if it is a new best.
func (g *GData) RecordIfBetter(score int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if score <= g.best {
		return
	}
	g.best = score
	if g.manager == nil {
		return
	}
	data, err := yaml.Marshal(gdataRecord{Best: score, UpdatedAt: time.Now().UTC()})
	if err != nil {
		g.logger.Error("highscore encode failed", "err", err)
		return
	}
	if err := g.manager.SaveObjectProp(gdataObject, gdataProp, data); err != nil {
		g.logger.Error("highscore save failed", "score", score, "err", err)
	}
}
