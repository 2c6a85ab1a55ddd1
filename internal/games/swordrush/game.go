// Package swordrush implements the sword-combat arena: a player swings a blade
// at enemies walking in from both sides while projectiles fall from above.
// Kills build a combo whose rank sets the score multiplier and the spawn
// pressure.
package swordrush

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
	"github.com/vovakirdan/swordrush/internal/highscore"
)

// GameID identifies the game in score storage.
const GameID = "swordrush"

// Game adapts the simulation to the frontends. It owns the logical clock,
// pause state and the highscore reconciliation at game over.
type Game struct {
	cfg     config.SwordRushConfig
	sim     *Sim
	scores  highscore.Store
	logger  *log.Logger
	runtime core.RuntimeConfig

	tick   uint64
	now    int64
	best   int
	paused bool
	last   Events
}

// New creates a game. A nil store keeps the best score in memory only.
func New(cfg config.SwordRushConfig, scores highscore.Store, logger *log.Logger) *Game {
	if scores == nil {
		scores = highscore.NewMemory(0)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := core.DefaultConfig()
	return &Game{
		cfg:     cfg,
		sim:     NewSim(cfg, rt.Seed),
		scores:  scores,
		logger:  logger,
		runtime: rt,
	}
}

// ID returns the unique identifier used for score storage.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sword Rush"
}

// Reset starts a new run and re-reads the stored best score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.restart()
}

func (g *Game) restart() {
	g.tick = 0
	g.now = 0
	g.paused = false
	g.last = Events{}
	g.best = g.scores.Best()
	g.sim.Reset(g.runtime.Seed, 0)
	g.logger.Debug("run started", "seed", g.runtime.Seed, "best", g.best)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.now = g.runtime.TickMillis(g.tick)
	g.last = g.sim.Step(g.now, in)

	if g.last.GameOver {
		g.finish()
	}
	return core.StepResult{State: g.State()}
}

// finish reconciles the highscore once the run ends.
func (g *Game) finish() {
	score := g.sim.Score()
	stats := g.sim.Stats()

	if score > g.best {
		g.best = score
	}
	g.scores.RecordIfBetter(score)
	if rec, ok := g.scores.(highscore.RunRecorder); ok {
		rec.RecordRun(highscore.Run{
			Score:    score,
			Kills:    stats.Kills,
			MaxCombo: stats.MaxCombo,
			PeakRank: stats.PeakRank.String(),
			Duration: msDuration(stats.Duration()),
		})
	}

	g.logger.Info("game over",
		"score", score,
		"best", g.best,
		"kills", stats.Kills,
		"max_combo", stats.MaxCombo,
		"peak_rank", stats.PeakRank,
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		Best:     g.best,
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
	}
}

// Snapshot returns the render view of the current tick.
func (g *Game) Snapshot() Snapshot {
	snap := g.sim.Snapshot(g.now)
	snap.Tick = g.tick
	snap.Best = max(g.best, snap.Score)
	snap.Paused = g.paused
	return snap
}

// LastEvents returns what happened on the most recent simulated tick.
func (g *Game) LastEvents() Events {
	return g.last
}

// Now returns the logical clock in milliseconds.
func (g *Game) Now() int64 {
	return g.now
}

func msDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
