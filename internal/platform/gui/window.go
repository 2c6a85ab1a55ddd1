// Package gui runs the game in a desktop window through Ebitengine. The
// simulation advances on a fixed step fed from the frame clock; drawing reads
// the game snapshot only.
package gui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
	"github.com/vovakirdan/swordrush/internal/games/swordrush"
	"github.com/vovakirdan/swordrush/internal/highscore"
)

// maxFrameGap caps the time fed to the simulation after a stall.
const maxFrameGap = 250 * time.Millisecond

// Window is the ebiten.Game for the arena.
type Window struct {
	cfg     config.SwordRushConfig
	game    *swordrush.Game
	scores  highscore.Store
	runtime core.RuntimeConfig
	logger  *log.Logger
	label   string

	// fixed tick
	accum     time.Duration
	last      time.Time
	fixedStep time.Duration

	playing   bool
	fixedSeed bool
}

// NewWindow creates the window game. A zero seed is redrawn per run.
func NewWindow(cfg config.SwordRushConfig, scores highscore.Store, runtime core.RuntimeConfig, logger *log.Logger, label string) *Window {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	if scores == nil {
		scores = highscore.NewMemory(0)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		cfg:       cfg,
		game:      swordrush.New(cfg, scores, logger),
		scores:    scores,
		runtime:   runtime,
		logger:    logger,
		label:     label,
		last:      time.Now(),
		fixedStep: time.Second / time.Duration(runtime.TickRate),
		fixedSeed: runtime.Seed != 0,
	}
}

func (w *Window) start() {
	if !w.fixedSeed {
		w.runtime.Seed = time.Now().UnixNano()
	}
	w.game.Reset(w.runtime)
	w.playing = true
	w.accum = 0
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	now := time.Now()
	frameDt := now.Sub(w.last)
	w.last = now
	if frameDt > maxFrameGap {
		frameDt = maxFrameGap
	}

	edges := readEdges()
	if edges.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if !w.playing {
		if edges.Has(core.ActionConfirm) {
			w.start()
		}
		return nil
	}

	if edges.Has(core.ActionMenu) {
		w.playing = false
		return nil
	}
	if edges.Has(core.ActionRestart) {
		w.start()
		return nil
	}

	w.accum += frameDt
	for w.accum >= w.fixedStep {
		in := readHeld()
		// Toggles apply to the first step of the frame only.
		merge(&in, edges)
		edges = core.NewInputFrame()

		w.game.Step(in)
		w.accum -= w.fixedStep
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if !w.playing {
		drawTitle(screen, w.scores.Best(), w.label)
		return
	}
	drawArena(screen, w.game.Snapshot(), bladeShape{
		length: w.cfg.Weapon.BladeLength,
		width:  float32(w.cfg.Weapon.BladeWidth),
	})
}

// Layout implements ebiten.Game. The logical screen is the field itself;
// Ebitengine scales it to the window.
func (w *Window) Layout(outsideW, outsideH int) (int, int) {
	return w.cfg.Field.Width, w.cfg.Field.Height
}

// Run opens the window and blocks until it is closed.
func Run(w *Window, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w.cfg.Field.Width)*scale), int(float64(w.cfg.Field.Height)*scale))
	ebiten.SetWindowTitle("Sword Rush")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.runtime.TickRate)

	w.logger.Info("window opened", "field", w.cfg.Field, "tps", w.runtime.TickRate)
	return ebiten.RunGame(w)
}
