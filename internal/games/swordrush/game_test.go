package swordrush

import (
	"strings"
	"testing"

	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
	"github.com/vovakirdan/swordrush/internal/highscore"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// runStore records every call the game makes at game over.
type runStore struct {
	highscore.Memory
	runs []highscore.Run
}

func (r *runStore) RecordRun(run highscore.Run) {
	r.runs = append(r.runs, run)
}

func TestGamePauseFreezesClock(t *testing.T) {
	g := New(quietConfig(), nil, nil)
	g.Reset(testRuntime(1))

	for i := 0; i < 3; i++ {
		g.Step(idle)
	}
	if g.Now() != 50 {
		t.Fatalf("now after 3 ticks = %d, want 50", g.Now())
	}

	g.Step(core.FrameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause not toggled on")
	}
	for i := 0; i < 10; i++ {
		g.Step(idle)
	}
	if g.Now() != 50 || g.Snapshot().Tick != 3 {
		t.Errorf("clock advanced while paused: now=%d tick=%d", g.Now(), g.Snapshot().Tick)
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.State().Paused {
		t.Fatal("pause not toggled off")
	}
	if g.Snapshot().Tick != 4 {
		t.Errorf("tick after resume = %d, want 4", g.Snapshot().Tick)
	}
}

func TestGameRecordsBestAtGameOver(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Lives = 1
	store := &runStore{}
	store.RecordIfBetter(10)

	g := New(cfg, store, nil)
	g.Reset(testRuntime(1))
	if g.State().Best != 10 {
		t.Fatalf("best at start = %d, want 10", g.State().Best)
	}

	g.sim.score = 42
	addEnemy(g.sim, g.sim.player.X, -1)
	res := g.Step(idle)

	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if res.State.Best != 42 || store.Best() != 42 {
		t.Errorf("best = %d, stored = %d, want 42", res.State.Best, store.Best())
	}
	if len(store.runs) != 1 || store.runs[0].Score != 42 {
		t.Errorf("runs = %+v", store.runs)
	}

	// Further ticks must not record again.
	g.Step(idle)
	if len(store.runs) != 1 {
		t.Errorf("run recorded %d times", len(store.runs))
	}
}

func TestGameLowScoreKeepsBest(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Lives = 1
	store := highscore.NewMemory(100)

	g := New(cfg, store, nil)
	g.Reset(testRuntime(1))
	g.sim.score = 5
	addEnemy(g.sim, g.sim.player.X, -1)
	g.Step(idle)

	if store.Best() != 100 || g.State().Best != 100 {
		t.Errorf("best dropped to %d/%d", store.Best(), g.State().Best)
	}
}

func TestGameRestart(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Lives = 1
	g := New(cfg, nil, nil)
	g.Reset(testRuntime(1))

	g.sim.score = 7
	addEnemy(g.sim, g.sim.player.X, -1)
	g.Step(idle)
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	res := g.Step(core.FrameOf(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("state after restart = %+v", res.State)
	}
	if res.State.Best != 7 {
		t.Errorf("best after restart = %d, want 7", res.State.Best)
	}
	if g.sim.Lives() != 1 || g.Now() != 0 {
		t.Errorf("restart left lives=%d now=%d", g.sim.Lives(), g.Now())
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultSwordRushConfig()
	run := func() Snapshot {
		g := New(cfg, nil, nil)
		g.Reset(testRuntime(12345))
		bot := NewAutopilot(cfg)
		for i := 0; i < 3600 && !g.State().GameOver; i++ {
			g.Step(bot.Decide(g.Snapshot()))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.Score != b.Score || a.Lives != b.Lives {
		t.Errorf("runs diverged: tick %d/%d score %d/%d lives %d/%d",
			a.Tick, b.Tick, a.Score, b.Score, a.Lives, b.Lives)
	}
	if a.Stats != b.Stats {
		t.Errorf("stats diverged: %+v vs %+v", a.Stats, b.Stats)
	}
	if len(a.Enemies) != len(b.Enemies) || len(a.Projectiles) != len(b.Projectiles) {
		t.Errorf("entity counts diverged")
	}
	if a.Player != b.Player {
		t.Errorf("player diverged: %+v vs %+v", a.Player, b.Player)
	}
}

func TestGameRender(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Lives = 1
	g := New(cfg, nil, nil)
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Step(core.FrameOf(core.ActionAttack))
	g.Render(screen)

	hud, _, _ := strings.Cut(screen.String(), "\n")
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(screen.String(), BladeChar) {
		t.Error("blade not drawn mid-swing")
	}

	addEnemy(g.sim, g.sim.player.X, -1)
	for !g.State().GameOver {
		g.Step(idle)
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultSwordRushConfig(), nil, nil)
	g.Reset(testRuntime(1))
	g.Step(core.FrameOf(core.ActionAbility))

	// Must not panic on screens smaller than the overlay box.
	screen := core.NewScreen(4, 3)
	g.Render(screen)
}
