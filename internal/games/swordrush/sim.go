package swordrush

import (
	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
)

// Events summarizes what happened during one Sim.Step.
type Events struct {
	Swung     bool // A new swing started
	Shockwave bool // The ability fired
	Stunned   int  // Enemies caught by the wave this tick
	Kills     int  // Enemies killed by the blade
	Hits      int  // Damage taken (enemies plus projectiles)
	ComboLost bool // Combo dropped to zero through damage or idling
	GameOver  bool // The run ended on this tick
}

// RunStats accumulates per-run statistics.
type RunStats struct {
	Kills      int
	MaxCombo   int
	PeakRank   Rank
	Shockwaves int
	StartedAt  int64
	EndedAt    int64
}

// Duration returns the run length in milliseconds.
func (r RunStats) Duration() int64 {
	return r.EndedAt - r.StartedAt
}

// Sim is the authoritative simulation state. It is advanced by Step once per
// tick, on a single goroutine, with a caller-supplied logical timestamp.
type Sim struct {
	cfg config.SwordRushConfig

	player      Player
	weapon      *Weapon
	shockwave   *Shockwave
	spawner     *Spawner
	enemies     []Enemy
	projectiles []Projectile
	combo       Combo
	score       int
	gameOver    bool
	stats       RunStats
}

// NewSim creates a simulation ready to run from timestamp 0.
func NewSim(cfg config.SwordRushConfig, seed int64) *Sim {
	s := &Sim{
		cfg:       cfg,
		weapon:    NewWeapon(cfg.Weapon),
		shockwave: NewShockwave(cfg.Shockwave),
		spawner:   NewSpawner(seed, cfg),
	}
	s.Reset(seed, 0)
	return s
}

// Reset starts a fresh run at now: full lives, zero score and combo, no
// entities, idle weapon, ready shockwave.
func (s *Sim) Reset(seed int64, now int64) {
	s.player = newPlayer(s.cfg)
	s.weapon.Reset()
	s.shockwave.Reset()
	s.spawner.Reset(seed, now)
	s.enemies = s.enemies[:0]
	s.projectiles = s.projectiles[:0]
	s.combo = Combo{}
	s.score = 0
	s.gameOver = false
	s.stats = RunStats{StartedAt: now, EndedAt: now}
}

// Step advances the simulation to now using the held-key snapshot in.
// After game over it is a no-op until Reset.
func (s *Sim) Step(now int64, in core.InputFrame) Events {
	var ev Events
	if s.gameOver {
		return ev
	}

	// Settle the cycle first so a retract ending on this tick frees the weapon.
	s.weapon.Advance(now)
	s.movePlayer(in)

	if in.Has(core.ActionAttack) && s.weapon.Swing(now) {
		ev.Swung = true
		s.weapon.Advance(now)
	}

	if in.Has(core.ActionAbility) && s.weapon.Phase() == PhaseIdle &&
		s.shockwave.Trigger(now, s.player.X, s.player.Y) {
		ev.Shockwave = true
		s.stats.Shockwaves++
	}
	ev.Stunned = s.shockwave.Advance(s.enemies)

	s.advanceEntities()
	s.resolveCollisions(now, &ev)

	if s.combo.Expire(now, int64(s.cfg.Combo.IdleWindowMs)) {
		ev.ComboLost = true
	}
	s.trackStats(now)

	if s.gameOver {
		return ev
	}

	s.enemies, s.projectiles = s.spawner.Spawn(now, s.combo.Rank(), s.player.Y, s.enemies, s.projectiles)
	return ev
}

// movePlayer applies horizontal input. Movement and turning are locked while
// the weapon is anywhere in its swing cycle.
func (s *Sim) movePlayer(in core.InputFrame) {
	if s.weapon.Phase() != PhaseIdle {
		return
	}
	if in.Has(core.ActionMoveLeft) {
		s.player.X -= s.player.Speed
		s.player.Facing = FacingLeft
	}
	if in.Has(core.ActionMoveRight) {
		s.player.X += s.player.Speed
		s.player.Facing = FacingRight
	}
	half := s.cfg.Player.Width / 2
	s.player.X = core.Clamp(s.player.X, half, s.cfg.Field.Width-half)
}

// advanceEntities moves enemies and projectiles and drops those that left
// the field.
func (s *Sim) advanceEntities() {
	gone := make([]bool, len(s.enemies))
	for i := range s.enemies {
		s.enemies[i].advance(s.cfg.Enemies.Speed, s.cfg.Shockwave.KnockbackStep)
		gone[i] = s.enemies[i].outside(s.cfg.Field.Width)
	}
	s.enemies = compact(s.enemies, gone)

	fallen := make([]bool, len(s.projectiles))
	for i := range s.projectiles {
		s.projectiles[i].advance()
		fallen[i] = s.projectiles[i].outside(s.cfg.Field.Height)
	}
	s.projectiles = compact(s.projectiles, fallen)
}

func (s *Sim) trackStats(now int64) {
	s.stats.EndedAt = now
	if s.combo.Count > s.stats.MaxCombo {
		s.stats.MaxCombo = s.combo.Count
	}
	if r := s.combo.Rank(); r > s.stats.PeakRank {
		s.stats.PeakRank = r
	}
}

// Score returns the current run score.
func (s *Sim) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.player.Lives }

// Combo returns the combo state.
func (s *Sim) Combo() Combo { return s.combo }

// GameOver reports whether the run has ended.
func (s *Sim) GameOver() bool { return s.gameOver }

// Stats returns the run statistics so far.
func (s *Sim) Stats() RunStats { return s.stats }

// Player returns a copy of the player.
func (s *Sim) Player() Player { return s.player }

// Weapon returns the weapon state machine.
func (s *Sim) Weapon() *Weapon { return s.weapon }

// Shockwave returns the ability state.
func (s *Sim) Shockwave() *Shockwave { return s.shockwave }

// Enemies returns the live enemies. The slice is owned by the Sim.
func (s *Sim) Enemies() []Enemy { return s.enemies }

// Projectiles returns the live projectiles. The slice is owned by the Sim.
func (s *Sim) Projectiles() []Projectile { return s.projectiles }
