package swordrush

import "github.com/vovakirdan/swordrush/internal/core"

// EnemyView is the render-facing view of one enemy.
type EnemyView struct {
	Rect        core.Rect
	Dir         int
	Stunned     bool
	KnockedBack bool // Being pushed back by a shockwave
}

// Snapshot is everything a frontend needs to draw one frame. It holds no
// references into the simulation.
type Snapshot struct {
	Tick uint64
	Now  int64

	FieldW, FieldH int

	Player Player
	Body   core.Rect
	Lives  int

	Blade        core.Rect
	BladeActive  bool
	BladeAngle   float64
	BladePivotX  float64
	BladePivotY  float64
	WeaponPhase  Phase
	WeaponSwingT float64

	Enemies     []EnemyView
	Projectiles []core.Rect

	WaveActive    bool
	WaveX, WaveY  int
	WaveRadius    int
	WaveReady     bool
	WaveCooldown  int64 // Milliseconds left
	Shaking       bool
	ShockwaveMaxR int

	Score    int
	Best     int
	Combo    int
	Rank     Rank
	GameOver bool
	Paused   bool
	Stats    RunStats
}

// Snapshot captures the simulation at now.
func (s *Sim) Snapshot(now int64) Snapshot {
	px, py := s.weapon.Pivot(s.player)
	wx, wy := s.shockwave.Center()

	snap := Snapshot{
		Now:           now,
		FieldW:        s.cfg.Field.Width,
		FieldH:        s.cfg.Field.Height,
		Player:        s.player,
		Body:          s.player.Rect(),
		Lives:         s.player.Lives,
		Blade:         s.weapon.Hitbox(s.player),
		BladeActive:   s.weapon.DamageActive(),
		BladeAngle:    s.weapon.Angle(),
		BladePivotX:   px,
		BladePivotY:   py,
		WeaponPhase:   s.weapon.Phase(),
		WeaponSwingT:  s.weapon.Progress(),
		Enemies:       make([]EnemyView, 0, len(s.enemies)),
		Projectiles:   make([]core.Rect, 0, len(s.projectiles)),
		WaveActive:    s.shockwave.Active(),
		WaveX:         wx,
		WaveY:         wy,
		WaveRadius:    s.shockwave.Radius(),
		WaveReady:     s.shockwave.Ready(now),
		WaveCooldown:  s.shockwave.CooldownLeft(now),
		Shaking:       s.shockwave.Shaking(now),
		ShockwaveMaxR: s.cfg.Shockwave.MaxRadius,
		Score:         s.score,
		Combo:         s.combo.Count,
		Rank:          s.combo.Rank(),
		GameOver:      s.gameOver,
		Stats:         s.stats,
	}
	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			Rect:      e.Rect(),
			Dir:       e.Dir,
			Stunned:   e.Stun > 0,
			KnockedBack: e.Stun == 0 && e.Knockback > 0,
		})
	}
	for _, p := range s.projectiles {
		snap.Projectiles = append(snap.Projectiles, p.Rect())
	}
	return snap
}
