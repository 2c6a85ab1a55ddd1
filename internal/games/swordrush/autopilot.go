package swordrush

import (
	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
)

// Autopilot is a deterministic bot that plays from snapshots. It drives
// headless runs and replays.
type Autopilot struct {
	reach      int // Distance at which a swing is started
	waveRange  int // Distance at which enemies count toward the ability
	dodgeAbove int // How far above the body a projectile triggers a dodge
}

// NewAutopilot derives the bot's thresholds from the game tuning.
func NewAutopilot(cfg config.SwordRushConfig) *Autopilot {
	return &Autopilot{
		reach:      cfg.Weapon.Reach + cfg.Weapon.BladeLength,
		waveRange:  cfg.Shockwave.MaxRadius * 3 / 4,
		dodgeAbove: cfg.Player.Height * 2,
	}
}

// Decide picks the held actions for the next tick.
func (a *Autopilot) Decide(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.GameOver || snap.Paused {
		return in
	}

	px := snap.Player.X
	facing := snap.Player.Facing.Sign()

	near := 0
	nearest, nearestDist := 0, -1
	for _, e := range snap.Enemies {
		ex, _ := e.Rect.Center()
		d := core.Abs(ex - px)
		if d <= a.waveRange {
			near++
		}
		if nearestDist < 0 || d < nearestDist {
			nearest, nearestDist = ex-px, d
		}
	}

	if near >= 2 && snap.WaveReady && snap.WeaponPhase == PhaseIdle {
		in.Set(core.ActionAbility)
		return in
	}

	if dir := a.dodge(snap); dir != 0 && snap.WeaponPhase == PhaseIdle {
		if dir < 0 {
			in.Set(core.ActionMoveLeft)
		} else {
			in.Set(core.ActionMoveRight)
		}
		return in
	}

	if nearestDist < 0 {
		return in
	}

	inFront := (nearest >= 0) == (facing > 0)
	switch {
	case inFront && nearestDist <= a.reach:
		in.Set(core.ActionAttack)
	case !inFront && snap.WeaponPhase == PhaseIdle:
		// One step toward it turns the player around.
		if nearest < 0 {
			in.Set(core.ActionMoveLeft)
		} else {
			in.Set(core.ActionMoveRight)
		}
	}
	return in
}

// dodge returns -1 or +1 when a projectile is about to land on the player,
// moving toward the roomier side, or 0 when no dodge is needed.
func (a *Autopilot) dodge(snap Snapshot) int {
	body := snap.Body
	for _, p := range snap.Projectiles {
		if p.Right() <= body.X || p.X >= body.Right() {
			continue
		}
		if p.Bottom() < body.Y-a.dodgeAbove || p.Y >= body.Bottom() {
			continue
		}
		if body.X > snap.FieldW-body.Right() {
			return -1
		}
		return 1
	}
	return 0
}
