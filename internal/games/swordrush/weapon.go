package swordrush

import (
	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
)

// Phase is a step of the swing animation cycle.
type Phase int

// Phases in their only legal order: idle -> swinging -> resting -> retracting -> idle.
const (
	PhaseIdle Phase = iota
	PhaseSwinging
	PhaseResting
	PhaseRetracting
)

func (p Phase) next() Phase {
	switch p {
	case PhaseSwinging:
		return PhaseResting
	case PhaseResting:
		return PhaseRetracting
	default:
		return PhaseIdle
	}
}

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSwinging:
		return "swinging"
	case PhaseResting:
		return "resting"
	case PhaseRetracting:
		return "retracting"
	default:
		return "idle"
	}
}

// Weapon is the swing state machine. Angle, thrust and pivot drop are derived
// from the time spent in the current phase and recomputed on every Advance.
type Weapon struct {
	cfg        config.WeaponConfig
	phase      Phase
	phaseStart int64
	progress   float64
	angle      float64
	thrust     float64
	pivotDrop  float64
}

// NewWeapon creates an idle weapon.
func NewWeapon(cfg config.WeaponConfig) *Weapon {
	return &Weapon{cfg: cfg}
}

// Phase returns the current phase.
func (w *Weapon) Phase() Phase {
	return w.phase
}

// Progress returns the interpolation factor within the current phase, in [0, 1].
func (w *Weapon) Progress() float64 {
	return w.progress
}

// Angle returns the current swing angle in degrees (unsigned).
func (w *Weapon) Angle() float64 {
	return w.angle
}

// Thrust returns the current forward offset of the pivot.
func (w *Weapon) Thrust() float64 {
	return w.thrust
}

// PivotDrop returns the current downward offset of the pivot.
func (w *Weapon) PivotDrop() float64 {
	return w.pivotDrop
}

// DamageActive reports whether the blade kills on contact.
func (w *Weapon) DamageActive() bool {
	return w.phase == PhaseSwinging
}

// Swing starts a new swing at now. It only succeeds from idle.
func (w *Weapon) Swing(now int64) bool {
	if w.phase != PhaseIdle {
		return false
	}
	w.phase = PhaseSwinging
	w.phaseStart = now
	w.set(0)
	return true
}

// Reset forces the weapon back to idle.
func (w *Weapon) Reset() {
	w.phase = PhaseIdle
	w.phaseStart = 0
	w.set(0)
}

func (w *Weapon) duration(p Phase) int64 {
	switch p {
	case PhaseSwinging:
		return int64(w.cfg.SwingMs)
	case PhaseResting:
		return int64(w.cfg.RestMs)
	case PhaseRetracting:
		return int64(w.cfg.RetractMs)
	default:
		return 0
	}
}

// Advance moves the state machine to now. Each finished phase hands over to
// the next one at its exact end time, so a long gap can cross several phases.
func (w *Weapon) Advance(now int64) {
	for w.phase != PhaseIdle {
		d := w.duration(w.phase)
		elapsed := now - w.phaseStart
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed < d {
			w.interpolate(core.ClampF(float64(elapsed)/float64(d), 0, 1))
			return
		}
		w.phaseStart += d
		w.phase = w.phase.next()
	}
	w.set(0)
}

func (w *Weapon) interpolate(t float64) {
	w.progress = t
	switch w.phase {
	case PhaseSwinging:
		w.scale(t)
	case PhaseResting:
		w.scale(1)
	case PhaseRetracting:
		// Retract always starts from the fixed maxima, not from wherever the
		// swing happened to be when the phase began.
		w.scale(1 - t)
	}
}

func (w *Weapon) scale(f float64) {
	w.angle = f * w.cfg.MaxAngle
	w.thrust = f * w.cfg.MaxThrust
	w.pivotDrop = f * w.cfg.MaxPivotDrop
}

func (w *Weapon) set(v float64) {
	w.progress = v
	w.angle = v
	w.thrust = v
	w.pivotDrop = v
}

// Pivot returns the world position the blade rotates around.
func (w *Weapon) Pivot(p Player) (float64, float64) {
	dir := float64(p.Facing.Sign())
	x := float64(p.X) + dir*(float64(w.cfg.Reach)+w.thrust)
	y := float64(p.Y) + w.pivotDrop
	return x, y
}

// Hitbox returns the blade's world-space bounding box. It is always defined,
// but only deals damage while DamageActive is true.
func (w *Weapon) Hitbox(p Player) core.Rect {
	x, y := w.Pivot(p)
	return core.RotatedBounds(x, y, w.cfg.BladeWidth, w.cfg.BladeLength, w.angle)
}
