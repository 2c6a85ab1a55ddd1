package swordrush

import (
	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
)

// Shockwave is the cooldown-gated radial ability. Only one wave exists at a
// time; its radius grows by a fixed step per tick until it passes the cap.
type Shockwave struct {
	cfg config.ShockwaveConfig

	active         bool
	fired          bool // Whether it has ever been activated this run
	activatedAt    int64
	lastActivation int64
	radius         int
	centerX        int
	centerY        int
	shakeUntil     int64
}

// NewShockwave creates an inactive, ready shockwave.
func NewShockwave(cfg config.ShockwaveConfig) *Shockwave {
	return &Shockwave{cfg: cfg}
}

// Active reports whether a wave is currently expanding.
func (s *Shockwave) Active() bool {
	return s.active
}

// Radius returns the current radius (0 when inactive).
func (s *Shockwave) Radius() int {
	return s.radius
}

// Center returns the wave origin.
func (s *Shockwave) Center() (int, int) {
	return s.centerX, s.centerY
}

// Ready reports whether the cooldown has elapsed at now.
// Cooldown runs from the last activation regardless of whether the previous
// wave is still expanding.
func (s *Shockwave) Ready(now int64) bool {
	return !s.fired || now-s.lastActivation >= int64(s.cfg.CooldownMs)
}

// CooldownLeft returns the milliseconds until the next activation is allowed.
func (s *Shockwave) CooldownLeft(now int64) int64 {
	if s.Ready(now) {
		return 0
	}
	return int64(s.cfg.CooldownMs) - (now - s.lastActivation)
}

// Shaking reports whether the screen-shake window opened by the last
// activation is still running.
func (s *Shockwave) Shaking(now int64) bool {
	return s.fired && now < s.shakeUntil
}

// Trigger activates a new wave centered on (x, y). It is rejected while on
// cooldown.
func (s *Shockwave) Trigger(now int64, x, y int) bool {
	if !s.Ready(now) {
		return false
	}
	s.active = true
	s.fired = true
	s.activatedAt = now
	s.lastActivation = now
	s.radius = 0
	s.centerX, s.centerY = x, y
	s.shakeUntil = now + int64(s.cfg.ShakeMs)
	return true
}

// Advance grows an active wave by one step and stuns every enemy strictly
// inside the new radius. Returns the number of enemies affected this tick.
func (s *Shockwave) Advance(enemies []Enemy) int {
	if !s.active {
		return 0
	}

	s.radius += s.cfg.RadiusStep
	if s.radius > s.cfg.MaxRadius {
		s.active = false
		s.radius = 0
		return 0
	}

	hit := 0
	r := float64(s.radius)
	for i := range enemies {
		e := &enemies[i]
		if core.Dist(s.centerX, s.centerY, e.X, e.Y) < r {
			e.Stun = s.cfg.StunTicks
			e.Knockback = s.cfg.KnockbackTicks
			hit++
		}
	}
	return hit
}

// Reset clears the wave and its cooldown.
func (s *Shockwave) Reset() {
	*s = Shockwave{cfg: s.cfg}
}
