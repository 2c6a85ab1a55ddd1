package swordrush

import (
	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
)

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() int {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// String returns "left" or "right".
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Player is the sword wielder. X and Y are the body center (the anchor).
type Player struct {
	X, Y   int
	Facing Facing
	Speed  int
	Lives  int

	w, h int
}

func newPlayer(cfg config.SwordRushConfig) Player {
	return Player{
		X:      cfg.Field.Width / 2,
		Y:      cfg.Field.Height / 2,
		Facing: FacingRight,
		Speed:  cfg.Player.Speed,
		Lives:  cfg.Player.Lives,
		w:      cfg.Player.Width,
		h:      cfg.Player.Height,
	}
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.RectAround(p.X, p.Y, p.w, p.h)
}

// Enemy walks horizontally toward the player. Stun and Knockback are
// remaining ticks; stun takes precedence over knockback.
type Enemy struct {
	X, Y      int
	Dir       int // +1 moves right, -1 moves left
	Stun      int
	Knockback int

	size int
}

// Rect returns the enemy's bounding box.
func (e Enemy) Rect() core.Rect {
	return core.RectAround(e.X, e.Y, e.size, e.size)
}

// advance moves the enemy one tick. A stunned enemy holds position; once the
// stun wears off a pending knockback pushes it back against its direction.
func (e *Enemy) advance(speed, knockStep int) {
	switch {
	case e.Stun > 0:
		e.Stun--
	case e.Knockback > 0:
		e.X -= e.Dir * knockStep
		e.Knockback--
	default:
		e.X += e.Dir * speed
	}
}

// outside reports whether the enemy has fully left the field horizontally.
func (e Enemy) outside(fieldW int) bool {
	return e.X < -e.size || e.X > fieldW+e.size
}

// Projectile falls straight down at a constant speed.
type Projectile struct {
	X, Y  int
	Speed int

	size int
}

// Rect returns the projectile's bounding box.
func (p Projectile) Rect() core.Rect {
	return core.RectAround(p.X, p.Y, p.size, p.size)
}

func (p *Projectile) advance() {
	p.Y += p.Speed
}

func (p Projectile) outside(fieldH int) bool {
	return p.Y-p.size/2 > fieldH
}

// compact drops every item whose index is marked in removed, preserving order.
// Removal is applied after a full scan so no item is processed twice.
func compact[T any](items []T, removed []bool) []T {
	kept := items[:0]
	for i, it := range items {
		if !removed[i] {
			kept = append(kept, it)
		}
	}
	return kept
}
