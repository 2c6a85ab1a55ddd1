// Package config provides YAML-based configuration loading and difficulty
// presets for Sword Rush.
package config

import (
	"errors"
	"fmt"
)

// SwordRushConfig contains every gameplay tunable of the arena.
// Distances are world pixels, durations are milliseconds unless the field
// name says ticks.
type SwordRushConfig struct {
	Field       FieldConfig      `yaml:"field"`
	Player      PlayerConfig     `yaml:"player"`
	Weapon      WeaponConfig     `yaml:"weapon"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Shockwave   ShockwaveConfig  `yaml:"shockwave"`
	Combo       ComboConfig      `yaml:"combo"`
}

// FieldConfig defines the play-field bounds.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player body and movement.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Pixels per tick
	Lives  int `yaml:"lives"`
}

// WeaponConfig defines swing timing and blade geometry.
type WeaponConfig struct {
	SwingMs      int     `yaml:"swing_ms"`
	RestMs       int     `yaml:"rest_ms"`
	RetractMs    int     `yaml:"retract_ms"`
	MaxAngle     float64 `yaml:"max_angle"` // Degrees
	MaxThrust    float64 `yaml:"max_thrust"`
	MaxPivotDrop float64 `yaml:"max_pivot_drop"`
	Reach        int     `yaml:"reach"` // Pivot offset from the player center
	BladeWidth   int     `yaml:"blade_width"`
	BladeLength  int     `yaml:"blade_length"`
}

// EnemyConfig defines walking enemies.
type EnemyConfig struct {
	Size     int `yaml:"size"`
	Speed    int `yaml:"speed"` // Pixels per tick
	MaxCount int `yaml:"max_count"`
}

// ProjectileConfig defines falling projectiles.
type ProjectileConfig struct {
	Size         int     `yaml:"size"`
	FallSpeed    int     `yaml:"fall_speed"`
	Chance       float64 `yaml:"chance"`         // Per-tick spawn probability
	TopTierBoost float64 `yaml:"top_tier_boost"` // Chance multiplier at S and above
	MaxCount     int     `yaml:"max_count"`
}

// ShockwaveConfig defines the area ability.
type ShockwaveConfig struct {
	CooldownMs     int `yaml:"cooldown_ms"`
	RadiusStep     int `yaml:"radius_step"` // Growth per tick
	MaxRadius      int `yaml:"max_radius"`
	StunTicks      int `yaml:"stun_ticks"`
	KnockbackTicks int `yaml:"knockback_ticks"`
	KnockbackStep  int `yaml:"knockback_step"` // Reverse displacement per tick
	ShakeMs        int `yaml:"shake_ms"`
}

// ComboConfig defines combo decay.
type ComboConfig struct {
	IdleWindowMs int `yaml:"idle_window_ms"`
}

// Rules that are part of the game itself rather than tuning. The yaml keys
// exist so configs read clearly, but only these values pass Validate.
const (
	StartingLives     = 3
	ComboIdleWindowMs = 3000
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first tunable that would break the simulation.
func (c SwordRushConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.lives", c.Player.Lives},
		{"weapon.swing_ms", c.Weapon.SwingMs},
		{"weapon.rest_ms", c.Weapon.RestMs},
		{"weapon.retract_ms", c.Weapon.RetractMs},
		{"weapon.blade_width", c.Weapon.BladeWidth},
		{"weapon.blade_length", c.Weapon.BladeLength},
		{"enemies.size", c.Enemies.Size},
		{"enemies.speed", c.Enemies.Speed},
		{"projectiles.size", c.Projectiles.Size},
		{"projectiles.fall_speed", c.Projectiles.FallSpeed},
		{"shockwave.radius_step", c.Shockwave.RadiusStep},
		{"shockwave.max_radius", c.Shockwave.MaxRadius},
		{"combo.idle_window_ms", c.Combo.IdleWindowMs},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Player.Lives != StartingLives {
		return fmt.Errorf("%w: player.lives must be %d, got %d", ErrInvalidConfig, StartingLives, c.Player.Lives)
	}
	if c.Combo.IdleWindowMs != ComboIdleWindowMs {
		return fmt.Errorf("%w: combo.idle_window_ms must be %d, got %d", ErrInvalidConfig, ComboIdleWindowMs, c.Combo.IdleWindowMs)
	}

	if c.Enemies.MaxCount < 0 || c.Projectiles.MaxCount < 0 {
		return fmt.Errorf("%w: population caps must not be negative", ErrInvalidConfig)
	}
	if c.Shockwave.CooldownMs < 0 || c.Shockwave.StunTicks < 0 || c.Shockwave.KnockbackTicks < 0 {
		return fmt.Errorf("%w: shockwave timers must not be negative", ErrInvalidConfig)
	}
	if c.Projectiles.Chance < 0 || c.Projectiles.Chance > 1 {
		return fmt.Errorf("%w: projectiles.chance must be within [0, 1], got %g", ErrInvalidConfig, c.Projectiles.Chance)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
