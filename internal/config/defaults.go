package config

import (
	_ "embed"
)

//go:embed defaults/swordrush.yaml
var defaultSwordRushYAML []byte

// DefaultSwordRushConfig returns the hardcoded default configuration.
// It mirrors defaults/swordrush.yaml.
func DefaultSwordRushConfig() SwordRushConfig {
	return SwordRushConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:  96,
			Height: 96,
			Speed:  6,
			Lives:  StartingLives,
		},
		Weapon: WeaponConfig{
			SwingMs:      400,
			RestMs:       150,
			RetractMs:    250,
			MaxAngle:     120,
			MaxThrust:    40,
			MaxPivotDrop: 24,
			Reach:        70,
			BladeWidth:   24,
			BladeLength:  96,
		},
		Enemies: EnemyConfig{
			Size:     50,
			Speed:    3,
			MaxCount: 8,
		},
		Projectiles: ProjectileConfig{
			Size:         30,
			FallSpeed:    5,
			Chance:       0.01,
			TopTierBoost: 1.5,
			MaxCount:     6,
		},
		Shockwave: ShockwaveConfig{
			CooldownMs:     5000,
			RadiusStep:     12,
			MaxRadius:      240,
			StunTicks:      45,
			KnockbackTicks: 15,
			KnockbackStep:  4,
			ShakeMs:        300,
		},
		Combo: ComboConfig{
			IdleWindowMs: ComboIdleWindowMs,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSwordRushYAML
}
