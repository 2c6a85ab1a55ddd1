package swordrush

import (
	"testing"

	"github.com/vovakirdan/swordrush/internal/config"
)

func TestSpawnerEnemyCadence(t *testing.T) {
	cfg := config.DefaultSwordRushConfig()
	sp := NewSpawner(1, cfg)

	if sp.EnemyDue(1500, RankD, 0) {
		t.Error("enemy due at exactly the interval")
	}
	if !sp.EnemyDue(1501, RankD, 0) {
		t.Error("enemy not due past the interval")
	}
	if !sp.EnemyDue(601, RankSSS, 0) {
		t.Error("SSS cadence not applied")
	}
	if sp.EnemyDue(10000, RankD, cfg.Enemies.MaxCount) {
		t.Error("enemy due at the population cap")
	}
}

func TestSpawnerPlacesEnemiesOnPlayerRow(t *testing.T) {
	cfg := config.DefaultSwordRushConfig()
	cfg.Projectiles.Chance = 0
	sp := NewSpawner(7, cfg)
	seen := map[int]bool{}
	for i := 0; i < 40; i++ {
		var out []Enemy
		out, _ = sp.Spawn(int64(i+1)*1501, RankD, 321, nil, nil)
		if len(out) != 1 {
			t.Fatalf("spawn %d produced %d enemies", i, len(out))
		}
		e := out[0]
		if e.Y != 321 {
			t.Errorf("enemy Y = %d, want player row 321", e.Y)
		}
		switch e.Dir {
		case 1:
			if e.X >= 0 {
				t.Errorf("left-side enemy spawned inside the field at %d", e.X)
			}
		case -1:
			if e.X <= cfg.Field.Width {
				t.Errorf("right-side enemy spawned inside the field at %d", e.X)
			}
		default:
			t.Fatalf("bad direction %d", e.Dir)
		}
		seen[e.Dir] = true
	}
	if !seen[1] || !seen[-1] {
		t.Error("spawner never used one of the sides")
	}
}

func TestSpawnerProjectileChance(t *testing.T) {
	cfg := config.DefaultSwordRushConfig()
	sp := NewSpawner(1, cfg)

	if got := sp.ProjectileChance(RankA); got != 0.01 {
		t.Errorf("base chance = %v, want 0.01", got)
	}
	if got := sp.ProjectileChance(RankS); got != 0.01*1.5 {
		t.Errorf("top tier chance = %v, want %v", got, 0.01*1.5)
	}

	cfg.Projectiles.Chance = 0.9
	sp = NewSpawner(1, cfg)
	if got := sp.ProjectileChance(RankSSS); got != 1 {
		t.Errorf("boosted chance = %v, want clamp to 1", got)
	}
}

func TestSpawnerProjectilesRespectCap(t *testing.T) {
	cfg := config.DefaultSwordRushConfig()
	cfg.Projectiles.Chance = 1
	cfg.Enemies.MaxCount = 0
	sp := NewSpawner(3, cfg)

	var projectiles []Projectile
	for i := 0; i < 50; i++ {
		_, projectiles = sp.Spawn(int64(i), RankD, 300, nil, projectiles)
	}
	if len(projectiles) != cfg.Projectiles.MaxCount {
		t.Fatalf("projectiles = %d, want cap %d", len(projectiles), cfg.Projectiles.MaxCount)
	}
	half := cfg.Projectiles.Size / 2
	for _, p := range projectiles {
		if p.X < half || p.X > cfg.Field.Width-half {
			t.Errorf("projectile x %d outside the field", p.X)
		}
		if p.Y != -half {
			t.Errorf("projectile y = %d, want top edge %d", p.Y, -half)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	cfg := config.DefaultSwordRushConfig()
	cfg.Projectiles.Chance = 0.3
	a := NewSpawner(99, cfg)
	b := NewSpawner(99, cfg)

	var ea, eb []Enemy
	var pa, pb []Projectile
	for i := 0; i < 300; i++ {
		now := int64(i) * 17
		ea, pa = a.Spawn(now, RankB, 300, ea, pa)
		eb, pb = b.Spawn(now, RankB, 300, eb, pb)
	}
	if len(ea) != len(eb) || len(pa) != len(pb) {
		t.Fatalf("populations differ: %d/%d vs %d/%d", len(ea), len(pa), len(eb), len(pb))
	}
	for i := range ea {
		if ea[i] != eb[i] {
			t.Errorf("enemy %d differs: %+v vs %+v", i, ea[i], eb[i])
		}
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("projectile %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}
