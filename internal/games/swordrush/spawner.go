package swordrush

import (
	"math/rand"

	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
)

// Spawner introduces enemies and projectiles. Enemy cadence comes from the
// current rank, so difficulty follows the combo without a separate curve.
// It is the only place Enemy and Projectile values are built.
type Spawner struct {
	rng            *rand.Rand
	field          config.FieldConfig
	enemies        config.EnemyConfig
	projectiles    config.ProjectileConfig
	lastEnemySpawn int64
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64, cfg config.SwordRushConfig) *Spawner {
	sp := &Spawner{
		field:       cfg.Field,
		enemies:     cfg.Enemies,
		projectiles: cfg.Projectiles,
	}
	sp.Reset(seed, 0)
	return sp
}

// Reset reseeds the RNG and restarts the enemy cadence at now.
func (sp *Spawner) Reset(seed int64, now int64) {
	sp.rng = rand.New(rand.NewSource(seed))
	sp.lastEnemySpawn = now
}

// EnemyDue reports whether an enemy would spawn at now for the given rank and
// current population.
func (sp *Spawner) EnemyDue(now int64, rank Rank, count int) bool {
	return now-sp.lastEnemySpawn > rank.SpawnInterval() && count < sp.enemies.MaxCount
}

// ProjectileChance returns the per-tick spawn probability for the given rank.
func (sp *Spawner) ProjectileChance(rank Rank) float64 {
	p := sp.projectiles.Chance
	if rank.TopTier() {
		p *= sp.projectiles.TopTierBoost
	}
	return core.ClampF(p, 0, 1)
}

// Spawn runs one scheduling step and returns the grown collections.
func (sp *Spawner) Spawn(now int64, rank Rank, playerY int, enemies []Enemy, projectiles []Projectile) ([]Enemy, []Projectile) {
	if sp.EnemyDue(now, rank, len(enemies)) {
		enemies = append(enemies, sp.newEnemy(playerY))
		sp.lastEnemySpawn = now
	}

	// The roll happens every tick even at the cap so the RNG stream does not
	// depend on the projectile population.
	roll := sp.rng.Float64()
	if roll < sp.ProjectileChance(rank) && len(projectiles) < sp.projectiles.MaxCount {
		projectiles = append(projectiles, sp.newProjectile())
	}
	return enemies, projectiles
}

// newEnemy places an enemy just outside a random side of the field, on the
// player's row, walking inward.
func (sp *Spawner) newEnemy(playerY int) Enemy {
	size := sp.enemies.Size
	e := Enemy{Y: playerY, size: size}
	if sp.rng.Intn(2) == 0 {
		e.X = -size / 2
		e.Dir = 1
	} else {
		e.X = sp.field.Width + size/2
		e.Dir = -1
	}
	return e
}

// newProjectile drops a projectile from a random column at the top edge.
func (sp *Spawner) newProjectile() Projectile {
	size := sp.projectiles.Size
	span := sp.field.Width - size
	x := size / 2
	if span > 0 {
		x += sp.rng.Intn(span + 1)
	}
	return Projectile{
		X:     x,
		Y:     -size / 2,
		Speed: sp.projectiles.FallSpeed,
		size:  size,
	}
}
