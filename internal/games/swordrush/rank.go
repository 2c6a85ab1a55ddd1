package swordrush

// Rank is the difficulty/reward tier derived from the current combo.
type Rank int

// Ranks from lowest to highest.
const (
	RankD Rank = iota
	RankC
	RankB
	RankA
	RankS
	RankSS
	RankSSS
)

// rankRow is one entry of the static rank table.
type rankRow struct {
	rank          Rank
	minCombo      int
	name          string
	multiplier    int
	spawnInterval int64 // Milliseconds between enemy spawns
}

// rankTable is ordered from the highest threshold down; the first row whose
// minCombo is reached wins. The last row must have minCombo 0.
var rankTable = [...]rankRow{
	{RankSSS, 20, "SSS", 5, 600},
	{RankSS, 15, "SS", 4, 700},
	{RankS, 10, "S", 3, 850},
	{RankA, 7, "A", 2, 1000},
	{RankB, 4, "B", 1, 1200},
	{RankC, 2, "C", 1, 1350},
	{RankD, 0, "D", 1, 1500},
}

// RankOf maps a combo count to its rank. Negative combos map to D.
func RankOf(combo int) Rank {
	for _, row := range rankTable {
		if combo >= row.minCombo {
			return row.rank
		}
	}
	return RankD
}

func (r Rank) row() rankRow {
	idx := len(rankTable) - 1 - int(r)
	if idx < 0 || idx >= len(rankTable) {
		return rankTable[len(rankTable)-1]
	}
	return rankTable[idx]
}

// Multiplier returns the score awarded per kill at this rank.
func (r Rank) Multiplier() int {
	return r.row().multiplier
}

// SpawnInterval returns the enemy spawn cadence in milliseconds.
func (r Rank) SpawnInterval() int64 {
	return r.row().spawnInterval
}

// TopTier reports whether the rank boosts projectile spawns.
func (r Rank) TopTier() bool {
	return r >= RankS
}

// String returns the rank letter(s).
func (r Rank) String() string {
	return r.row().name
}

// Combo tracks consecutive kills without damage.
type Combo struct {
	Count    int
	LastKill int64 // Timestamp of the last kill in ms
}

// Rank returns the rank for the current count.
func (c Combo) Rank() Rank {
	return RankOf(c.Count)
}

// Multiplier returns the current score multiplier.
func (c Combo) Multiplier() int {
	return c.Rank().Multiplier()
}

// Kill registers a weapon kill at now and returns the points it is worth,
// computed from the rank after the increment.
func (c *Combo) Kill(now int64) int {
	c.Count++
	c.LastKill = now
	return c.Multiplier()
}

// Break resets the combo after the player takes damage.
func (c *Combo) Break() {
	c.Count = 0
}

// Expire drops the combo once more than window ms passed since the last kill.
// Returns true if the combo was reset.
func (c *Combo) Expire(now, window int64) bool {
	if c.Count > 0 && now-c.LastKill > window {
		c.Count = 0
		return true
	}
	return false
}
