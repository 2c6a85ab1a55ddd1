package core

// Color is the role of a screen cell. The renderer picks a role; each
// frontend decides how the role looks.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPlayer
	ColorEnemy
	ColorEnemyStunned
	ColorEnemyKnocked
	ColorProjectile
	ColorBladeActive
	ColorBladeIdle
	ColorWave
	ColorGround
	ColorLives

	colorCount
)

// Colors lists every role, ColorDefault first.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
