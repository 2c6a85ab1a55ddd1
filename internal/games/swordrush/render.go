package swordrush

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/swordrush/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar     = '█'
	EnemyChar      = '▓'
	ProjectileChar = '●'
	BladeChar      = '╱'
	BladeCharBack  = '╲'
	WaveChar       = '∘'
	GroundChar     = '═'
	LifeChar       = '♥'
)

// hudRows is the number of rows above the arena.
const hudRows = 1

// Render draws the current frame into dst, scaling field coordinates to
// terminal cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	v := newViewport(dst, snap)

	for _, p := range snap.Projectiles {
		dst.DrawRect(v.rect(p), ProjectileChar, core.ColorProjectile)
	}

	for _, e := range snap.Enemies {
		color := core.ColorEnemy
		switch {
		case e.Stunned:
			color = core.ColorEnemyStunned
		case e.KnockedBack:
			color = core.ColorEnemyKnocked
		}
		dst.DrawRect(v.rect(e.Rect), EnemyChar, color)
	}

	dst.DrawRect(v.rect(snap.Body), PlayerChar, core.ColorPlayer)

	if snap.WeaponPhase != PhaseIdle {
		ch := BladeChar
		if snap.Player.Facing == FacingLeft {
			ch = BladeCharBack
		}
		color := core.ColorBladeIdle
		if snap.BladeActive {
			color = core.ColorBladeActive
		}
		dst.DrawRect(v.rect(snap.Blade), ch, color)
	}

	if snap.WaveActive {
		g.drawWave(dst, v, snap)
	}

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGround)
	g.drawHUD(dst, snap)

	if snap.GameOver {
		title := fmt.Sprintf("GAME OVER  Score: %d  Best: %d", snap.Score, snap.Best)
		g.drawCenteredMessage(dst, title, "R restart  M menu  Q quit")
	} else if snap.Paused {
		g.drawCenteredMessage(dst, "PAUSED", "P resume")
	}
}

// viewport maps field coordinates onto the arena area of the screen.
type viewport struct {
	w, h   int // Arena size in cells
	fw, fh int // Field size in world units
	dx     int // Horizontal shake offset
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	v := viewport{
		w:  dst.Width(),
		h:  dst.Height() - hudRows - 1,
		fw: max(snap.FieldW, 1),
		fh: max(snap.FieldH, 1),
	}
	if snap.Shaking {
		v.dx = 1
		if snap.Tick%4 < 2 {
			v.dx = -1
		}
	}
	return v
}

func (v viewport) x(wx int) int {
	return wx*v.w/v.fw + v.dx
}

func (v viewport) y(wy int) int {
	return wy*v.h/v.fh + hudRows
}

// rect converts a world rectangle to cells, never shrinking below one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.x(r.X), v.y(r.Y)
	x1, y1 := v.x(r.Right()), v.y(r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (g *Game) drawWave(dst *core.Screen, v viewport, snap Snapshot) {
	r := float64(snap.WaveRadius)
	// Enough samples to close the ring at terminal resolution.
	steps := max(int(2*math.Pi*r*float64(v.w)/float64(v.fw)), 16)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		wx := snap.WaveX + int(r*math.Cos(a))
		wy := snap.WaveY + int(r*math.Sin(a))
		y := v.y(wy)
		if y < hudRows || y >= dst.Height()-1 {
			continue
		}
		dst.SetColor(v.x(wx), y, WaveChar, core.ColorWave)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	lives := strings.Repeat(string(LifeChar), snap.Lives)
	dst.DrawTextColor(1, 0, lives, core.ColorLives)

	wave := "WAVE READY"
	if !snap.WaveReady {
		wave = fmt.Sprintf("WAVE %.1fs", float64(snap.WaveCooldown)/1000)
	}

	text := fmt.Sprintf(" Score: %d  Best: %d  Combo: %d  Rank: %s  %s ",
		snap.Score, snap.Best, snap.Combo, snap.Rank, wave)
	dst.DrawText(snap.Lives+2, 0, text)
}

func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
