package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/swordrush/internal/games/swordrush"
)

var (
	colorBackground = color.RGBA{15, 15, 18, 255}
	colorGround     = color.RGBA{30, 30, 36, 255}
	colorPlayer     = color.RGBA{80, 200, 220, 255}
	colorEnemy      = color.RGBA{220, 80, 80, 255}
	colorStunned    = color.RGBA{240, 210, 80, 255}
	colorKnocked    = color.RGBA{200, 90, 220, 255}
	colorProjectile = color.RGBA{255, 150, 40, 255}
	colorBladeIdle  = color.RGBA{150, 150, 160, 255}
	colorBladeHot   = color.RGBA{255, 255, 100, 255}
	colorWave       = color.RGBA{120, 220, 255, 200}
	colorOverlay    = color.RGBA{0, 0, 0, 180}
)

// bladeShape is the configured blade size in field units.
type bladeShape struct {
	length int
	width  float32
}

// shakeOffset is the screen jitter while a shockwave shake is running.
const shakeOffset = 4

func drawTitle(screen *ebiten.Image, best int, label string) {
	screen.Fill(colorBackground)
	ebitenutil.DebugPrintAt(screen, "S W O R D   R U S H", 40, 60)
	if label != "" {
		ebitenutil.DebugPrintAt(screen, "Difficulty: "+label, 40, 90)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %d", best), 40, 110)
	ebitenutil.DebugPrintAt(screen, "Enter: play   Q: quit", 40, 150)
	ebitenutil.DebugPrintAt(screen, "A/D move  Space swing  E shockwave  P pause  R restart  M menu", 40, 170)
}

func drawArena(screen *ebiten.Image, snap swordrush.Snapshot, blade bladeShape) {
	screen.Fill(colorBackground)

	var ox float32
	if snap.Shaking {
		ox = shakeOffset
		if snap.Tick%4 < 2 {
			ox = -shakeOffset
		}
	}

	body := snap.Body
	vector.FillRect(screen, 0, float32(body.Bottom()), float32(snap.FieldW), float32(snap.FieldH-body.Bottom()), colorGround, false)

	for _, p := range snap.Projectiles {
		cx, cy := p.Center()
		vector.FillCircle(screen, ox+float32(cx), float32(cy), float32(p.W)/2, colorProjectile, true)
	}

	for _, e := range snap.Enemies {
		clr := colorEnemy
		switch {
		case e.Stunned:
			clr = colorStunned
		case e.KnockedBack:
			clr = colorKnocked
		}
		r := e.Rect
		vector.FillRect(screen, ox+float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
	}

	vector.FillRect(screen, ox+float32(body.X), float32(body.Y), float32(body.W), float32(body.H), colorPlayer, false)

	if snap.WeaponPhase != swordrush.PhaseIdle {
		drawBlade(screen, snap, blade, ox)
	}

	if snap.WaveActive {
		vector.StrokeCircle(screen, ox+float32(snap.WaveX), float32(snap.WaveY), float32(snap.WaveRadius), 3, colorWave, true)
	}

	drawHUD(screen, snap)

	switch {
	case snap.GameOver:
		drawOverlay(screen, snap,
			"GAME OVER",
			fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best),
			fmt.Sprintf("Kills: %d   Max combo: %d   Peak rank: %s", snap.Stats.Kills, snap.Stats.MaxCombo, snap.Stats.PeakRank),
			"R restart   M menu   Q quit",
		)
	case snap.Paused:
		drawOverlay(screen, snap, "PAUSED", "P resume")
	}
}

// drawBlade draws the sword as a rotated segment around the pivot. At angle 0
// the blade points straight up; the swing rotates it toward the facing side.
func drawBlade(screen *ebiten.Image, snap swordrush.Snapshot, blade bladeShape, ox float32) {
	rad := snap.BladeAngle * math.Pi / 180
	dir := float64(snap.Player.Facing.Sign())
	half := float64(blade.length) / 2

	dx := math.Sin(rad) * dir * half
	dy := -math.Cos(rad) * half
	x0, y0 := snap.BladePivotX-dx, snap.BladePivotY-dy
	x1, y1 := snap.BladePivotX+dx, snap.BladePivotY+dy

	clr := colorBladeIdle
	if snap.BladeActive {
		clr = colorBladeHot
	}
	vector.StrokeLine(screen, ox+float32(x0), float32(y0), ox+float32(x1), float32(y1), blade.width, clr, true)
}

func drawHUD(screen *ebiten.Image, snap swordrush.Snapshot) {
	wave := "READY"
	if !snap.WaveReady {
		wave = fmt.Sprintf("%.1fs", float64(snap.WaveCooldown)/1000)
	}
	hud := fmt.Sprintf(
		"Lives: %d  Score: %d  Best: %d\nCombo: %d  Rank: %s  x%d\nShockwave: %s",
		snap.Lives, snap.Score, snap.Best,
		snap.Combo, snap.Rank, snap.Rank.Multiplier(),
		wave,
	)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

func drawOverlay(screen *ebiten.Image, snap swordrush.Snapshot, lines ...string) {
	vector.FillRect(screen, 0, 0, float32(snap.FieldW), float32(snap.FieldH), colorOverlay, false)
	y := snap.FieldH/2 - len(lines)*10
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, snap.FieldW/2-len(l)*3, y)
		y += 20
	}
}
