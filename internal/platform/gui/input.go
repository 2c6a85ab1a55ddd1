package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/swordrush/internal/core"
)

// readHeld samples the keys that act while held down.
func readHeld() core.InputFrame {
	f := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		f.Set(core.ActionMoveLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		f.Set(core.ActionMoveRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyJ) {
		f.Set(core.ActionAttack)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeyK) {
		f.Set(core.ActionAbility)
	}
	return f
}

// readEdges samples toggle keys that must fire once per press.
func readEdges() core.InputFrame {
	f := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		f.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		f.Set(core.ActionMenu)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		f.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		f.Set(core.ActionQuit)
	}
	return f
}

// merge adds every action of src to dst.
func merge(dst *core.InputFrame, src core.InputFrame) {
	for a, on := range src.Actions {
		if on {
			dst.Set(a)
		}
	}
}
