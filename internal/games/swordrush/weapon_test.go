package swordrush

import (
	"math"
	"testing"

	"github.com/vovakirdan/swordrush/internal/config"
)

func testWeapon() *Weapon {
	return NewWeapon(config.DefaultSwordRushConfig().Weapon)
}

func TestWeaponPhaseBoundaries(t *testing.T) {
	w := testWeapon()
	if !w.Swing(1000) {
		t.Fatal("Swing from idle failed")
	}

	w.Advance(1000 + 399)
	if w.Phase() != PhaseSwinging {
		t.Fatalf("phase at D_swing-1 = %v, want swinging", w.Phase())
	}
	if w.Progress() >= 1 {
		t.Errorf("progress at D_swing-1 = %v, want < 1", w.Progress())
	}

	w.Advance(1000 + 400)
	if w.Phase() != PhaseResting {
		t.Fatalf("phase at D_swing = %v, want resting", w.Phase())
	}
	if w.Angle() != 120 || w.Thrust() != 40 || w.PivotDrop() != 24 {
		t.Errorf("resting values = %v/%v/%v, want maxima", w.Angle(), w.Thrust(), w.PivotDrop())
	}

	w.Advance(1000 + 550)
	if w.Phase() != PhaseRetracting {
		t.Fatalf("phase after rest = %v, want retracting", w.Phase())
	}

	w.Advance(1000 + 800)
	if w.Phase() != PhaseIdle {
		t.Fatalf("phase after retract = %v, want idle", w.Phase())
	}
	if w.Angle() != 0 || w.Thrust() != 0 || w.PivotDrop() != 0 {
		t.Error("idle weapon kept non-zero values")
	}
}

func TestWeaponInterpolation(t *testing.T) {
	tests := []struct {
		at    int64
		phase Phase
		angle float64
	}{
		{0, PhaseSwinging, 0},
		{200, PhaseSwinging, 60},
		{400, PhaseResting, 120},
		{500, PhaseResting, 120},
		{650, PhaseRetracting, 72},
		{799, PhaseRetracting, 0.48},
	}
	for _, tt := range tests {
		w := testWeapon()
		w.Swing(0)
		w.Advance(tt.at)
		if w.Phase() != tt.phase {
			t.Errorf("t=%d: phase = %v, want %v", tt.at, w.Phase(), tt.phase)
		}
		if math.Abs(w.Angle()-tt.angle) > 1e-9 {
			t.Errorf("t=%d: angle = %v, want %v", tt.at, w.Angle(), tt.angle)
		}
	}
}

func TestWeaponLongGapCrossesPhases(t *testing.T) {
	w := testWeapon()
	w.Swing(0)
	w.Advance(5000)
	if w.Phase() != PhaseIdle {
		t.Errorf("phase after long gap = %v, want idle", w.Phase())
	}
	if !w.Swing(5000) {
		t.Error("could not swing again after returning to idle")
	}
}

func TestWeaponSwingOnlyFromIdle(t *testing.T) {
	w := testWeapon()
	w.Swing(0)
	for _, at := range []int64{100, 450, 700} {
		w.Advance(at)
		if w.Swing(at) {
			t.Errorf("Swing accepted during %v", w.Phase())
		}
	}
}

func TestWeaponDamageOnlyWhileSwinging(t *testing.T) {
	w := testWeapon()
	if w.DamageActive() {
		t.Error("idle weapon deals damage")
	}
	w.Swing(0)
	if !w.DamageActive() {
		t.Error("swinging weapon deals no damage")
	}
	w.Advance(450)
	if w.DamageActive() {
		t.Error("resting weapon deals damage")
	}
	w.Advance(700)
	if w.DamageActive() {
		t.Error("retracting weapon deals damage")
	}
}

func TestWeaponHitboxFollowsFacing(t *testing.T) {
	w := testWeapon()
	p := Player{X: 400, Y: 300, Facing: FacingRight}

	right := w.Hitbox(p)
	cx, cy := right.Center()
	if cx != 470 || cy != 300 {
		t.Errorf("right hitbox center = (%d,%d), want (470,300)", cx, cy)
	}

	p.Facing = FacingLeft
	left := w.Hitbox(p)
	cx, _ = left.Center()
	if cx != 330 {
		t.Errorf("left hitbox center x = %d, want 330", cx)
	}
}
