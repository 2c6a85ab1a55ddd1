package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/swordrush/internal/core"
)

func TestEveryColorHasStyle(t *testing.T) {
	for _, c := range core.Colors() {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color role %d", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawTextColor(0, 0, "♥♥", core.ColorLives)
	s.DrawText(3, 0, "Score")
	s.DrawHLine(0, 1, 8, '═', core.ColorGround)

	out := RenderScreen(s)
	for _, want := range []string{"♥♥", "Score", "════════"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q: %q", want, out)
		}
	}
}
