package core

import (
	"strings"
	"testing"
)

// rowOf returns row y of the plain-text rendering.
func rowOf(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got, want := s.String(), "      \n      \n      "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSetColorIgnoresOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColor(2, 1, 'E', ColorEnemy)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColor(p[0], p[1], 'X', ColorEnemy)
	}

	if c := s.GetCell(2, 1); c.Rune != 'E' || c.Color != ColorEnemy {
		t.Errorf("GetCell(2, 1) = %+v, want enemy 'E'", c)
	}
	if c := s.GetCell(9, 9); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, want blank", c)
	}
	if strings.Contains(s.String(), "X") {
		t.Error("out of bounds write leaked into the buffer")
	}
}

func TestDrawRectClipsAtEdges(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want []string
	}{
		{"inside", NewRect(1, 1, 2, 2), []string{"     ", " ## ", " ## "}},
		{"left edge", NewRect(-2, 0, 3, 1), []string{"#    ", "     ", "     "}},
		{"bottom right", NewRect(4, 2, 5, 5), []string{"     ", "     ", "    #"}},
		{"fully outside", NewRect(10, 10, 2, 2), []string{"     ", "     ", "     "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(5, 3)
			s.DrawRect(tt.rect, '#', ColorProjectile)
			for y, want := range tt.want {
				if got := rowOf(s, y); strings.TrimRight(got, " ") != strings.TrimRight(want, " ") {
					t.Errorf("row %d = %q, want %q", y, got, want)
				}
			}
		})
	}
}

func TestDrawTextColorClipsAtRight(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColor(3, 0, "♥♥♥♥", ColorLives)

	if got := rowOf(s, 0); got != "   ♥♥♥" {
		t.Errorf("row = %q, want %q", got, "   ♥♥♥")
	}
	if c := s.GetCell(5, 0); c.Color != ColorLives {
		t.Errorf("cell color = %d, want ColorLives", c.Color)
	}
}

func TestDrawHLineAndBox(t *testing.T) {
	s := NewScreen(6, 5)
	s.DrawBox(NewRect(0, 0, 4, 3))
	s.DrawHLine(0, 4, 6, '═', ColorGround)

	want := []string{
		"┌──┐  ",
		"│  │  ",
		"└──┘  ",
		"      ",
		"══════",
	}
	for y, w := range want {
		if got := rowOf(s, y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
	if c := s.GetCell(2, 4); c.Color != ColorGround {
		t.Errorf("ground color = %d, want ColorGround", c.Color)
	}
}

func TestClearAndResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRect(NewRect(0, 0, 4, 2), '▓', ColorEnemy)

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear cell = %+v", c)
	}

	s.DrawText(0, 0, "Hi")
	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Resize kept content: %q", s.String())
	}
}

func TestColorsListsEveryRole(t *testing.T) {
	roles := Colors()
	if roles[0] != ColorDefault {
		t.Errorf("first role = %d, want ColorDefault", roles[0])
	}
	if roles[len(roles)-1] != ColorLives {
		t.Errorf("last role = %d, want ColorLives", roles[len(roles)-1])
	}
}
