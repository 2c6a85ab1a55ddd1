package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swordrush/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey("a"), core.ActionMoveLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionAttack, false},
		{runeKey("e"), core.ActionAbility, false},
		{runeKey("p"), core.ActionPause, false},
		{runeKey("r"), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionMenu, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("y"), core.ActionNone, false},
	}
	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v,%v, want %v,%v", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := newHeldKeys()
	h.press(core.ActionMoveLeft)
	h.press(core.ActionAttack)

	first := h.frame()
	if !first.Has(core.ActionMoveLeft) || !first.Has(core.ActionAttack) {
		t.Fatalf("first frame = %v", first.Actions)
	}

	for i := 1; i < holdMove; i++ {
		f := h.frame()
		if !f.Has(core.ActionMoveLeft) {
			t.Fatalf("move released after %d ticks", i)
		}
		if f.Has(core.ActionAttack) {
			t.Fatal("one-shot action held past its tick")
		}
	}
	if f := h.frame(); f.Has(core.ActionMoveLeft) {
		t.Error("move still held after its window")
	}
}

func TestHeldKeysOppositeDirection(t *testing.T) {
	h := newHeldKeys()
	h.press(core.ActionMoveLeft)
	h.press(core.ActionMoveRight)

	f := h.frame()
	if f.Has(core.ActionMoveLeft) || !f.Has(core.ActionMoveRight) {
		t.Errorf("frame = %v, want only right", f.Actions)
	}
}
