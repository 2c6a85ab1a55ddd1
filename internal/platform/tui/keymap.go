package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swordrush/internal/core"
)

// Ticks an action stays held after one key event. Terminals report presses
// and auto-repeats but never releases, so movement is held long enough to
// bridge the repeat gap while one-shot actions last a single tick.
const (
	holdMove    = 6
	holdOneShot = 1
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an in-game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionMoveLeft, false
	case "right", "d", "l":
		return core.ActionMoveRight, false
	case " ", "j", "z":
		return core.ActionAttack, false
	case "e", "x", "k":
		return core.ActionAbility, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "m", "esc":
		return core.ActionMenu, false
	}
	return core.ActionNone, false
}

// holdTicks returns how long a single key event keeps the action held.
func holdTicks(a core.Action) int {
	switch a {
	case core.ActionMoveLeft, core.ActionMoveRight:
		return holdMove
	default:
		return holdOneShot
	}
}

// heldKeys turns discrete key events into per-tick held-key snapshots.
type heldKeys struct {
	ticks map[core.Action]int
}

func newHeldKeys() *heldKeys {
	return &heldKeys{ticks: make(map[core.Action]int)}
}

// press holds a for its hold window. Pressing the opposite direction
// releases the other one immediately.
func (h *heldKeys) press(a core.Action) {
	switch a {
	case core.ActionMoveLeft:
		delete(h.ticks, core.ActionMoveRight)
	case core.ActionMoveRight:
		delete(h.ticks, core.ActionMoveLeft)
	}
	if n := holdTicks(a); n > h.ticks[a] {
		h.ticks[a] = n
	}
}

// frame returns the actions held this tick and ages every hold by one tick.
func (h *heldKeys) frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, n := range h.ticks {
		f.Set(a)
		if n <= 1 {
			delete(h.ticks, a)
		} else {
			h.ticks[a] = n - 1
		}
	}
	return f
}

func (h *heldKeys) reset() {
	clear(h.ticks)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
