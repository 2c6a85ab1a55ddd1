package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
	"github.com/vovakirdan/swordrush/internal/highscore"
)

func testSession(scores highscore.Store) SessionModel {
	deps := Deps{
		Config: config.DefaultSwordRushConfig(),
		Scores: scores,
		Logger: log.New(io.Discard),
		Label:  "normal",
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	return NewSessionModel(deps, cfg, "tester")
}

func update(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	scores := highscore.NewMemory(5)
	m := testSession(scores)

	if !strings.Contains(m.View(), "Best: 5") {
		t.Error("menu does not show the best score")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame || m.gameModel == nil {
		t.Fatalf("Enter did not start a game (screen %d)", m.current)
	}

	m = update(t, m, TickMsg(time.Now()))
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view has no HUD")
	}

	scores.RecordIfBetter(9)
	m = update(t, m, runeKey("m"))
	if m.current != screenMenu {
		t.Fatalf("M did not return to the menu (screen %d)", m.current)
	}
	if !strings.Contains(m.View(), "Best: 9") {
		t.Error("menu did not re-read the best score")
	}
}

func TestSessionScoreboardWithoutHistory(t *testing.T) {
	m := testSession(highscore.NewMemory(3))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatalf("Tab did not open the scoreboard (screen %d)", m.current)
	}
	if !strings.Contains(m.View(), "sqlite") {
		t.Error("scoreboard does not explain the missing history")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.current != screenMenu {
		t.Errorf("Esc did not return to the menu (screen %d)", m.current)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := testSession(nil)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if next.(SessionModel).View() != "" {
		t.Error("view not cleared after quit")
	}
}
