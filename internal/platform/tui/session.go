package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swordrush/internal/config"
	"github.com/vovakirdan/swordrush/internal/core"
	"github.com/vovakirdan/swordrush/internal/games/swordrush"
	"github.com/vovakirdan/swordrush/internal/highscore"
)

// Deps are the collaborators a session needs.
type Deps struct {
	Config  config.SwordRushConfig
	Scores  highscore.Store
	History RunHistory // Optional
	Logger  *log.Logger
	Label   string // Difficulty label for the menu
}

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with the
// scoreboard reachable from the menu. It is the top-level model for both
// local and SSH play.
type SessionModel struct {
	deps       Deps
	config     core.RuntimeConfig
	username   string
	current    screenKind
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig, username string) SessionModel {
	if deps.Scores == nil {
		deps.Scores = highscore.NewMemory(0)
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	m := SessionModel{
		deps:     deps,
		config:   cfg,
		username: username,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.deps.Scores.Best(), m.deps.Label, m.config.ScreenW, m.config.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		sb := NewScoreboardModel(m.deps.History, swordrush.GameID, m.deps.Scores.Best(), m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.current = screenScores
		return m, sb.Init()

	case ChoicePlay:
		game := swordrush.New(m.deps.Config, m.deps.Scores, m.deps.Logger.With("user", m.username))
		gm := NewGameModel(game, m.config)
		m.gameModel = &gm
		m.current = screenGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// backToMenu drops the active screen and re-reads the best score.
func (m *SessionModel) backToMenu() {
	m.gameModel = nil
	m.scoreboard = nil
	m.current = screenMenu
	m.menu = m.newMenu()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local session in the alternate screen.
func Run(deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg, "local"),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
