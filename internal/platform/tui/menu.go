package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

var menuItems = []struct {
	choice MenuChoice
	label  string
}{
	{ChoicePlay, "Play"},
	{ChoiceScores, "High Scores"},
	{ChoiceQuit, "Quit"},
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuBestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	menuHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	best      int
	label     string // Difficulty shown under the title
	keyMapper *KeyMapper
	chosen    MenuChoice
}

// NewMenuModel creates a menu showing the given best score.
func NewMenuModel(best int, label string, width, height int) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		best:      best,
		label:     label,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.chosen = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.chosen = menuItems[m.cursor].choice

	case MenuActionScoreboard:
		m.chosen = ChoiceScores
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S W O R D   R U S H"), m.width))
	b.WriteString("\n\n")
	if m.label != "" {
		b.WriteString(centerText(menuHelpStyle.Render(m.label), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(menuBestStyle.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.label + "  "
		if i == m.cursor {
			line = menuCursorStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHelpStyle.Render(controls), m.width))
	b.WriteString("\n\n")
	keys := "Move: A/D or arrows  |  Swing: Space  |  Shockwave: E  |  Pause: P  |  Menu: M"
	b.WriteString(centerText(menuHelpStyle.Render(keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the selected entry, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
