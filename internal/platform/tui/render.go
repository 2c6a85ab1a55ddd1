package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/swordrush/internal/core"
)

// colorStyles maps cell roles to terminal styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorPlayer:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorEnemy:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorEnemyStunned: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorEnemyKnocked: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorProjectile:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBladeActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBladeIdle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWave:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGround:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorLives:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
