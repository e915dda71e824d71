package cli

import (
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewLearning() string {
	btns := buttonsFor(m.state)
	// Layout follows buttonsFor: lesson, categories, then tools.
	cats := 1 + len(learningCategories)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title("Learn & Grow"),
		m.lesson,
		m.renderButtons(btns[:1], 0),
		"",
		m.theme.Bold("Topics"),
		m.renderButtonRow(btns[1:cats], 1),
		"",
		m.theme.Bold("Interactive tools"),
		m.renderButtonRow(btns[cats:], cats),
	)
}
