package cli

import (
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewWelcome() string {
	intro := m.theme.Text("Your friendly guide to healthy soil and happy plants.")
	prompt := m.theme.Bold("Who's gardening today?")
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title("Welcome, gardener!"),
		intro,
		"",
		prompt,
		m.renderButtons(buttonsFor(m.state), 0),
	)
}
