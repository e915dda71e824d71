package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/gardenhelper/internal/garden"
)

func (m appModel) viewModal() string {
	t := m.theme
	btns := buttonsFor(m.state)

	var box string
	switch m.state.Modal {
	case garden.ModalHelp:
		box = t.Box("Need help? 🤝", lipgloss.JoinVertical(lipgloss.Left,
			t.Text("How would you like to get help?"),
			"",
			m.renderButtons(btns, 0),
		))
	case garden.ModalVoice:
		status := m.state.VoiceStatus
		if status == "" {
			status = "Listening..."
		}
		box = t.Box("🎤 Voice Helper", lipgloss.JoinVertical(lipgloss.Left,
			t.Bold(status),
			t.Dim("Try saying: \"Test my soil\""),
			"",
			m.renderButtons(btns, 0),
		))
	}

	if m.width <= 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}
