package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewCommunity() string {
	s := m.state
	t := m.theme
	btns := buttonsFor(s)

	// buttonsFor lists three reactions per post, then the help buttons.
	sections := []string{t.Title("Garden Friends")}
	for i, p := range s.Posts {
		body := t.Text(p.Body) + "\n" + t.Dim(fmt.Sprintf("❤️ %d", p.Likes))
		sections = append(sections,
			t.Box(p.Author, body),
			m.renderButtonRow(btns[i*3:i*3+3], i*3),
		)
	}
	helpAt := len(s.Posts) * 3
	sections = append(sections,
		"",
		t.Bold("Need a hand?"),
		m.renderButtonRow(btns[helpAt:], helpAt),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
