package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/domain"
)

func (m appModel) viewProgress() string {
	s := m.state
	t := m.theme

	history := t.Dim("No saved tests yet. Run a soil test and save it to start your garden journal.")
	if len(m.history) > 0 {
		rows := make([][]string, 0, len(m.history))
		for _, r := range m.history {
			shared := ""
			if r.Shared {
				shared = "📤"
			}
			rows = append(rows, []string{
				domain.RelativeTime(m.now(), r.RecordedAt),
				domain.FormatReading(domain.TestMoisture, r.Moisture),
				domain.FormatReading(domain.TestPH, r.PH),
				formatter.FormatTemperature(r.Temperature),
				shared,
			})
		}
		history = formatter.RenderTable([]string{"WHEN", "MOISTURE", "PH", "TEMP", ""}, rows)
	}

	badges := []string{t.Positive("🌱 Garden Starter")}
	if len(m.history) > 0 {
		badges = append(badges, t.Positive("🔬 Soil Scientist"))
	}
	if len(m.history) >= 3 {
		badges = append(badges, t.Positive("🏆 Steady Tester"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title("Your Garden Journey"),
		t.Dim("Last checked: "+domain.RelativeTime(m.now(), s.LastChecked)),
		"",
		t.Box("Recent tests", history),
		"",
		t.Bold(fmt.Sprintf("Achievements (%d)", len(badges))),
		lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(badges)...),
		"",
		m.renderButtonRow(buttonsFor(s), 0),
	)
}

func joinSpaced(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, p)
	}
	return out
}
