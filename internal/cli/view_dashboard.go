package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/domain"
)

const gaugeWidth = 24

func (m appModel) viewDashboard() string {
	s := m.state
	t := m.theme

	greeting := t.Title("Good to see you, " + s.Profile.DisplayName() + "!")
	checked := t.Dim("Last checked: " + domain.RelativeTime(m.now(), s.LastChecked))

	moisture := m.readingCard("💧 Moisture",
		domain.FormatReading(domain.TestMoisture, s.Soil.Moisture),
		formatter.MoistureStatus(s.Soil.Moisture),
		t.Gauge(s.Soil.Moisture, 0, 100, formatter.MoistureOKLow, formatter.MoistureOKHigh, gaugeWidth))
	ph := m.readingCard("⚖️ pH Level",
		domain.FormatReading(domain.TestPH, s.Soil.PH),
		formatter.PHStatus(s.Soil.PH),
		t.Gauge(s.Soil.PH, 4, 9, formatter.PHOKLow, formatter.PHOKHigh, gaugeWidth))
	temp := m.readingCard("🌡 Temperature",
		formatter.FormatTemperature(s.Soil.Temperature), "Comfortable", "")
	nutrients := m.readingCard("🌿 Nutrients",
		string(s.Soil.Nutrients), formatter.NutrientStatus(s.Soil.Nutrients), "")

	cards := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, moisture, " ", ph),
		lipgloss.JoinHorizontal(lipgloss.Top, temp, " ", nutrients),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		greeting,
		checked,
		"",
		cards,
		"",
		t.Bold("Quick actions"),
		m.renderButtons(buttonsFor(s), 0),
	)
}

func (m appModel) readingCard(title, value, status, gauge string) string {
	body := fmt.Sprintf("%s  %s", m.theme.Bold(value), m.theme.Positive(status))
	if gauge != "" {
		body += "\n" + gauge
	}
	return m.theme.Box(title, body)
}
