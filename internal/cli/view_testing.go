package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/garden"
)

func (m appModel) viewTesting() string {
	s := m.state
	t := m.theme

	var dots []string
	for step := domain.FirstStep; step <= domain.LastStep; step++ {
		switch {
		case s.IsStepActive(step):
			dots = append(dots, t.Positive("●"))
		case step < s.Step:
			dots = append(dots, t.Positive("✓"))
		default:
			dots = append(dots, t.Dim("○"))
		}
	}
	header := t.Title(s.Step.Title())
	progress := strings.Join(dots, " ") + "  " +
		t.Dim(fmt.Sprintf("Step %d of %d", s.Step, domain.LastStep))

	var body string
	switch s.Step {
	case domain.StepPrepare:
		body = t.Text(strings.Join([]string{
			"1. Pick a spot near your plants' roots.",
			"2. Clear away leaves and mulch.",
			"3. Push the probe about 4 inches into the soil.",
		}, "\n"))
	case domain.StepMoisture:
		body = m.testPanel(domain.TestMoisture, "Checking how much water your soil holds.")
	case domain.StepPH:
		body = m.testPanel(domain.TestPH, "Checking whether your soil is sour, sweet or just right.")
	case domain.StepResults:
		body = m.resultsSummary()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		progress,
		"",
		body,
		"",
		m.renderButtonRow(buttonsFor(s), 0),
	)
}

// testPanel shows the live run for kind, or the idle placeholder.
func (m appModel) testPanel(kind domain.TestKind, blurb string) string {
	run := m.state.Test
	if run.Kind != kind {
		run = garden.TestRun{Kind: kind}
	}
	value := m.theme.Bold(run.Display())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Text(blurb),
		"",
		value,
		m.theme.TestBar(run.Fraction(), 30),
	)
}

func (m appModel) resultsSummary() string {
	s := m.state
	moisture := s.Reading(domain.TestMoisture)
	ph := s.Reading(domain.TestPH)
	rows := []string{
		"💧 Moisture     " + domain.FormatReading(domain.TestMoisture, moisture) + "  " + m.theme.Positive(formatter.MoistureStatus(moisture)),
		"⚖️ pH           " + domain.FormatReading(domain.TestPH, ph) + "  " + m.theme.Positive(formatter.PHStatus(ph)),
		"🌡 Temperature  " + formatter.FormatTemperature(s.Soil.Temperature),
		"🌿 Nutrients    " + formatter.NutrientStatus(s.Soil.Nutrients),
	}
	return m.theme.Box("Your Soil Report 🎉", strings.Join(rows, "\n"))
}
