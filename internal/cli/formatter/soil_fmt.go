package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// Healthy bands used to color gauges and pick status words.
const (
	MoistureOKLow  = 50.0
	MoistureOKHigh = 75.0
	PHOKLow        = 6.0
	PHOKHigh       = 7.0
)

// MoistureStatus describes a moisture percentage in plain words.
func MoistureStatus(v float64) string {
	switch {
	case v < MoistureOKLow:
		return "A little dry"
	case v > MoistureOKHigh:
		return "Quite wet"
	default:
		return "Perfect"
	}
}

// PHStatus describes a pH value in plain words.
func PHStatus(v float64) string {
	switch {
	case v < PHOKLow:
		return "Slightly acidic"
	case v > PHOKHigh:
		return "Slightly alkaline"
	default:
		return "Just right"
	}
}

func NutrientStatus(n domain.NutrientLevel) string {
	switch n {
	case domain.NutrientsLow:
		return "Needs feeding"
	case domain.NutrientsHigh:
		return "Rich"
	default:
		return "Good"
	}
}

// FormatTemperature renders a Fahrenheit reading rounded to a whole degree.
func FormatTemperature(f float64) string {
	return fmt.Sprintf("%.0f°F", f)
}

// FormatResults renders saved results newest first for `results list`.
func FormatResults(results []*domain.SoilTestResult, now time.Time) string {
	if len(results) == 0 {
		return Dim("No saved soil tests yet. Finish a soil test and choose Save Results.") + "\n"
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		shared := ""
		if r.Shared {
			shared = StyleGreen.Render("shared")
		}
		rows = append(rows, []string{
			domain.RelativeTime(now, r.RecordedAt),
			domain.FormatReading(domain.TestMoisture, r.Moisture),
			domain.FormatReading(domain.TestPH, r.PH),
			FormatTemperature(r.Temperature),
			string(r.Nutrients),
			shared,
		})
	}
	return RenderTable([]string{"WHEN", "MOISTURE", "PH", "TEMP", "NUTRIENTS", ""}, rows)
}
