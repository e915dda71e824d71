package domain

import (
	"fmt"
	"math"
	"time"
)

// Bounds the background sensor keeps simulated readings within.
const (
	MoistureMin    = 40.0
	MoistureMax    = 80.0
	TemperatureMin = 65.0
	TemperatureMax = 78.0
	PHMin          = 6.0
	PHMax          = 7.5
)

type SoilReading struct {
	Moisture    float64       `yaml:"moisture"`
	PH          float64       `yaml:"ph"`
	Temperature float64       `yaml:"temperature_f"`
	Nutrients   NutrientLevel `yaml:"nutrients"`
}

func DefaultSoilReading() SoilReading {
	return SoilReading{
		Moisture:    65,
		PH:          6.8,
		Temperature: 72,
		Nutrients:   NutrientsModerate,
	}
}

// Jittered applies one round of small sensor noise. Each u is a uniform sample
// in [0,1); 0.5 means no change. Moisture moves up to ±1, temperature ±0.5 and
// pH ±0.05, and each value is then clamped to its simulated range.
func (r SoilReading) Jittered(uMoisture, uTemp, uPH float64) SoilReading {
	r.Moisture = clamp(r.Moisture+(uMoisture-0.5)*2, MoistureMin, MoistureMax)
	r.Temperature = clamp(r.Temperature+(uTemp-0.5)*1, TemperatureMin, TemperatureMax)
	r.PH = clamp(r.PH+(uPH-0.5)*0.1, PHMin, PHMax)
	return r
}

// Value returns the reading a soil test measures.
func (r SoilReading) Value(kind TestKind) float64 {
	if kind == TestPH {
		return r.PH
	}
	return r.Moisture
}

// FormatReading renders a test value the way the gauges display it:
// whole percent for moisture, one decimal for pH.
func FormatReading(kind TestKind, v float64) string {
	if kind == TestPH {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%d%%", int(math.Floor(v)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// SoilTestResult is a saved snapshot of a completed soil test.
type SoilTestResult struct {
	ID          string
	Moisture    float64
	PH          float64
	Temperature float64
	Nutrients   NutrientLevel
	Shared      bool
	RecordedAt  time.Time
}

// RelativeTime renders how long ago t was relative to now, in whole minutes,
// hours or days.
func RelativeTime(now, t time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	mins := int(diff / time.Minute)
	hours := mins / 60
	days := hours / 24

	switch {
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
