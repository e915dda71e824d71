package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoilReading_JitterNeutralAtHalf(t *testing.T) {
	r := DefaultSoilReading()
	assert.Equal(t, r, r.Jittered(0.5, 0.5, 0.5))
}

func TestSoilReading_JitterClampsToRange(t *testing.T) {
	r := SoilReading{Moisture: 79.8, Temperature: 77.9, PH: 7.49}
	for i := 0; i < 50; i++ {
		r = r.Jittered(0.999, 0.999, 0.999)
	}
	assert.Equal(t, MoistureMax, r.Moisture)
	assert.Equal(t, TemperatureMax, r.Temperature)
	assert.Equal(t, PHMax, r.PH)

	for i := 0; i < 200; i++ {
		r = r.Jittered(0, 0, 0)
	}
	assert.Equal(t, MoistureMin, r.Moisture)
	assert.Equal(t, TemperatureMin, r.Temperature)
	assert.Equal(t, PHMin, r.PH)
}

func TestFormatReading(t *testing.T) {
	assert.Equal(t, "65%", FormatReading(TestMoisture, 65.9))
	assert.Equal(t, "6.8", FormatReading(TestPH, 6.8))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "0 minutes ago", RelativeTime(now, now))
	assert.Equal(t, "59 minutes ago", RelativeTime(now, now.Add(-59*time.Minute)))
	assert.Equal(t, "1 hours ago", RelativeTime(now, now.Add(-60*time.Minute)))
	assert.Equal(t, "23 hours ago", RelativeTime(now, now.Add(-23*time.Hour-59*time.Minute)))
	assert.Equal(t, "3 days ago", RelativeTime(now, now.Add(-72*time.Hour)))
	assert.Equal(t, "0 minutes ago", RelativeTime(now, now.Add(time.Hour)))
}

func TestValidateSetup(t *testing.T) {
	err := ValidateSetup("   ", "temperate")
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	err = ValidateSetup("Ana", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "location", ve.Field)
	assert.True(t, IsValidation(err))

	assert.NoError(t, ValidateSetup("Ana", "temperate"))
}

func TestPreferences_WithAndGet(t *testing.T) {
	var p Preferences
	p = p.With(PrefHighContrast, true)
	assert.True(t, p.Get(PrefHighContrast))
	assert.False(t, p.Get(PrefLargeText))
	assert.False(t, p.Get(PrefVoiceGuidance))

	p = p.With(PrefHighContrast, false).With(PrefVoiceGuidance, true)
	assert.Equal(t, Preferences{VoiceGuidance: true}, p)
}
