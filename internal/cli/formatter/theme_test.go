package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTheme_HighContrastPalette(t *testing.T) {
	hc := NewTheme(true, false)
	assert.True(t, hc.HighContrast)
	for _, c := range []any{hc.Accent, hc.Good, hc.Warn, hc.Bad, hc.Fg, hc.Muted} {
		assert.Contains(t, []any{ColorHCYellow, ColorHCWhite, ColorHCBlack}, c)
	}

	def := NewTheme(false, false)
	assert.Equal(t, ColorSoil, def.Accent)
	assert.NotEqual(t, hc.Fg, def.Fg)
}

func TestTheme_LargeTextTitle(t *testing.T) {
	small := stripANSI(NewTheme(false, false).Title("Dashboard"))
	large := stripANSI(NewTheme(false, true).Title("Dashboard"))
	assert.Contains(t, small, "Dashboard")
	assert.Contains(t, large, "D A S H B O A R D")
	assert.Greater(t, len(large), len(small))
}

func TestTheme_ButtonFocus(t *testing.T) {
	th := NewTheme(false, false)
	assert.Contains(t, stripANSI(th.Button("Save", true)), "▸ Save")
	assert.NotContains(t, stripANSI(th.Button("Save", false)), "▸")
}

func TestTheme_ToastAndBox(t *testing.T) {
	th := NewTheme(true, true)
	assert.Contains(t, stripANSI(th.Toast("Saved!")), "Saved!")
	box := stripANSI(th.Box("Soil", "moist"))
	assert.Contains(t, box, "Soil")
	assert.Contains(t, box, "moist")
}
