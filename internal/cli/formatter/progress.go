package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a static bar like [████░░░░] 45%.
// Green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	pct = max(0, min(pct, 1))
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// TestBar renders a running soil test with the bubbles progress bar in the
// theme's accent color.
func (t Theme) TestBar(fraction float64, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(t.Good)),
		progress.WithoutPercentage(),
		progress.WithWidth(max(width, 10)),
	)
	bar.EmptyColor = string(t.Muted)
	return bar.ViewAs(max(0, min(fraction, 1)))
}

// Gauge renders a reading's position within [lo, hi] and colors it by
// whether the value sits inside the healthy band [okLo, okHi].
func (t Theme) Gauge(value, lo, hi, okLo, okHi float64, width int) string {
	frac := 0.0
	if hi > lo {
		frac = (value - lo) / (hi - lo)
	}
	frac = max(0, min(frac, 1))
	width = max(width, 4)
	pos := min(int(frac*float64(width)), width-1)

	color := t.Good
	if value < okLo || value > okHi {
		color = t.Warn
	}
	bar := strings.Repeat("─", pos) + "●" + strings.Repeat("─", width-pos-1)
	return t.base().Foreground(color).Render(bar)
}
