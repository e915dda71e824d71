package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the set of styles the TUI renders with. It is rebuilt whenever the
// accessibility preferences change.
type Theme struct {
	HighContrast bool
	LargeText    bool

	Accent lipgloss.Color
	Good   lipgloss.Color
	Warn   lipgloss.Color
	Bad    lipgloss.Color
	Fg     lipgloss.Color
	Muted  lipgloss.Color
}

// NewTheme returns the default palette, or the high-contrast one, with large
// text applied on top.
func NewTheme(highContrast, largeText bool) Theme {
	t := Theme{
		LargeText: largeText,
		Accent:    ColorSoil,
		Good:      ColorGreen,
		Warn:      ColorYellow,
		Bad:       ColorRed,
		Fg:        ColorFg,
		Muted:     ColorDim,
	}
	if highContrast {
		t.HighContrast = true
		t.Accent = ColorHCYellow
		t.Good = ColorHCYellow
		t.Warn = ColorHCYellow
		t.Bad = ColorHCWhite
		t.Fg = ColorHCWhite
		t.Muted = ColorHCWhite
	}
	return t
}

func (t Theme) base() lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.Fg)
	if t.HighContrast {
		s = s.Background(ColorHCBlack)
	}
	if t.LargeText {
		s = s.Bold(true)
	}
	return s
}

// Title renders a screen title. Large text adds vertical padding and spaces
// the letters out.
func (t Theme) Title(text string) string {
	s := t.base().Foreground(t.Accent).Bold(true)
	if t.LargeText {
		return s.Padding(1, 2).Render(spaced(strings.ToUpper(text)))
	}
	return s.Render(text)
}

func (t Theme) Text(text string) string {
	return t.base().Render(text)
}

func (t Theme) Dim(text string) string {
	return t.base().Foreground(t.Muted).Render(text)
}

func (t Theme) Positive(text string) string {
	return t.base().Foreground(t.Good).Render(text)
}

func (t Theme) Bold(text string) string {
	return t.base().Bold(true).Render(text)
}

// Button renders a selectable label. The focused button is inverted.
func (t Theme) Button(label string, focused bool) string {
	s := t.base().Padding(0, 1)
	if t.LargeText {
		s = s.Padding(0, 2)
	}
	if focused {
		return s.Foreground(ColorHCBlack).Background(t.Accent).Bold(true).Render("▸ " + label)
	}
	return s.Render("  " + label)
}

// Toast renders the notification banner.
func (t Theme) Toast(msg string) string {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Good).
		Foreground(t.Fg).
		Padding(0, 2)
	if t.HighContrast {
		s = s.Background(ColorHCBlack).BorderForeground(ColorHCYellow)
	}
	if t.LargeText {
		s = s.Bold(true).Padding(1, 3)
	}
	return s.Render(msg)
}

// Box wraps content in a rounded border with an optional title.
func (t Theme) Box(title, content string) string {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 2)
	if t.LargeText {
		s = s.Padding(1, 3)
	}
	if title != "" {
		content = t.base().Foreground(t.Accent).Bold(true).Render(title) + "\n\n" + content
	}
	return s.Render(content)
}

func spaced(s string) string {
	r := []rune(s)
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
