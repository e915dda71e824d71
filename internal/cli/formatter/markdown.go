package formatter

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal, wrapped to width. On a
// renderer error the source is returned unchanged.
func RenderMarkdown(src string, width int, highContrast bool) string {
	style := "dark"
	if highContrast {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(max(width, 20)),
		glamour.WithStandardStyle(style),
	)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimRight(out, "\n")
}
