package formatter

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// FormatProfile renders the profile as a labelled block for `profile show`.
func FormatProfile(p *domain.UserProfile, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Gardener"))
	b.WriteString("\n")

	if !p.IsSetUp() {
		b.WriteString(Dim("Not set up yet. Run `gardenhelper profile set --name <name> --location <climate>`."))
		b.WriteString("\n")
		return b.String()
	}

	row := func(label, value string) {
		fmt.Fprintf(&b, "%-16s %s\n", Dim(label), value)
	}
	row("Name", Bold(p.Name))
	row("Role", p.Role.Label())
	row("Location", p.Location)
	row("Large text", onOff(p.Preferences.LargeText))
	row("High contrast", onOff(p.Preferences.HighContrast))
	row("Voice guidance", onOff(p.Preferences.VoiceGuidance))
	if p.LastCheckedAt != nil {
		row("Last checked", domain.RelativeTime(now, *p.LastCheckedAt))
	} else {
		row("Last checked", Dim("never"))
	}
	return b.String()
}

// ProfileYAML is the export form of a profile.
func ProfileYAML(p *domain.UserProfile) (string, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding profile: %w", err)
	}
	return string(out), nil
}

func onOff(b bool) string {
	if b {
		return StyleGreen.Render("on")
	}
	return Dim("off")
}
