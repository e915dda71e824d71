package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// setupSubmitMsg carries the setup form values into the controller.
type setupSubmitMsg struct {
	Name        string
	Location    string
	Preferences domain.Preferences
}

// setupForm holds the huh form and the values it binds to. It lives behind a
// pointer so the bindings survive appModel copies.
type setupForm struct {
	form      *huh.Form
	name      string
	location  string
	prefs     []domain.Preference
	submitted bool
}

// gardenHuhTheme styles huh forms with the active theme's palette.
func gardenHuhTheme(t formatter.Theme) *huh.Theme {
	h := huh.ThemeBase()

	h.Focused.Title = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	h.Focused.SelectSelector = lipgloss.NewStyle().Foreground(t.Accent)
	h.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(t.Accent)
	h.Focused.SelectedOption = lipgloss.NewStyle().Foreground(t.Good)
	h.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(t.Good).SetString("[✓] ")
	h.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(t.Fg)
	h.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorHCBlack).Background(t.Accent).Padding(0, 1)
	h.Focused.BlurredButton = lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1)
	h.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(t.Accent)
	h.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(t.Accent)
	h.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(t.Fg)
	h.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(t.Muted)
	h.Focused.Description = lipgloss.NewStyle().Foreground(t.Muted)

	h.Blurred.Title = lipgloss.NewStyle().Foreground(t.Muted)
	h.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(t.Muted)
	h.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(t.Muted)
	h.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(t.Muted)
	h.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(t.Muted)
	h.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(t.Muted)

	if t.LargeText {
		h.Focused.Title = h.Focused.Title.MarginBottom(1)
		h.Focused.SelectedOption = h.Focused.SelectedOption.Bold(true)
		h.Focused.TextInput.Text = h.Focused.TextInput.Text.Bold(true)
	}
	return h
}

// newSetupForm builds the setup form prefilled from the profile. Validation
// is left to the controller so its messages appear as toasts.
func newSetupForm(p domain.UserProfile, theme formatter.Theme) *setupForm {
	sf := &setupForm{name: p.Name, location: p.Location}
	for _, pref := range []domain.Preference{domain.PrefLargeText, domain.PrefHighContrast, domain.PrefVoiceGuidance} {
		if p.Preferences.Get(pref) {
			sf.prefs = append(sf.prefs, pref)
		}
	}

	locations := []huh.Option[string]{huh.NewOption("Choose your climate...", "")}
	for _, l := range domain.Locations {
		locations = append(locations, huh.NewOption(l, l))
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Placeholder("Your name").
				Value(&sf.name),
			huh.NewSelect[string]().
				Title("Where do you garden?").
				Options(locations...).
				Value(&sf.location),
			huh.NewMultiSelect[domain.Preference]().
				Title("Make Garden Helper easier to use").
				Options(
					huh.NewOption("Larger text", domain.PrefLargeText),
					huh.NewOption("High contrast colors", domain.PrefHighContrast),
					huh.NewOption("Voice guidance", domain.PrefVoiceGuidance),
				).
				Value(&sf.prefs),
		),
	).WithTheme(gardenHuhTheme(theme)).WithShowHelp(false)
	return sf
}

func (sf *setupForm) Init() tea.Cmd {
	return sf.form.Init()
}

// Update forwards msg to the form and returns the submit message the first
// time the form completes. A submitted form ignores further input.
func (sf *setupForm) Update(msg tea.Msg) tea.Cmd {
	if sf.submitted {
		return nil
	}
	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}
	if sf.form.State == huh.StateCompleted {
		sf.submitted = true
		submit := sf.values()
		return tea.Batch(cmd, func() tea.Msg { return submit })
	}
	return cmd
}

func (sf *setupForm) values() setupSubmitMsg {
	var prefs domain.Preferences
	for _, p := range sf.prefs {
		prefs = prefs.With(p, true)
	}
	return setupSubmitMsg{Name: sf.name, Location: sf.location, Preferences: prefs}
}

func (m appModel) viewSetup() string {
	s := m.state
	title := m.theme.Title("Let's get to know you")
	var sub string
	if s.Profile.Role != domain.RoleUnset {
		sub = m.theme.Dim("Setting up as: " + s.Profile.Role.Label())
	}
	body := ""
	if m.setup != nil {
		body = m.setup.form.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, sub, "", body)
}
