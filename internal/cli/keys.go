package cli

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

type keyMap struct {
	Quit      key.Binding
	Back      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Activate  key.Binding
	StepBack  key.Binding
	StepAhead key.Binding
	Help      key.Binding
	Voice     key.Binding
	Contrast  key.Binding
	LargeText key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Next:      key.NewBinding(key.WithKeys("right", "down", "tab", "l", "j"), key.WithHelp("→", "next")),
	Prev:      key.NewBinding(key.WithKeys("left", "up", "shift+tab", "h", "k"), key.WithHelp("←", "prev")),
	Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	StepBack:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev step")),
	StepAhead: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next step")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Voice:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "voice")),
	Contrast:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contrast")),
	LargeText: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "large text")),
}

// navKeys maps the number row to the bottom navigation screens.
var navKeys = map[string]domain.Screen{
	"1": domain.ScreenDashboard,
	"2": domain.ScreenTesting,
	"3": domain.ScreenProgress,
	"4": domain.ScreenLearning,
	"5": domain.ScreenCommunity,
}

// navKeyFor returns the number key that opens screen, or "".
func navKeyFor(screen domain.Screen) string {
	for k, s := range navKeys {
		if s == screen {
			return k
		}
	}
	return ""
}

func (k keyMap) ShortHelp(screen domain.Screen) []key.Binding {
	switch screen {
	case domain.ScreenWelcome:
		return []key.Binding{k.Prev, k.Next, k.Activate, k.Quit}
	case domain.ScreenSetup:
		return []key.Binding{k.Activate, k.Back}
	case domain.ScreenTesting:
		return []key.Binding{k.Next, k.Activate, k.StepBack, k.StepAhead, k.Help, k.Voice, k.Quit}
	default:
		return []key.Binding{k.Next, k.Activate, k.Help, k.Voice, k.Contrast, k.LargeText, k.Quit}
	}
}
