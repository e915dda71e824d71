package cli

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/garden"
	"github.com/alexanderramin/gardenhelper/internal/teatest"
)

// TestDriver wraps teatest.Driver with Garden Helper inspection methods. Timers
// the controller schedules go to a fake clock; step them with Advance.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel on start with a seeded random source,
// sets the terminal size and drains Init().
func NewTestDriver(t *testing.T, app *App, start domain.Screen) *TestDriver {
	t.Helper()

	clock := teatest.NewClock()
	ctrl := app.newController(garden.WithRand(rand.New(rand.NewPCG(7, 11))))
	m := newAppModel(context.Background(), app, ctrl, start, clock.After)
	d := teatest.New(t, m, teatest.WithSize(100, 48), teatest.WithClock(clock))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// State returns the controller snapshot the model last rendered.
func (d *TestDriver) State() garden.State {
	return d.appModel().state
}

func (d *TestDriver) Screen() domain.Screen {
	return d.State().Screen
}

// Cursor returns the index of the focused button.
func (d *TestDriver) Cursor() int {
	return d.appModel().cursor
}

// FocusButton moves focus to the first button whose label contains label.
func (d *TestDriver) FocusButton(label string) {
	d.T.Helper()
	btns := buttonsFor(d.State())
	for range btns {
		if containsLabel(btns[d.Cursor()].label, label) {
			return
		}
		d.PressTab()
	}
	d.T.Fatalf("no button labelled %q on %s", label, d.Screen())
}

// Activate focuses the button labelled label and presses enter.
func (d *TestDriver) Activate(label string) {
	d.T.Helper()
	d.FocusButton(label)
	d.PressEnter()
}

// IsQuitting reports whether the app asked to quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func containsLabel(label, want string) bool {
	return strings.Contains(label, want)
}

// PlainView returns the rendered view without ANSI styling.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}
