// Package teatest drives bubbletea models synchronously in tests.
//
// Driver calls Update directly and runs returned commands inline, so a test
// sees the model settle before its next assertion. Delayed messages go
// through a fake Clock instead of tea.Tick: the model takes a schedule func,
// tests pass Clock.After, and Driver.Advance moves virtual time.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxSteps bounds how many messages one Send may feed back into the model.
const maxSteps = 200

// defaultCmdTimeout separates instant commands from blocking ones. Blink
// commands sleep for about half a second and are dropped.
const defaultCmdTimeout = 10 * time.Millisecond

// Driver holds a model and feeds it messages one at a time.
type Driver struct {
	T     *testing.T
	Model tea.Model
	Clock *Clock

	// Quitting records that a command returned tea.QuitMsg.
	Quitting bool

	cmdTimeout time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithClock shares c with the model under test. Without it the driver makes
// its own clock, which only helps models that read Driver.Clock.
func WithClock(c *Clock) Option {
	return func(d *Driver) { d.Clock = c }
}

// WithCmdTimeout changes how long a command may block before it is dropped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, Clock: NewClock(), cmdTimeout: defaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init())
}

// Send delivers msg and runs every command it produces.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd)
}

// Press sends a non-rune key such as tea.KeyEnter.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.Press(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.Press(tea.KeyEsc) }
func (d *Driver) PressTab()   { d.T.Helper(); d.Press(tea.KeyTab) }
func (d *Driver) PressUp()    { d.T.Helper(); d.Press(tea.KeyUp) }
func (d *Driver) PressDown()  { d.T.Helper(); d.Press(tea.KeyDown) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.Press(tea.KeyCtrlC) }

// Type sends s one rune per key event.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

// run executes cmd and everything it leads to, breadth first. Batches are
// flattened into the queue; each resulting message goes through Update.
func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg := d.exec(next)
		switch msg := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case tea.QuitMsg:
			d.Quitting = true
			d.Model, _ = d.Model.Update(msg)
			return
		}
		if isBlink(msg) {
			continue
		}

		if steps++; steps > maxSteps {
			d.T.Logf("teatest: stopped after %d messages", maxSteps)
			return
		}
		var out tea.Cmd
		d.Model, out = d.Model.Update(msg)
		queue = append(queue, out)
	}
}

// exec runs cmd on its own goroutine and gives up after the command timeout.
func (d *Driver) exec(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(d.cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported cursor blink messages from bubbles.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
