package teatest

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Clock replaces tea.Tick in tests. Models schedule through After, which
// records the message instead of sleeping; Driver.Advance delivers due
// messages in time order.
type Clock struct {
	now     time.Duration
	seq     int
	pending []timer
}

type timer struct {
	at  time.Duration
	seq int
	msg tea.Msg
}

func NewClock() *Clock {
	return &Clock{}
}

// After records msg for delivery d from now and returns a nil Cmd.
func (c *Clock) After(d time.Duration, msg tea.Msg) tea.Cmd {
	c.seq++
	c.pending = append(c.pending, timer{at: c.now + d, seq: c.seq, msg: msg})
	return nil
}

// Pending returns the number of undelivered timers.
func (c *Clock) Pending() int {
	return len(c.pending)
}

// Elapsed returns the virtual time since the clock was created.
func (c *Clock) Elapsed() time.Duration {
	return c.now
}

// next pops the earliest timer due at or before end.
func (c *Clock) next(end time.Duration) (tea.Msg, bool) {
	if len(c.pending) == 0 {
		return nil, false
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].at != c.pending[j].at {
			return c.pending[i].at < c.pending[j].at
		}
		return c.pending[i].seq < c.pending[j].seq
	})
	t := c.pending[0]
	if t.at > end {
		return nil, false
	}
	c.pending = c.pending[1:]
	c.now = t.at
	return t.msg, true
}

// Advance moves the fake clock forward by dur, sending every message that
// falls due. Messages scheduled while advancing are delivered too when they
// fall inside the window.
func (d *Driver) Advance(dur time.Duration) {
	d.T.Helper()
	end := d.Clock.now + dur
	for {
		msg, ok := d.Clock.next(end)
		if !ok {
			break
		}
		d.Send(msg)
	}
	d.Clock.now = end
}
