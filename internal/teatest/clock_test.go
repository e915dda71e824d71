package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{ n int }

// echoModel records delivered pings and reschedules the first one.
type echoModel struct {
	clock *Clock
	seen  []int
}

func (m *echoModel) Init() tea.Cmd { return nil }

func (m *echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p, ok := msg.(pingMsg); ok {
		m.seen = append(m.seen, p.n)
		if p.n == 1 {
			return m, m.clock.After(50*time.Millisecond, pingMsg{n: 10})
		}
	}
	return m, nil
}

func (m *echoModel) View() string { return "" }

func TestClock_AdvanceDeliversInTimeOrder(t *testing.T) {
	clock := NewClock()
	m := &echoModel{clock: clock}
	d := New(t, m, WithClock(clock))

	clock.After(200*time.Millisecond, pingMsg{n: 3})
	clock.After(100*time.Millisecond, pingMsg{n: 1})
	clock.After(100*time.Millisecond, pingMsg{n: 2})
	assert.Equal(t, 3, clock.Pending())

	d.Advance(120 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, m.seen)
	assert.Equal(t, 120*time.Millisecond, clock.Elapsed())

	// The ping scheduled at 100ms fires at 150ms, before 3.
	d.Advance(time.Second)
	assert.Equal(t, []int{1, 2, 10, 3}, m.seen)
	assert.Zero(t, clock.Pending())
}

func TestClock_AdvanceStopsAtWindow(t *testing.T) {
	clock := NewClock()
	m := &echoModel{clock: clock}
	d := New(t, m, WithClock(clock))

	clock.After(time.Second, pingMsg{n: 5})
	d.Advance(999 * time.Millisecond)
	assert.Empty(t, m.seen)

	d.Advance(time.Millisecond)
	assert.Equal(t, []int{5}, m.seen)
}
