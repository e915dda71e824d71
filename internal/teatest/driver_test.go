package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type doneMsg struct{}

// keyModel records keys. Enter answers with a batch whose second command
// quits, to exercise batch flattening and quit detection.
type keyModel struct {
	keys []string
	done int
}

func (m *keyModel) Init() tea.Cmd { return nil }

func (m *keyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		if msg.Type == tea.KeyEnter {
			return m, tea.Batch(func() tea.Msg { return doneMsg{} }, tea.Quit)
		}
	case doneMsg:
		m.done++
	}
	return m, nil
}

func (m *keyModel) View() string { return "" }

func TestDriver_KeysAndBatchQuit(t *testing.T) {
	m := &keyModel{}
	d := New(t, m)

	d.Type("ab")
	d.PressDown()
	d.PressTab()
	assert.Equal(t, []string{"a", "b", "down", "tab"}, m.keys)
	assert.False(t, d.Quitting)

	d.PressEnter()
	assert.Equal(t, 1, m.done)
	assert.True(t, d.Quitting)

	d.PressKey('z')
	assert.NotContains(t, m.keys, "z", "a quitting driver drops input")
}
