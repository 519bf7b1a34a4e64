package player

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m.start()
	case AdvanceMsg:
		state, ok := m.machine.Advance(msg.Generation)
		if !ok {
			return m, nil
		}
		return m, m.schedule(state)
	case tui.StoreChangedMsg:
		m.recolor()
		return m, nil
	case tea.WindowSizeMsg:
		m.progress = m.progress.SetWidth(msg.Width - 12)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "enter", "r":
			return m.start()
		case "esc":
			m.machine.Reset()
			return m, nil
		}
	}
	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	state, changed := m.machine.Start()
	if !changed {
		return m, nil
	}
	return m, m.schedule(state)
}
