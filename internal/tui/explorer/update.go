package explorer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.StoreChangedMsg:
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.mode == modeEdit {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+k":
		m.open = !m.open
		if !m.open {
			m.stopEditing()
		}
		return m, nil
	}

	if !m.open {
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.mode == modeEdit {
		return m.handleEditKeys(msg)
	}
	return m.handleBrowseKeys(msg)
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.open = false
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.palettes)-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		if len(m.palettes) == 0 {
			return m, nil
		}
		name := m.palettes[m.cursor]
		if _, err := m.engine.ApplyPalette(m.ctx, name); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Applied %s", DisplayName(name))
		m.refresh()
		return m, nil
	case "e":
		cmd := m.startEditing()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEditing()
		m.errMsg = ""
		return m, nil
	case "tab", "down", "shift+tab", "up":
		if !m.commit() {
			return m, nil
		}
		delta := 1
		if msg.String() == "shift+tab" || msg.String() == "up" {
			delta = -1
		}
		cmd := m.moveFocus(delta)
		return m, cmd
	case "enter":
		if !m.commit() {
			return m, nil
		}
		m.stopEditing()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

// commit applies the focused slot and records the outcome for the view.
func (m *Model) commit() bool {
	applied, err := m.commitFocused()
	if err != nil {
		m.errMsg = err.Error()
		return false
	}
	m.errMsg = ""
	if applied {
		m.status = fmt.Sprintf("Applied custom %s", theme.Slots[m.focus])
		m.refresh()
	}
	return true
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var in textinput.Model
	in, cmd = m.inputs[m.focus].Update(msg)
	m.inputs[m.focus] = in
	return m, cmd
}
