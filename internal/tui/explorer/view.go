package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/render"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Width(12)
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.open {
		return tui.MutedStyle.Render("Theme explorer hidden. ctrl+k to open, q to quit.")
	}

	sections := []string{
		tui.TitleStyle.Render(fmt.Sprintf("Theme Explorer • %s", m.currentLabel())),
	}

	if m.mode == modeEdit {
		sections = append(sections, tui.SectionStyle.Render("Edit colors"), m.editorView())
	} else {
		sections = append(sections, tui.SectionStyle.Render("Palettes"), m.paletteList())
	}

	sections = append(sections, tui.SectionStyle.Render("Live values"), m.swatchView())

	if m.errMsg != "" {
		sections = append(sections, tui.ErrorStyle.Render("✗ "+m.errMsg))
	} else if m.status != "" {
		sections = append(sections, tui.SelectedStyle.Render("✓ "+m.status))
	}

	sections = append(sections, tui.HelpStyle.Render(m.help()))

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) currentLabel() string {
	if m.current == "" {
		return "no theme"
	}
	return DisplayName(m.current)
}

func (m Model) paletteList() string {
	lines := make([]string, 0, len(m.palettes))
	for i, name := range m.palettes {
		cursor := "  "
		label := DisplayName(name)
		if i == m.cursor {
			cursor = "▸ "
			label = tui.SelectedStyle.Render(label)
		}
		if name == m.current {
			label += tui.MutedStyle.Render(" (active)")
		}
		lines = append(lines, cursor+label)
	}
	return strings.Join(lines, "\n")
}

func (m Model) editorView() string {
	lines := make([]string, 0, len(m.inputs))
	for i, slot := range theme.Slots {
		marker := "  "
		if i == m.focus {
			marker = "▸ "
		}
		chip := render.Chip(m.inputs[i].Value())
		lines = append(lines, marker+labelStyle.Render(string(slot))+" "+chip+" "+m.inputs[i].View())
	}
	return strings.Join(lines, "\n")
}

func (m Model) swatchView() string {
	lines := make([]string, 0, len(theme.KnownVarNames))
	for _, name := range theme.KnownVarNames {
		value, ok := m.observed[name]
		if !ok {
			lines = append(lines, tui.MutedStyle.Render(fmt.Sprintf("       --%s unset", name)))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s --%s %s", render.Chip(value), name, tui.MutedStyle.Render(value)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) help() string {
	if m.mode == modeEdit {
		return "tab/↑↓ apply and move • enter apply and close • esc close"
	}
	return "↑↓ select • enter apply • e edit colors • ctrl+k hide • q quit"
}
