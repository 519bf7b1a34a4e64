package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/journey"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
	"github.com/alexisbeaulieu97/themekit/internal/tui/components"
)

var captionStyle = lipgloss.NewStyle().MarginTop(1)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.machine.State()
	sections := []string{tui.TitleStyle.Render("The AI Adoption Journey")}

	if state.Playing {
		sections = append(sections, tui.Hex(m.colors.Primary).Bold(true).Render(state.Phase.Name()))
	} else {
		label := journey.ActionLabel(state)
		sections = append(sections, lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(m.colors.Accent)).
			Padding(0, 2).
			Render("▶ "+label))
	}

	sections = append(sections, m.progress.View(int(state.Phase)+1))

	if scene := m.sceneView(state.Phase); scene != "" {
		sections = append(sections, tui.SectionStyle.Render("Scene"), scene)
	}

	caption := journey.CaptionFor(state.Phase)
	text := tui.Hex(m.colors.Resolve(caption.Role)).Render(caption.Title)
	if caption.Detail != "" {
		text += "\n" + tui.MutedStyle.Render(caption.Detail)
	}
	sections = append(sections, captionStyle.Render(text))

	if panels, ok := journey.Insight(state); ok {
		sections = append(sections, m.insightView(panels))
	}

	sections = append(sections, tui.HelpStyle.Render("space play/replay • esc reset • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) sceneView(phase journey.Phase) string {
	visible := journey.Scene(phase)
	lines := make([]string, 0, len(visible))
	for _, v := range visible {
		style := tui.Hex(m.colors.Resolve(v.Role))
		switch v.Render {
		case journey.Fading, journey.Dimmed:
			style = style.Faint(true)
		case journey.Entering:
			style = style.Bold(true)
		}
		label := v.Label
		if label == "" {
			label = v.ID
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %-6s %s", glyph(v.Kind), v.Kind, label))+
			tui.MutedStyle.Render(" "+v.Render.String()))
	}
	return strings.Join(lines, "\n")
}

func (m Model) insightView(panels []journey.Panel) string {
	boxes := make([]string, 0, len(panels))
	for _, p := range panels {
		card := components.NewCard(p.Heading, p.Body).WithStyle(components.CardStyle{
			Accent: m.colors.Resolve(p.Role),
			Border: m.colors.Primary,
			Width:  44,
		})
		boxes = append(boxes, card.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func glyph(kind journey.Kind) string {
	switch kind {
	case journey.KindPath:
		return "─"
	case journey.KindZone:
		return "▒"
	case journey.KindCoach:
		return "C"
	default:
		return "●"
	}
}
