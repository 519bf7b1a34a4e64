package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle is the look of a Card. Colors are theme values such as #1a365d.
type CardStyle struct {
	Accent string
	Border string
	Width  int
}

// Card is a bordered box with a heading and a wrapped body.
type Card struct {
	title string
	body  string
	style CardStyle
}

// NewCard creates a card 44 columns wide.
func NewCard(title, body string) *Card {
	return &Card{title: title, body: body, style: CardStyle{Width: 44}}
}

// WithStyle replaces the card style.
func (c *Card) WithStyle(style CardStyle) *Card {
	c.style = style
	return c
}

// View renders the card.
func (c *Card) View() string {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if c.style.Width > 0 {
		box = box.Width(c.style.Width)
	}
	if c.style.Border != "" {
		box = box.BorderForeground(lipgloss.Color(c.style.Border))
	}

	heading := lipgloss.NewStyle().Bold(true)
	if c.style.Accent != "" {
		heading = heading.Foreground(lipgloss.Color(c.style.Accent))
	}

	var content []string
	if c.title != "" {
		content = append(content, heading.Render(strings.ToUpper(c.title)))
	}
	if c.body != "" {
		content = append(content, c.body)
	}
	return box.Render(strings.Join(content, "\n"))
}
