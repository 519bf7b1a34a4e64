package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

var (
	swatchValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	swatchBlock      = strings.Repeat(" ", 6)
)

// Chip renders a colored block for value. Translucent values are shown over
// the surface color. Unparseable values render as a plain placeholder.
func Chip(value string) string {
	c, err := color.Parse(value)
	if err != nil {
		return lipgloss.NewStyle().Render("  ??  ")
	}
	shown := color.Over(c, color.White)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(shown.Hex())).
		Foreground(lipgloss.Color(contrast(shown))).
		Render(swatchBlock)
}

// Swatches writes one line per entry: a color chip, the variable name and the value.
func Swatches(w io.Writer, entries []theme.Entry) error {
	names := make([]string, len(entries))
	width := 0
	for i, entry := range entries {
		names[i] = "--" + theme.VarName(entry.Name)
		width = max(width, lipgloss.Width(names[i]))
	}
	nameStyle := lipgloss.NewStyle().Width(width + 2)

	var b strings.Builder
	for i, entry := range entries {
		fmt.Fprintf(&b, "%s %s %s\n",
			Chip(entry.Value),
			nameStyle.Render(names[i]),
			swatchValueStyle.Render(entry.Value),
		)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func contrast(c color.Color) string {
	if color.Lightness(c) > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
