package render

import (
	"io"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Theme writes t in the requested format. Swatches keep entry order; the
// other formats are keyed by variable name.
func Theme(w io.Writer, format Format, t theme.Theme) error {
	switch format {
	case FormatSwatch:
		return Swatches(w, t.Entries())
	default:
		return Vars(w, format, t.Vars())
	}
}

// Vars writes a store snapshot in the requested format.
func Vars(w io.Writer, format Format, vars map[string]string) error {
	switch format {
	case FormatJSON:
		return JSON(w, vars)
	case FormatYAML:
		return YAML(w, vars)
	case FormatSwatch:
		entries := make([]theme.Entry, 0, len(vars))
		for _, name := range sortedNames(vars) {
			entries = append(entries, theme.Entry{Name: theme.SemanticName(name), Value: vars[name]})
		}
		return Swatches(w, entries)
	default:
		return CSS(w, vars)
	}
}
