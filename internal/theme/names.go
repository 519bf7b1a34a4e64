package theme

import (
	"strings"
	"unicode"
)

// VarName converts a semantic camelCase name into the store's kebab-case
// variable name: colorAccentSoftTintSolid becomes color-accent-soft-tint-solid.
func VarName(semantic string) string {
	var b strings.Builder
	b.Grow(len(semantic) + 8)
	for _, r := range semantic {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SemanticName is the inverse of VarName.
func SemanticName(varName string) string {
	var b strings.Builder
	b.Grow(len(varName))
	upper := false
	for _, r := range varName {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Vars flattens the theme keyed by store variable name.
func (t Theme) Vars() map[string]string {
	entries := t.Entries()
	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		out[VarName(entry.Name)] = entry.Value
	}
	return out
}

// KnownVarNames are the variables consumers read back from the store.
var KnownVarNames = []string{
	"color-primary",
	"color-secondary",
	"color-accent",
	"color-accent-soft",
	"color-background",
	"color-primary-lifted",
	"color-secondary-lifted",
	"color-accent-lifted",
	"color-primary-tint-solid",
	"color-secondary-tint-solid",
}
