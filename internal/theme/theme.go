// Package theme derives a full color theme from a small set of brand colors.
//
// Derivation is pure: the same BaseColorSet and Params always produce the same
// Theme. Themes are replaced wholesale, never patched.
package theme

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Surface is the fixed card surface color of every theme.
const Surface = "#ffffff"

// Theme is the complete derived palette.
type Theme struct {
	Primary    Variants
	Secondary  Variants
	Accent     Variants
	AccentSoft Variants
	Background string
	Surface    string
}

// Entry is one flattened theme value keyed by its semantic camelCase name.
type Entry struct {
	Name  string
	Value string
}

// Generator builds themes with a fixed set of derivation params.
type Generator struct {
	params Params
}

// NewGenerator returns a Generator using params.
func NewGenerator(params Params) *Generator {
	return &Generator{params: params}
}

// Params returns the derivation amounts used by the generator.
func (g *Generator) Params() Params {
	return g.params
}

// Generate derives a Theme from base. Each family is derived independently;
// background passes through and surface is always white.
func (g *Generator) Generate(base BaseColorSet) (Theme, error) {
	var t Theme
	families := []struct {
		slot   Slot
		value  string
		target *Variants
	}{
		{SlotPrimary, base.Primary, &t.Primary},
		{SlotSecondary, base.Secondary, &t.Secondary},
		{SlotAccent, base.Accent, &t.Accent},
		{SlotAccentSoft, base.AccentSoft, &t.AccentSoft},
	}

	for _, family := range families {
		v, err := Derive(family.value, g.params)
		if err != nil {
			return Theme{}, themeerrors.NewValidationError(string(family.slot), err.Error(), err)
		}
		*family.target = v
	}

	if _, err := color.Parse(base.Background); err != nil {
		return Theme{}, themeerrors.NewValidationError(string(SlotBackground), err.Error(), err)
	}
	t.Background = base.Background
	t.Surface = Surface

	return t, nil
}

// Generate derives a theme with DefaultParams.
func Generate(base BaseColorSet) (Theme, error) {
	return NewGenerator(DefaultParams()).Generate(base)
}

// Entries flattens the theme: the four families with all six variants, then
// background and surface, then the legacy aliases.
func (t Theme) Entries() []Entry {
	families := []struct {
		prefix   string
		variants Variants
	}{
		{"colorPrimary", t.Primary},
		{"colorSecondary", t.Secondary},
		{"colorAccent", t.Accent},
		{"colorAccentSoft", t.AccentSoft},
	}

	entries := make([]Entry, 0, len(families)*len(variantFields)+2+len(legacyAliases))
	for _, family := range families {
		for _, field := range variantFields {
			entries = append(entries, Entry{Name: family.prefix + field.suffix, Value: field.get(family.variants)})
		}
	}
	entries = append(entries,
		Entry{Name: "colorBackground", Value: t.Background},
		Entry{Name: "colorSurface", Value: t.Surface},
	)
	for _, alias := range legacyAliases {
		entries = append(entries, Entry{Name: alias.name, Value: alias.source(t)})
	}
	return entries
}

// Map returns the flattened entries keyed by semantic name.
func (t Theme) Map() map[string]string {
	entries := t.Entries()
	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		out[entry.Name] = entry.Value
	}
	return out
}

type alias struct {
	name   string
	source func(Theme) string
}

// legacyAliases keeps the single-brand variable names from before palettes
// existed pointing at their semantic replacements.
var legacyAliases = []alias{
	{"colorNavy", func(t Theme) string { return t.Primary.Base }},
	{"colorTeal", func(t Theme) string { return t.Secondary.Base }},
	{"colorAmber", func(t Theme) string { return t.Accent.Base }},
	{"colorGolden", func(t Theme) string { return t.Accent.Lifted }},
	{"colorCoral", func(t Theme) string { return t.AccentSoft.Base }},
	{"colorWarmStone", func(t Theme) string { return t.Background }},
	{"colorPalepeach", func(t Theme) string { return t.Accent.TintSolid }},
	{"colorIceblue", func(t Theme) string { return t.Primary.TintSolid }},
	{"colorPalemint", func(t Theme) string { return t.Secondary.TintSolid }},
}

// AliasNames lists the legacy alias names in flattening order.
func AliasNames() []string {
	names := make([]string, len(legacyAliases))
	for i, a := range legacyAliases {
		names[i] = a.name
	}
	return names
}
