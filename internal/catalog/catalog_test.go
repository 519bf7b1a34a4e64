package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestDefaultCatalogOrderAndContents(t *testing.T) {
	t.Parallel()

	c := Default()
	require.Equal(t, 24, c.Len())

	names := c.Names()
	assert.Equal(t, "default", names[0])
	assert.Equal(t, "midnight", names[1])
	assert.Equal(t, "midnight_blue", names[len(names)-1])

	colors, err := c.Get("default")
	require.NoError(t, err)
	assert.Equal(t, theme.BaseColorSet{
		Primary:    "#1a365d",
		Secondary:  "#115e59",
		Accent:     "#d97706",
		AccentSoft: "#f87171",
		Background: "#faf5f0",
	}, colors)

	for _, p := range c.Palettes() {
		_, err := theme.Generate(p.Colors)
		assert.NoError(t, err, p.Name)
	}
}

func TestGetUnknownPalette(t *testing.T) {
	t.Parallel()

	c := Default()
	_, err := c.Get("neon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, themeerrors.ErrUnknownPalette))

	var unknown *themeerrors.UnknownPaletteError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "neon", unknown.Name)
	assert.Len(t, unknown.Available, 24)
	assert.False(t, c.Has("neon"))
	assert.True(t, c.Has("ocean"))
}

func TestPalettesReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Default()
	palettes := c.Palettes()
	palettes[0].Colors.Primary = "#000000"

	colors, err := c.Get("default")
	require.NoError(t, err)
	assert.Equal(t, "#1a365d", colors.Primary)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "empty",
			doc:   "palettes: []\n",
			field: "palettes",
		},
		{
			name: "bad name",
			doc: `palettes:
  - name: "Big Sky"
    colors: {primary: "#000", secondary: "#000", accent: "#000", accentSoft: "#000", background: "#fff"}
`,
			field: "palettes[0].name",
		},
		{
			name: "missing slot",
			doc: `palettes:
  - name: sky
    colors: {primary: "#000", secondary: "#000", accent: "#000", background: "#fff"}
`,
			field: "palettes[0].colors.accentsoft",
		},
		{
			name: "not hex",
			doc: `palettes:
  - name: sky
    colors: {primary: "navy", secondary: "#000", accent: "#000", accentSoft: "#000", background: "#fff"}
`,
			field: "palettes[0].colors.primary",
		},
		{
			name: "eight digit hex",
			doc: `palettes:
  - name: sky
    colors: {primary: "#000", secondary: "#1a365dff", accent: "#000", accentSoft: "#000", background: "#fff"}
`,
			field: "palettes[0].colors.secondary",
		},
		{
			name: "duplicate",
			doc: `palettes:
  - name: sky
    colors: {primary: "#000", secondary: "#000", accent: "#000", accentSoft: "#000", background: "#fff"}
  - name: sky
    colors: {primary: "#111", secondary: "#000", accent: "#000", accentSoft: "#000", background: "#fff"}
`,
			field: "palettes[1].name",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse("test.yaml", []byte(tc.doc), FormatYAML)
			var validationErr *themeerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestParseAcceptsFunctionalNotation(t *testing.T) {
	t.Parallel()

	doc := `palettes:
  - name: dusk
    colors: {primary: "rgb(26,54,93)", secondary: "#115e59", accent: "rgba(217,119,6,1)", accentSoft: "#f87171", background: "#faf5f0"}
`
	c, err := Parse("test.yaml", []byte(doc), FormatYAML)
	require.NoError(t, err)

	base, err := c.Get("dusk")
	require.NoError(t, err)
	assert.Equal(t, "rgb(26,54,93)", base.Primary)

	_, err = theme.Generate(base)
	require.NoError(t, err)
}

func TestParseYAMLSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse("broken.yaml", []byte("palettes:\n  - name: [sky\n"), FormatYAML)
	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.yaml", parseErr.Path)
	assert.Greater(t, parseErr.Line, 0)
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "palettes.toml")
	contents := `[[palettes]]
name = "dusk"
description = "Evening purple"

[palettes.colors]
primary = "#3b0764"
secondary = "#581c87"
accent = "#f59e0b"
accentSoft = "#fbbf24"
background = "#faf5ff"

[[palettes]]
name = "dawn"

[palettes.colors]
primary = "#9a3412"
secondary = "#c2410c"
accent = "#0ea5e9"
accentSoft = "#38bdf8"
background = "#fff7ed"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dusk", "dawn"}, c.Names())

	p, err := c.Palette("dusk")
	require.NoError(t, err)
	assert.Equal(t, "Evening purple", p.Description)
	assert.Equal(t, "#3b0764", p.Colors.Primary)
}

func TestLoadTOMLSyntaxError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "palettes.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[palettes]]\nname = \n"), 0o644))

	_, err := Load(path)
	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestLoadYAMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "palettes.yml")
	contents := `palettes:
  - name: sky
    colors: {primary: "#0c4a6e", secondary: "#0e7490", accent: "#f59e0b", accentSoft: "#fb923c", background: "#f0f9ff"}
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	c, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := Load("palettes.json")
	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLoadOrDefaultWithoutPath(t *testing.T) {
	t.Parallel()

	c, err := LoadOrDefault(" ")
	require.NoError(t, err)
	assert.Equal(t, 24, c.Len())
}
