// Package catalog holds the named base color sets a theme can be generated from.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

//go:embed palettes.yaml
var builtin []byte

// BuiltinSource names the embedded catalog in errors.
const BuiltinSource = "builtin:palettes.yaml"

// Palette is a named base color set.
type Palette struct {
	Name        string             `yaml:"name" toml:"name" validate:"required,palette_name"`
	Description string             `yaml:"description,omitempty" toml:"description"`
	Colors      theme.BaseColorSet `yaml:"colors" toml:"colors"`
}

type document struct {
	Palettes []Palette `yaml:"palettes" toml:"palettes" validate:"required,min=1,dive"`
}

// Catalog is an ordered, read-only set of palettes.
type Catalog struct {
	palettes []Palette
	index    map[string]int
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(BuiltinSource, builtin, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded palettes are invalid: %v", err))
	}
	return c
}

// Format selects the decoder used by Parse.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks a decoder from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", themeerrors.NewValidationError("catalog", fmt.Sprintf("unsupported catalog extension %q", filepath.Ext(path)), nil)
	}
}

// Load reads a catalog file, choosing YAML or TOML by extension.
func Load(path string) (*Catalog, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}

	return Parse(path, data, format)
}

// LoadOrDefault returns Default when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes and validates a catalog document. source only labels errors.
func Parse(source string, data []byte, format Format) (*Catalog, error) {
	var doc document

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, themeerrors.NewParseError(source, config.ExtractLine(err), err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			line := 0
			var perr toml.ParseError
			if errors.As(err, &perr) {
				line = perr.Position.Line
			}
			return nil, themeerrors.NewParseError(source, line, err)
		}
	default:
		return nil, themeerrors.NewValidationError("catalog", fmt.Sprintf("unsupported format %q", format), nil)
	}

	return New(doc.Palettes)
}

// New validates palettes and builds a catalog preserving their order.
func New(palettes []Palette) (*Catalog, error) {
	doc := document{Palettes: palettes}
	if err := config.GetValidator().Struct(doc); err != nil {
		return nil, config.ConvertValidationError(err)
	}

	c := &Catalog{
		palettes: make([]Palette, 0, len(palettes)),
		index:    make(map[string]int, len(palettes)),
	}

	for i, p := range palettes {
		if _, exists := c.index[p.Name]; exists {
			return nil, themeerrors.NewValidationError(fmt.Sprintf("palettes[%d].name", i), fmt.Sprintf("duplicate palette name %q", p.Name), nil)
		}
		if err := p.Colors.Validate(); err != nil {
			return nil, fmt.Errorf("palette %q: %w", p.Name, err)
		}
		c.index[p.Name] = len(c.palettes)
		c.palettes = append(c.palettes, p)
	}

	return c, nil
}

// Get returns the base colors for name, or an UnknownPaletteError.
func (c *Catalog) Get(name string) (theme.BaseColorSet, error) {
	p, err := c.Palette(name)
	if err != nil {
		return theme.BaseColorSet{}, err
	}
	return p.Colors, nil
}

// Palette returns the full palette record for name.
func (c *Catalog) Palette(name string) (Palette, error) {
	i, ok := c.index[name]
	if !ok {
		return Palette{}, themeerrors.NewUnknownPaletteError(name, c.Names())
	}
	return c.palettes[i], nil
}

// Has reports whether name is in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names lists palette names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.palettes))
	for i, p := range c.palettes {
		names[i] = p.Name
	}
	return names
}

// Palettes returns a copy of every palette in declaration order.
func (c *Catalog) Palettes() []Palette {
	return append([]Palette(nil), c.palettes...)
}

// Len returns the number of palettes.
func (c *Catalog) Len() int {
	return len(c.palettes)
}
