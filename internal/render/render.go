// Package render writes style store contents in formats other tools consume.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Format names an output encoding.
type Format string

const (
	FormatCSS    Format = "css"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSwatch Format = "swatch"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCSS, FormatJSON, FormatYAML, FormatSwatch}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", themeerrors.NewValidationError("format", fmt.Sprintf("unsupported format %q (want css, json, yaml or swatch)", name), nil)
}

// CSS writes vars as a :root block of custom properties in name order.
func CSS(w io.Writer, vars map[string]string) error {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range sortedNames(vars) {
		fmt.Fprintf(&b, "  --%s: %s;\n", name, vars[name])
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes vars as an indented flat object.
func JSON(w io.Writer, vars map[string]string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(vars)
}

// YAML writes vars as a flat mapping.
func YAML(w io.Writer, vars map[string]string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(vars); err != nil {
		return err
	}
	return enc.Close()
}

func sortedNames(vars map[string]string) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
