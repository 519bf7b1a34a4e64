package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load returns Defaults when path is empty, otherwise ParseConfig(path).
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	return ParseConfig(path)
}

// ParseConfig reads a configuration file, overlays it onto Defaults and validates the result.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, themeerrors.NewParseError(path, ExtractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ExtractLine pulls the line number out of a yaml.v3 error message, or returns 0.
func ExtractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
