package config

import (
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Config represents the themekit configuration document.
type Config struct {
	Version        string       `yaml:"version" validate:"required,semver"`
	Catalog        string       `yaml:"catalog,omitempty"`
	DefaultPalette string       `yaml:"default_palette" validate:"required,palette_name"`
	Variants       theme.Params `yaml:"variants"`
	Logging        Logging      `yaml:"logging"`
	Journey        Journey      `yaml:"journey"`
}

// Logging configures the structured logger.
type Logging struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Human bool   `yaml:"human"`
}

// Journey tunes the journey player.
type Journey struct {
	// Speed multiplies playback rate; 2 plays twice as fast.
	Speed float64 `yaml:"speed" validate:"gt=0,lte=100"`
}

// DefaultPaletteName is the palette applied at startup when none is configured.
const DefaultPaletteName = "default"

// Defaults returns the configuration used when no file is supplied.
func Defaults() *Config {
	return &Config{
		Version:        "1.0",
		DefaultPalette: DefaultPaletteName,
		Variants:       theme.DefaultParams(),
		Logging:        Logging{Level: "info"},
		Journey:        Journey{Speed: 1},
	}
}
