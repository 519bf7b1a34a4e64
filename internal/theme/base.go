package theme

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Slot names a base color a caller can select or edit.
type Slot string

const (
	SlotPrimary    Slot = "primary"
	SlotSecondary  Slot = "secondary"
	SlotAccent     Slot = "accent"
	SlotAccentSoft Slot = "accentSoft"
	SlotBackground Slot = "background"
)

// Slots lists every base slot in display order.
var Slots = []Slot{SlotPrimary, SlotSecondary, SlotAccent, SlotAccentSoft, SlotBackground}

// BaseColorSet holds the five brand colors a theme is derived from.
type BaseColorSet struct {
	Primary    string `yaml:"primary" toml:"primary" json:"primary" validate:"required,color"`
	Secondary  string `yaml:"secondary" toml:"secondary" json:"secondary" validate:"required,color"`
	Accent     string `yaml:"accent" toml:"accent" json:"accent" validate:"required,color"`
	AccentSoft string `yaml:"accentSoft" toml:"accentSoft" json:"accentSoft" validate:"required,color"`
	Background string `yaml:"background" toml:"background" json:"background" validate:"required,color"`
}

// Get returns the value stored in slot.
func (b BaseColorSet) Get(slot Slot) (string, bool) {
	switch slot {
	case SlotPrimary:
		return b.Primary, true
	case SlotSecondary:
		return b.Secondary, true
	case SlotAccent:
		return b.Accent, true
	case SlotAccentSoft:
		return b.AccentSoft, true
	case SlotBackground:
		return b.Background, true
	default:
		return "", false
	}
}

// With returns a copy of b with slot replaced by value. Unknown slots are
// reported as a validation error.
func (b BaseColorSet) With(slot Slot, value string) (BaseColorSet, error) {
	switch slot {
	case SlotPrimary:
		b.Primary = value
	case SlotSecondary:
		b.Secondary = value
	case SlotAccent:
		b.Accent = value
	case SlotAccentSoft:
		b.AccentSoft = value
	case SlotBackground:
		b.Background = value
	default:
		return b, themeerrors.NewValidationError(string(slot), "unknown color slot", nil)
	}
	return b, nil
}

// Validate checks that every slot is present and parses as a color.
func (b BaseColorSet) Validate() error {
	for _, slot := range Slots {
		value, _ := b.Get(slot)
		if value == "" {
			return themeerrors.NewValidationError(string(slot), "color is required", nil)
		}
		if _, err := color.Parse(value); err != nil {
			return themeerrors.NewValidationError(string(slot), err.Error(), err)
		}
	}
	return nil
}
