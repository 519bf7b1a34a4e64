package theme

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
)

// Params are the fixed amounts used to derive variants from a base color.
type Params struct {
	Lift          float64 `yaml:"lift" validate:"unit"`
	TintAlpha     float64 `yaml:"tint_alpha" validate:"unit"`
	TintSolidLift float64 `yaml:"tint_solid_lift" validate:"unit"`
	Darken        float64 `yaml:"darken" validate:"unit"`
	MutedAlpha    float64 `yaml:"muted_alpha" validate:"unit"`
}

// DefaultParams returns the brand's established derivation amounts.
func DefaultParams() Params {
	return Params{
		Lift:          0.15,
		TintAlpha:     0.15,
		TintSolidLift: 0.40,
		Darken:        0.10,
		MutedAlpha:    0.70,
	}
}

// Variants is the group of colors derived from a single base color.
type Variants struct {
	Base      string
	Lifted    string
	Tint      string
	TintSolid string
	Dark      string
	Muted     string
}

// Derive computes the variant group for base using the supplied params.
// Base is returned exactly as given; an unparseable base is an error.
func Derive(base string, params Params) (Variants, error) {
	c, err := color.Parse(base)
	if err != nil {
		return Variants{}, err
	}

	return Variants{
		Base:      base,
		Lifted:    color.Lighten(c, params.Lift).String(),
		Tint:      color.WithAlpha(c, params.TintAlpha).String(),
		TintSolid: color.WithAlpha(color.Lighten(c, params.TintSolidLift), 1).String(),
		Dark:      color.Darken(c, params.Darken).String(),
		Muted:     color.WithAlpha(c, params.MutedAlpha).String(),
	}, nil
}

// DeriveDefault derives variants with DefaultParams.
func DeriveDefault(base string) (Variants, error) {
	return Derive(base, DefaultParams())
}

type variantField struct {
	suffix string
	get    func(Variants) string
}

// variantFields fixes the flattening order of a variant group.
var variantFields = []variantField{
	{suffix: "", get: func(v Variants) string { return v.Base }},
	{suffix: "Lifted", get: func(v Variants) string { return v.Lifted }},
	{suffix: "Tint", get: func(v Variants) string { return v.Tint }},
	{suffix: "TintSolid", get: func(v Variants) string { return v.TintSolid }},
	{suffix: "Dark", get: func(v Variants) string { return v.Dark }},
	{suffix: "Muted", get: func(v Variants) string { return v.Muted }},
}
