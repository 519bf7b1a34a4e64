package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "six digit hex", input: "#1a365d", want: Color{R: 26, G: 54, B: 93, A: 1}},
		{name: "upper case hex", input: "#1A365D", want: Color{R: 26, G: 54, B: 93, A: 1}},
		{name: "short hex", input: "#fa0", want: Color{R: 255, G: 170, B: 0, A: 1}},
		{name: "surrounding whitespace", input: "  #ffffff ", want: White},
		{name: "rgb function", input: "rgb(1, 2, 3)", want: Color{R: 1, G: 2, B: 3, A: 1}},
		{name: "rgba function", input: "rgba(26,54,93,0.15)", want: Color{R: 26, G: 54, B: 93, A: 0.15}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"navy",
		"#12",
		"#1234567",
		"#12345g",
		"1a365d",
		"rgb(256, 0, 0)",
		"rgb(-1, 0, 0)",
		"rgb(1, 2)",
		"rgba(1, 2, 3, 1.5)",
		"rgba(1, 2, 3, nope)",
		"rgb(1.5, 2, 3)",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(input)
			require.Error(t, err)
			var colorErr *themeerrors.ColorError
			require.ErrorAs(t, err, &colorErr)
			require.Equal(t, input, colorErr.Input)
		})
	}
}

func TestMustParsePanicsOnInvalidInput(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { MustParse("not-a-color") })
	require.Equal(t, Black, MustParse("#000"))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#1a365d", MustParse("#1A365D").String())
	assert.Equal(t, "rgba(26,54,93,0.15)", WithAlpha(MustParse("#1a365d"), 0.15).String())
	assert.Equal(t, "rgba(26,54,93,0.7)", WithAlpha(MustParse("#1a365d"), 0.7).String())
	assert.Equal(t, "rgba(0,0,0,0)", WithAlpha(Black, 0).String())
	assert.Equal(t, "#1a365d", WithAlpha(MustParse("#1a365d"), 0.4).Hex())
}

func TestLightenAndDarkenKnownValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#666666", Lighten(Black, 0.4).String())
	assert.Equal(t, "#262626", Lighten(Black, 0.15).String())
	assert.Equal(t, "#bfbfbf", Darken(White, 0.25).String())
}

func TestLightenZeroIsIdentity(t *testing.T) {
	t.Parallel()

	for _, input := range samplePalette {
		c := MustParse(input)
		assert.Equal(t, c, Lighten(c, 0), input)
		assert.Equal(t, c, Darken(c, 0), input)
	}
}

func TestBoundaryClamping(t *testing.T) {
	t.Parallel()

	for _, amount := range []float64{0.1, 0.4, 1, 5} {
		assert.Equal(t, White, Lighten(White, amount))
		assert.Equal(t, Black, Darken(Black, amount))
	}
	assert.Equal(t, White, Lighten(MustParse("#1a365d"), 1))
	assert.Equal(t, Black, Darken(MustParse("#1a365d"), 1))
}

func TestLightenIsMonotonic(t *testing.T) {
	t.Parallel()

	for _, input := range samplePalette {
		c := MustParse(input)
		prevLighter := Lightness(c)
		prevDarker := Lightness(c)
		for step := 1; step <= 20; step++ {
			amount := float64(step) * 0.05

			lighter := Lightness(Lighten(c, amount))
			require.GreaterOrEqual(t, lighter, prevLighter-1e-9, "lighten %s by %.2f", input, amount)
			prevLighter = lighter

			darker := Lightness(Darken(c, amount))
			require.LessOrEqual(t, darker, prevDarker+1e-9, "darken %s by %.2f", input, amount)
			prevDarker = darker
		}
	}
}

func TestLightenPreservesAlpha(t *testing.T) {
	t.Parallel()

	c := WithAlpha(MustParse("#115e59"), 0.5)
	assert.Equal(t, 0.5, Lighten(c, 0.2).A)
	assert.Equal(t, 0.5, Darken(c, 0.2).A)
}

func TestWithAlphaPreservesChannels(t *testing.T) {
	t.Parallel()

	for _, input := range samplePalette {
		c := MustParse(input)
		tinted := WithAlpha(c, 0.15)
		assert.Equal(t, c.R, tinted.R)
		assert.Equal(t, c.G, tinted.G)
		assert.Equal(t, c.B, tinted.B)
		assert.Equal(t, 0.15, tinted.A)
	}
	assert.Equal(t, 1.0, WithAlpha(Black, 3).A)
}

var samplePalette = []string{
	"#1a365d", "#115e59", "#d97706", "#f87171", "#faf5f0",
	"#000000", "#ffffff", "#808080", "#ff0000", "#0c4a6e",
}

func TestOverCompositesTranslucentColors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#808080", Over(WithAlpha(Black, 0.5), White).String())
	assert.Equal(t, "#ffffff", Over(WithAlpha(Black, 0), White).String())
	assert.Equal(t, "#1a365d", Over(MustParse("#1a365d"), White).String())
	assert.True(t, Over(MustParse("rgba(26,54,93,0.15)"), White).Opaque())
}
