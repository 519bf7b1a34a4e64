package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"colorPrimary":             "color-primary",
		"colorAccentSoftTintSolid": "color-accent-soft-tint-solid",
		"colorWarmStone":           "color-warm-stone",
		"colorPalepeach":           "color-palepeach",
	}
	for semantic, want := range cases {
		assert.Equal(t, want, VarName(semantic))
		assert.Equal(t, semantic, SemanticName(want))
	}
}

func TestNamingRoundTripsForEveryEntry(t *testing.T) {
	t.Parallel()

	th, err := Generate(brandColors)
	require.NoError(t, err)

	for _, entry := range th.Entries() {
		assert.Equal(t, entry.Name, SemanticName(VarName(entry.Name)))
	}
}

func TestKnownVarNamesAreGenerated(t *testing.T) {
	t.Parallel()

	th, err := Generate(brandColors)
	require.NoError(t, err)

	vars := th.Vars()
	for _, name := range KnownVarNames {
		_, ok := vars[name]
		assert.True(t, ok, "theme does not produce %s", name)
	}
}
