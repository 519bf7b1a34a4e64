package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressView(t *testing.T) {
	t.Parallel()

	t.Run("renders with zero total", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(0, "#1a365d", "#d97706")
		require.Contains(t, p.View(0), "0/0")
	})

	t.Run("renders partial playback", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(11, "#1a365d", "#d97706")
		view := p.View(5)
		require.Contains(t, view, "5/11")
		require.Greater(t, len(strings.TrimSpace(view)), len("5/11"))
	})

	t.Run("caps the bar beyond total", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(11, "#1a365d", "#d97706")
		require.Contains(t, p.View(15), "15/11")
	})
}

func TestProgressRecolorAndWidth(t *testing.T) {
	t.Parallel()

	p := NewProgress(11, "#1a365d", "#d97706").SetWidth(3)
	require.Equal(t, 10, p.bar.Width)

	p = p.SetWidth(60).Recolor("#0c4a6e", "#f59e0b")
	require.Equal(t, 60, p.bar.Width)
	require.Equal(t, 11, p.total)
	require.Contains(t, p.View(11), "11/11")
}
