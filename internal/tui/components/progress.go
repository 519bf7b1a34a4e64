package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how far through a fixed number of steps playback is.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress bar shaded from one theme color to another.
func NewProgress(total int, from, to string) Progress {
	bar := progress.New(progress.WithGradient(from, to), progress.WithoutPercentage())
	bar.Width = 40
	return Progress{bar: bar, total: total}
}

// Recolor returns a copy using a new gradient.
func (p Progress) Recolor(from, to string) Progress {
	width := p.bar.Width
	p.bar = progress.New(progress.WithGradient(from, to), progress.WithoutPercentage())
	p.bar.Width = width
	return p
}

// SetWidth adjusts the bar width, keeping a sensible minimum.
func (p Progress) SetWidth(width int) Progress {
	if width < 10 {
		width = 10
	}
	p.bar.Width = width
	return p
}

// View renders the bar for the number of steps reached.
func (p Progress) View(reached int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Max(0, math.Min(1.0, float64(reached)/float64(p.total)))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%2d/%d", reached, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
