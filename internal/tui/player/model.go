// Package player plays the journey animation in the terminal, painted from
// the style store.
package player

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/journey"
	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/tui/components"
)

// AdvanceMsg asks the machine to leave the phase it was scheduled in. It
// carries the generation so ticks from an earlier run are ignored.
type AdvanceMsg struct {
	Generation uint64
}

// Model is the player state.
type Model struct {
	machine  *journey.Machine
	store    *store.Store
	colors   journey.Colors
	progress components.Progress
	speed    float64
	autoplay bool
	quitting bool
}

// Option customises the player.
type Option func(*Model)

// WithSpeed scales every phase duration down by speed.
func WithSpeed(speed float64) Option {
	return func(m *Model) {
		if speed > 0 {
			m.speed = speed
		}
	}
}

// WithAutoplay starts playback as soon as the program runs.
func WithAutoplay() Option {
	return func(m *Model) {
		m.autoplay = true
	}
}

// NewModel builds a player reading colors from st.
func NewModel(st *store.Store, opts ...Option) Model {
	m := Model{
		machine:  journey.NewMachine(),
		store:    st,
		progress: components.NewProgress(journey.Count, journey.DefaultColors.Primary, journey.DefaultColors.Accent),
		speed:    1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.recolor()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if !m.autoplay {
		return nil
	}
	return func() tea.Msg { return startMsg{} }
}

type startMsg struct{}

// State exposes the machine state.
func (m Model) State() journey.State {
	return m.machine.State()
}

// Colors returns the colors the player is painting with.
func (m Model) Colors() journey.Colors {
	return m.colors
}

func (m *Model) recolor() {
	m.colors = journey.ColorsFrom(m.store)
	m.progress = m.progress.Recolor(m.colors.Primary, m.colors.Accent)
}

func (m Model) schedule(state journey.State) tea.Cmd {
	delay, ok := state.Delay()
	if !ok {
		return nil
	}
	delay = time.Duration(float64(delay) / m.speed)
	gen := state.Generation
	return tea.Tick(delay, func(time.Time) tea.Msg { return AdvanceMsg{Generation: gen} })
}
