// Package explorer is the development color explorer: a toggleable panel that
// switches preset palettes and edits individual base colors.
package explorer

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Engine is the subset of the theme engine the explorer drives.
type Engine interface {
	ApplyPalette(ctx context.Context, name string) (theme.Theme, error)
	SetColor(ctx context.Context, slot theme.Slot, value string) (theme.Theme, error)
	Current() (string, theme.BaseColorSet)
	Palettes() []string
}

type mode int

const (
	modeBrowse mode = iota
	modeEdit
)

// Model is the explorer state.
type Model struct {
	ctx    context.Context
	engine Engine
	store  *store.Store

	palettes []string
	cursor   int
	open     bool
	mode     mode

	inputs []textinput.Model
	focus  int

	observed map[string]string
	current  string
	status   string
	errMsg   string
	quitting bool
}

var titleCaser = cases.Title(language.English)

// DisplayName turns a palette key such as midnight_blue into "Midnight Blue".
func DisplayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// NewModel builds an explorer with the panel open and the cursor on the
// current palette.
func NewModel(ctx context.Context, engine Engine, st *store.Store) Model {
	m := Model{
		ctx:      ctx,
		engine:   engine,
		store:    st,
		palettes: engine.Palettes(),
		open:     true,
		inputs:   newInputs(),
	}
	m.refresh()
	for i, name := range m.palettes {
		if name == m.current {
			m.cursor = i
		}
	}
	return m
}

func newInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(theme.Slots))
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "#rrggbb"
		in.CharLimit = 32
		in.Width = 24
		inputs[i] = in
	}
	return inputs
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Open reports whether the panel is shown.
func (m Model) Open() bool {
	return m.open
}

// Editing reports whether the slot editor is active.
func (m Model) Editing() bool {
	return m.mode == modeEdit
}

// Cursor returns the highlighted palette index.
func (m Model) Cursor() int {
	return m.cursor
}

// Err returns the last apply error message, if any.
func (m Model) Err() string {
	return m.errMsg
}

// Observed returns the store values the explorer last read back.
func (m Model) Observed() map[string]string {
	return m.observed
}

func (m *Model) refresh() {
	m.current, _ = m.engine.Current()
	m.observed = m.store.Observe(theme.KnownVarNames)
}

func (m *Model) startEditing() tea.Cmd {
	_, base := m.engine.Current()
	for i, slot := range theme.Slots {
		value, _ := base.Get(slot)
		m.inputs[i].SetValue(value)
		m.inputs[i].Blur()
	}
	m.mode = modeEdit
	m.focus = 0
	m.errMsg = ""
	return m.inputs[0].Focus()
}

func (m *Model) stopEditing() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.mode = modeBrowse
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

// commitFocused applies the focused slot when its value differs from the
// current base color.
func (m *Model) commitFocused() (bool, error) {
	slot := theme.Slots[m.focus]
	value := strings.TrimSpace(m.inputs[m.focus].Value())
	_, base := m.engine.Current()
	if current, _ := base.Get(slot); current == value {
		return false, nil
	}
	if _, err := m.engine.SetColor(m.ctx, slot, value); err != nil {
		return false, err
	}
	return true, nil
}
