// Package engine applies palettes to the style store.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// CustomPalette is reported by Current after ApplyColors or SetColor.
const CustomPalette = "custom"

// Catalog supplies base color sets by palette name.
type Catalog interface {
	Get(name string) (theme.BaseColorSet, error)
	Names() []string
}

// Service generates themes and writes them to a store.
type Service struct {
	applyMu sync.Mutex

	stateMu sync.RWMutex
	current string
	base    theme.BaseColorSet

	catalog        Catalog
	store          *store.Store
	generator      *theme.Generator
	defaultPalette string
	logger         ports.Logger
	events         ports.EventPublisher
}

// Option customises a Service.
type Option func(*Service)

// WithGenerator overrides the derivation params.
func WithGenerator(g *theme.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(log ports.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithPublisher sets where palette.applied events go.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) {
		s.events = publisher
	}
}

// WithDefaultPalette sets the palette Init applies.
func WithDefaultPalette(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.defaultPalette = name
		}
	}
}

// New constructs a Service. The store must not be nil.
func New(catalog Catalog, st *store.Store, opts ...Option) *Service {
	s := &Service{
		catalog:        catalog,
		store:          st,
		generator:      theme.NewGenerator(theme.DefaultParams()),
		defaultPalette: "default",
		logger:         logger.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "engine")
	return s
}

// Init resets the store to the default palette.
func (s *Service) Init(ctx context.Context) error {
	base, err := s.catalog.Get(s.defaultPalette)
	if err != nil {
		s.logger.Error(ctx, "default palette unavailable", "palette", s.defaultPalette, "error", err)
		return fmt.Errorf("init: %w", err)
	}
	_, err = s.apply(ctx, s.defaultPalette, base, true)
	return err
}

// ApplyPalette applies a catalog palette. Unknown names fail without touching
// the store.
func (s *Service) ApplyPalette(ctx context.Context, name string) (theme.Theme, error) {
	base, err := s.catalog.Get(name)
	if err != nil {
		s.logger.Warn(ctx, "palette lookup failed", "palette", name, "error", err)
		return theme.Theme{}, err
	}
	return s.apply(ctx, name, base, false)
}

// ApplyColors applies a caller-supplied base set.
func (s *Service) ApplyColors(ctx context.Context, base theme.BaseColorSet) (theme.Theme, error) {
	return s.apply(ctx, CustomPalette, base, false)
}

// SetColor replaces one slot of the current base set and reapplies it.
func (s *Service) SetColor(ctx context.Context, slot theme.Slot, value string) (theme.Theme, error) {
	_, base := s.Current()
	next, err := base.With(slot, value)
	if err != nil {
		return theme.Theme{}, err
	}
	return s.apply(ctx, CustomPalette, next, false)
}

// Current returns the applied palette name and its base colors. The name is
// empty before the first successful apply.
func (s *Service) Current() (string, theme.BaseColorSet) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.current, s.base
}

// Palettes lists the catalog names.
func (s *Service) Palettes() []string {
	return s.catalog.Names()
}

// Store returns the store the service writes to.
func (s *Service) Store() *store.Store {
	return s.store
}

func (s *Service) apply(ctx context.Context, name string, base theme.BaseColorSet, reset bool) (theme.Theme, error) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	t, err := s.generator.Generate(base)
	if err != nil {
		s.logger.Warn(ctx, "palette rejected", "palette", name, "error", err)
		return theme.Theme{}, fmt.Errorf("apply %s: %w", name, err)
	}

	// Subscribers notified by the store read Current, so state moves first and
	// is restored if the write fails.
	prevName, prevBase := s.Current()
	s.setCurrent(name, base)

	write := s.store.ApplyTheme
	if reset {
		write = s.store.Reset
	}
	if err := write(ctx, t); err != nil {
		s.setCurrent(prevName, prevBase)
		return theme.Theme{}, fmt.Errorf("apply %s: %w", name, err)
	}

	s.logger.Info(ctx, "palette applied", "palette", name, "previous", prevName)
	s.publish(ctx, name, prevName)

	return t, nil
}

func (s *Service) setCurrent(name string, base theme.BaseColorSet) {
	s.stateMu.Lock()
	s.current = name
	s.base = base
	s.stateMu.Unlock()
}

func (s *Service) publish(ctx context.Context, name, previous string) {
	if s.events == nil {
		return
	}
	event := ports.Event{
		Type: ports.EventPaletteApplied,
		Data: map[string]interface{}{
			"palette":  name,
			"previous": previous,
			"revision": s.store.Revision(),
		},
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn(ctx, "failed to publish domain event", "event_type", event.Type, "error", err)
	}
}
