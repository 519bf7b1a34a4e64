// Package store holds the live style variables that rendering surfaces read.
//
// A Store is created explicitly and passed to every reader and writer. Writes
// replace whole themes under one lock so a reader never observes a mix of two
// themes. Change notifications are queued in revision order while the write
// lock is held and delivered once it is released, so a subscriber that writes
// again never sees the newer change before the older one.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/events"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Change describes a completed write.
type Change struct {
	Revision uint64
	Keys     []string
	Reset    bool
}

// Store is a key/value registry of style variables keyed by kebab-case name.
type Store struct {
	mu        sync.RWMutex
	vars      map[string]string
	revision  uint64
	publisher ports.EventPublisher
	logger    ports.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(log ports.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithPublisher routes change events through an existing publisher so other
// components can subscribe to them alongside their own events.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Store) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// New allocates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		vars:   make(map[string]string),
		logger: logger.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.publisher == nil {
		s.publisher = events.NewPublisher(s.logger)
	}
	s.logger = s.logger.With("component", "store")
	return s
}

// Reset discards every variable and writes the theme. Used at startup.
func (s *Store) Reset(ctx context.Context, t theme.Theme) error {
	return s.write(ctx, t.Entries(), true)
}

// ApplyTheme overwrites the store with the theme's flattened entries.
func (s *Store) ApplyTheme(ctx context.Context, t theme.Theme) error {
	return s.write(ctx, t.Entries(), false)
}

// ApplyEntries overwrites the store entry by entry, converting each semantic
// name to its variable name. Every value is validated first; if any is
// invalid nothing is written.
func (s *Store) ApplyEntries(ctx context.Context, entries []theme.Entry) error {
	return s.write(ctx, entries, false)
}

func (s *Store) write(ctx context.Context, entries []theme.Entry, reset bool) error {
	staged := make(map[string]string, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return s.reject(ctx, themeerrors.NewValidationError("name", "variable name is empty", nil))
		}
		if _, err := color.Parse(entry.Value); err != nil {
			return s.reject(ctx, themeerrors.NewValidationError(entry.Name, err.Error(), err))
		}
		staged[theme.VarName(entry.Name)] = entry.Value
	}

	s.mu.Lock()
	if reset {
		s.vars = make(map[string]string, len(staged))
	}
	for name, value := range staged {
		s.vars[name] = value
	}
	s.revision++
	change := Change{Revision: s.revision, Keys: sortedKeys(staged), Reset: reset}
	event := ports.Event{
		Type: ports.EventStoreChanged,
		Data: map[string]interface{}{
			"revision": change.Revision,
			"keys":     len(change.Keys),
			"reset":    change.Reset,
			"change":   change,
		},
	}
	queued, ordered := s.publisher.(ports.QueuedEventPublisher)
	if ordered {
		queued.Enqueue(ctx, event)
	}
	s.mu.Unlock()

	s.logger.Debug(ctx, "style store updated", "revision", change.Revision, "keys", len(change.Keys))

	if ordered {
		queued.Flush()
		return nil
	}
	return s.publisher.Publish(ctx, event)
}

func (s *Store) reject(ctx context.Context, err error) error {
	s.logger.Warn(ctx, "theme rejected; previous values kept", "error", err)
	_ = s.publisher.Publish(ctx, ports.Event{
		Type: ports.EventStoreRejected,
		Data: map[string]interface{}{"error": err.Error()},
	})
	return err
}

// Get returns the value of a variable and whether it is set.
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.vars[name]
	return value, ok
}

// Observe returns the current values of names, omitting any that are unset.
// Callers supply their own fallbacks.
func (s *Store) Observe(names []string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(names))
	for _, name := range names {
		if value, ok := s.vars[name]; ok && value != "" {
			out[name] = value
		}
	}
	return out
}

// Snapshot returns a copy of every variable.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.vars))
	for name, value := range s.vars {
		out[name] = value
	}
	return out
}

// Revision counts successful writes.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Subscribe registers fn to run after every successful write. The returned
// subscription guarantees fn is not called once Unsubscribe has returned.
func (s *Store) Subscribe(fn func(context.Context, Change)) (ports.Subscription, error) {
	if fn == nil {
		return nil, fmt.Errorf("subscribe: handler is required")
	}
	return s.publisher.Subscribe(ports.EventStoreChanged, func(ctx context.Context, event ports.DomainEvent) error {
		payload, ok := event.Payload().(map[string]interface{})
		if !ok {
			return nil
		}
		change, ok := payload["change"].(Change)
		if !ok {
			return nil
		}
		fn(ctx, change)
		return nil
	})
}

// Lookup reads name with a caller-supplied fallback for unset variables.
func Lookup(s *Store, name, fallback string) string {
	if s == nil {
		return fallback
	}
	if value, ok := s.Get(name); ok && value != "" {
		return value
	}
	return fallback
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
