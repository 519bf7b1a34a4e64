package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/catalog"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func newService(t *testing.T, opts ...Option) (*Service, *store.Store) {
	t.Helper()
	st := store.New()
	svc := New(catalog.Default(), st, opts...)
	require.NoError(t, svc.Init(context.Background()))
	return svc, st
}

func TestInitAppliesDefaultPalette(t *testing.T) {
	t.Parallel()

	svc, st := newService(t)

	name, base := svc.Current()
	assert.Equal(t, "default", name)
	assert.Equal(t, "#1a365d", base.Primary)

	value, ok := st.Get("color-primary")
	require.True(t, ok)
	assert.Equal(t, "#1a365d", value)

	value, ok = st.Get("color-primary-tint")
	require.True(t, ok)
	assert.Equal(t, "rgba(26,54,93,0.15)", value)
}

func TestInitWithConfiguredPalette(t *testing.T) {
	t.Parallel()

	svc, st := newService(t, WithDefaultPalette("ocean"))
	name, _ := svc.Current()
	assert.Equal(t, "ocean", name)
	assert.Equal(t, "#0c4a6e", store.Lookup(st, "color-primary", ""))
}

func TestInitFailsForMissingDefault(t *testing.T) {
	t.Parallel()

	svc := New(catalog.Default(), store.New(), WithDefaultPalette("neon"))
	err := svc.Init(context.Background())
	require.ErrorIs(t, err, themeerrors.ErrUnknownPalette)
}

func TestApplyPaletteSwitchesTheme(t *testing.T) {
	t.Parallel()

	svc, st := newService(t)
	th, err := svc.ApplyPalette(context.Background(), "rose")
	require.NoError(t, err)
	assert.Equal(t, "#881337", th.Primary.Base)
	assert.Equal(t, "#881337", store.Lookup(st, "color-navy", ""))

	name, _ := svc.Current()
	assert.Equal(t, "rose", name)
}

func TestApplyUnknownPaletteKeepsCurrentTheme(t *testing.T) {
	t.Parallel()

	svc, st := newService(t)
	before := st.Snapshot()
	revision := st.Revision()

	_, err := svc.ApplyPalette(context.Background(), "neon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, themeerrors.ErrUnknownPalette))

	name, _ := svc.Current()
	assert.Equal(t, "default", name)
	assert.Equal(t, before, st.Snapshot())
	assert.Equal(t, revision, st.Revision())
}

func TestApplyColorsRejectsInvalidSlot(t *testing.T) {
	t.Parallel()

	svc, st := newService(t)
	before := st.Snapshot()

	_, err := svc.ApplyColors(context.Background(), theme.BaseColorSet{
		Primary:    "#0c4a6e",
		Secondary:  "#0e7490",
		Accent:     "orange",
		AccentSoft: "#fb923c",
		Background: "#f0f9ff",
	})
	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "accent", validationErr.Field)

	name, base := svc.Current()
	assert.Equal(t, "default", name)
	assert.Equal(t, "#1a365d", base.Primary)
	assert.Equal(t, before, st.Snapshot())
}

func TestApplyColorsMarksCustom(t *testing.T) {
	t.Parallel()

	svc, st := newService(t)
	custom := theme.BaseColorSet{
		Primary:    "#123456",
		Secondary:  "#0e7490",
		Accent:     "#f59e0b",
		AccentSoft: "#fb923c",
		Background: "#f0f9ff",
	}
	_, err := svc.ApplyColors(context.Background(), custom)
	require.NoError(t, err)

	name, base := svc.Current()
	assert.Equal(t, CustomPalette, name)
	assert.Equal(t, custom, base)
	assert.Equal(t, "#123456", store.Lookup(st, "color-primary", ""))
}

func TestSetColorEditsOneSlot(t *testing.T) {
	t.Parallel()

	svc, st := newService(t)
	_, err := svc.SetColor(context.Background(), theme.SlotAccent, "#06b6d4")
	require.NoError(t, err)

	name, base := svc.Current()
	assert.Equal(t, CustomPalette, name)
	assert.Equal(t, "#06b6d4", base.Accent)
	assert.Equal(t, "#1a365d", base.Primary)
	assert.Equal(t, "#06b6d4", store.Lookup(st, "color-amber", ""))
}

func TestSetColorRejectsUnknownSlotAndBadValue(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)

	_, err := svc.SetColor(context.Background(), theme.Slot("tertiary"), "#000000")
	require.Error(t, err)

	_, err = svc.SetColor(context.Background(), theme.SlotPrimary, "#12")
	require.Error(t, err)

	name, base := svc.Current()
	assert.Equal(t, "default", name)
	assert.Equal(t, "#1a365d", base.Primary)
}

func TestApplyPublishesEventWithCorrelationID(t *testing.T) {
	t.Parallel()

	events := &recordingPublisher{}
	svc, _ := newService(t, WithPublisher(events))

	ctx := ports.WithCorrelationID(context.Background(), "corr-123")
	_, err := svc.ApplyPalette(ctx, "teal")
	require.NoError(t, err)

	records := events.ofType(ports.EventPaletteApplied)
	require.Len(t, records, 2)
	last := records[1]
	assert.Equal(t, "corr-123", last.correlationID)
	assert.Equal(t, "teal", last.payload["palette"])
	assert.Equal(t, "default", last.payload["previous"])
}

func TestStoreSubscribersSeeNewCurrentPalette(t *testing.T) {
	t.Parallel()

	svc, st := newService(t)

	var seen string
	sub, err := st.Subscribe(func(context.Context, store.Change) {
		seen, _ = svc.Current()
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	_, err = svc.ApplyPalette(context.Background(), "slate")
	require.NoError(t, err)
	assert.Equal(t, "slate", seen)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventRecord
}

type eventRecord struct {
	eventType     string
	payload       map[string]interface{}
	correlationID string
}

func (r *recordingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	payload, _ := event.Payload().(map[string]interface{})
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventRecord{
		eventType:     event.EventType(),
		payload:       payload,
		correlationID: ports.GetCorrelationID(ctx),
	})
	return nil
}

func (r *recordingPublisher) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return nil, nil
}

func (r *recordingPublisher) ofType(eventType string) []eventRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []eventRecord
	for _, evt := range r.events {
		if evt.eventType == eventType {
			out = append(out, evt)
		}
	}
	return out
}
