package ports

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithCorrelationID(context.Background(), "abc-123")
	require.Equal(t, "abc-123", GetCorrelationID(ctx))
	require.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestGenerateCorrelationIDIsUUIDv4(t *testing.T) {
	t.Parallel()

	id := GenerateCorrelationID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), parsed.Version())
	require.NotEqual(t, id, GenerateCorrelationID())
}

func TestEventImplementsDomainEvent(t *testing.T) {
	t.Parallel()

	var event DomainEvent = Event{Type: EventStoreChanged, Data: map[string]interface{}{"revision": 1}}
	require.Equal(t, EventStoreChanged, event.EventType())
	require.Equal(t, map[string]interface{}{"revision": 1}, event.Payload())
}
