package ports

import "context"

const (
	// EventStoreChanged is emitted after a theme has been written to the style store.
	EventStoreChanged = "store.changed"
	// EventStoreRejected is emitted when a theme write fails validation and the store is left untouched.
	EventStoreRejected = "store.rejected"
	// EventPaletteApplied is emitted when the engine applies a catalog or custom palette.
	EventPaletteApplied = "palette.applied"
	// EventJourneyPhase is emitted on each journey phase transition.
	EventJourneyPhase = "journey.phase"
)

// DomainEvent represents a significant occurrence within the engine. Events
// carry structured payloads that subscribers can use for logging or UI updates.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers in
// registration order. Events are delivered in the order they were published;
// an event published from inside a handler is delivered after the current
// event has reached every handler.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// QueuedEventPublisher lets a writer fix an event's delivery position while
// it still holds its own lock, and deliver once the lock is released.
type QueuedEventPublisher interface {
	EventPublisher
	Enqueue(ctx context.Context, event DomainEvent)
	Flush()
}

// EventHandler processes an event of a specific type. Failures should be
// returned rather than panicking so the publisher can log them and continue
// delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Once Unsubscribe returns the
// handler is never invoked again.
type Subscription interface {
	Unsubscribe()
}

// Event is a plain DomainEvent implementation.
type Event struct {
	Type string
	Data map[string]interface{}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Data }
