package events

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

// Publisher logs every domain event and dispatches it to the handlers
// subscribed to its type. Events go through a FIFO queue drained by whichever
// goroutine finds it idle, so delivery order always matches publish order.
type Publisher struct {
	logger ports.Logger
	subs   map[string][]*subscriptionEntry
	nextID int
	mu     sync.RWMutex

	queueMu     sync.Mutex
	queue       []queuedEvent
	dispatching bool
}

type queuedEvent struct {
	ctx   context.Context
	event ports.DomainEvent
}

var _ ports.QueuedEventPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher that writes each event as a structured log entry.
func NewPublisher(log ports.Logger) *Publisher {
	if log == nil {
		log = logger.NoOp()
	}
	return &Publisher{
		logger: log,
		subs:   make(map[string][]*subscriptionEntry),
	}
}

// Publish queues the event and delivers the queue. When called from a
// handler, or while another goroutine is delivering, the event is left for
// that delivery loop and Publish returns at once.
func (p *Publisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}
	p.Enqueue(ctx, event)
	p.Flush()
	return nil
}

// Enqueue appends the event to the delivery queue without delivering it.
func (p *Publisher) Enqueue(ctx context.Context, event ports.DomainEvent) {
	if p == nil || event == nil {
		return
	}
	p.queueMu.Lock()
	p.queue = append(p.queue, queuedEvent{ctx: ctx, event: event})
	p.queueMu.Unlock()
}

// Flush delivers queued events in order unless a delivery loop is already
// running.
func (p *Publisher) Flush() {
	if p == nil {
		return
	}
	p.queueMu.Lock()
	if p.dispatching {
		p.queueMu.Unlock()
		return
	}
	p.dispatching = true
	for len(p.queue) > 0 {
		next := p.queue[0]
		p.queue[0] = queuedEvent{}
		p.queue = p.queue[1:]
		p.queueMu.Unlock()

		p.deliver(next.ctx, next.event)

		p.queueMu.Lock()
	}
	p.queue = nil
	p.dispatching = false
	p.queueMu.Unlock()
}

func (p *Publisher) deliver(ctx context.Context, event ports.DomainEvent) {
	p.mu.RLock()
	handlers := append([]*subscriptionEntry(nil), p.subs[event.EventType()]...)
	p.mu.RUnlock()

	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	case nil:
	default:
		fields = append(fields, "payload", payload)
	}

	p.logger.Debug(ctx, "domain event", fields...)

	for _, entry := range handlers {
		// A handler unsubscribed by an earlier handler in this same dispatch
		// must not run.
		if !entry.active.Load() {
			continue
		}
		if err := entry.handler(ctx, event); err != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}
}

// Subscribe registers a handler for the provided event type.
func (p *Publisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}

	entry := &subscriptionEntry{handler: handler}
	entry.active.Store(true)

	p.mu.Lock()
	p.nextID++
	entry.id = p.nextID
	p.subs[eventType] = append(p.subs[eventType], entry)
	p.mu.Unlock()

	return &subscription{
		cancel: func() {
			entry.active.Store(false)
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, candidate := range handlers {
				if candidate.id == entry.id {
					p.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
					break
				}
			}
		},
	}, nil
}

// SubscriberCount reports how many handlers are registered for eventType.
func (p *Publisher) SubscriberCount(eventType string) int {
	if p == nil {
		return 0
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subs[eventType])
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
	active  atomic.Bool
}
