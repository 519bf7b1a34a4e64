package journey

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock schedules on the runtime timer.
func RealClock() Clock {
	return realClock{}
}

// PhaseObserver is told about every transition.
type PhaseObserver func(context.Context, State)

// Sequencer drives a Machine with timers. At most one advance is pending at
// any time; Reset and Stop cancel it, and a callback that fires anyway is
// discarded by the generation check.
//
// Transitions are queued under the lock that made them and delivered in that
// order. A transition caused from inside an observer, or on another goroutine
// while delivery is running, is delivered by the running loop after the
// current one.
type Sequencer struct {
	mu      sync.Mutex
	machine *Machine
	timer   Timer
	clock   Clock
	speed   float64

	observers   []*observerEntry
	pending     []transition
	dispatching bool

	logger ports.Logger
	events ports.EventPublisher
}

type transition struct {
	ctx   context.Context
	state State
}

type observerEntry struct {
	fn     PhaseObserver
	active atomic.Bool
}

// SequencerOption customises a Sequencer.
type SequencerOption func(*Sequencer)

// WithClock replaces the runtime clock.
func WithClock(clock Clock) SequencerOption {
	return func(s *Sequencer) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithSpeed scales playback; 2 halves every phase duration.
func WithSpeed(speed float64) SequencerOption {
	return func(s *Sequencer) {
		if speed > 0 {
			s.speed = speed
		}
	}
}

// WithLogger sets the sequencer logger.
func WithLogger(log ports.Logger) SequencerOption {
	return func(s *Sequencer) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithPublisher emits a journey.phase event per transition.
func WithPublisher(publisher ports.EventPublisher) SequencerOption {
	return func(s *Sequencer) {
		s.events = publisher
	}
}

// NewSequencer returns an idle sequencer at NotStarted.
func NewSequencer(opts ...SequencerOption) *Sequencer {
	s := &Sequencer{
		machine: NewMachine(),
		clock:   RealClock(),
		speed:   1,
		logger:  logger.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "journey")
	return s
}

// State returns the current machine state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

// Start begins playback. It is a no-op while already playing.
func (s *Sequencer) Start(ctx context.Context) State {
	s.mu.Lock()
	state, changed := s.machine.Start()
	if changed {
		s.cancelLocked()
		s.scheduleLocked(ctx, state)
		s.pending = append(s.pending, transition{ctx: ctx, state: state})
	}
	s.mu.Unlock()

	s.drain()
	return state
}

// Replay restarts a finished journey.
func (s *Sequencer) Replay(ctx context.Context) State {
	return s.Start(ctx)
}

// Reset cancels any pending advance and returns to NotStarted.
func (s *Sequencer) Reset(ctx context.Context) State {
	s.mu.Lock()
	s.cancelLocked()
	state := s.machine.Reset()
	s.pending = append(s.pending, transition{ctx: ctx, state: state})
	s.mu.Unlock()

	s.drain()
	return state
}

// Stop cancels any pending advance and freezes the current phase. Call it
// when the surface showing the journey goes away.
func (s *Sequencer) Stop(ctx context.Context) State {
	s.mu.Lock()
	s.cancelLocked()
	state := s.machine.Halt()
	s.mu.Unlock()

	s.logger.Debug(ctx, "journey stopped", "phase", state.Phase.String())
	return state
}

// OnPhase registers an observer. Once Unsubscribe returns the observer is
// not called again.
func (s *Sequencer) OnPhase(fn PhaseObserver) ports.Subscription {
	if fn == nil {
		return noopSubscription{}
	}
	entry := &observerEntry{fn: fn}
	entry.active.Store(true)

	s.mu.Lock()
	s.observers = append(s.observers, entry)
	s.mu.Unlock()

	return &observerSubscription{seq: s, entry: entry}
}

func (s *Sequencer) fire(ctx context.Context, gen uint64) {
	s.mu.Lock()
	state, advanced := s.machine.Advance(gen)
	if !advanced {
		s.mu.Unlock()
		s.logger.Debug(ctx, "stale journey advance discarded", "generation", gen)
		return
	}
	s.timer = nil
	s.scheduleLocked(ctx, state)
	s.pending = append(s.pending, transition{ctx: ctx, state: state})
	s.mu.Unlock()

	s.drain()
}

func (s *Sequencer) scheduleLocked(ctx context.Context, state State) {
	delay, ok := state.Delay()
	if !ok {
		return
	}
	delay = time.Duration(float64(delay) / s.speed)
	gen := state.Generation
	s.timer = s.clock.AfterFunc(delay, func() { s.fire(ctx, gen) })
}

func (s *Sequencer) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// drain delivers queued transitions unless another call is already doing so.
func (s *Sequencer) drain() {
	s.mu.Lock()
	if s.dispatching {
		s.mu.Unlock()
		return
	}
	s.dispatching = true
	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending[0] = transition{}
		s.pending = s.pending[1:]
		observers := append([]*observerEntry(nil), s.observers...)
		s.mu.Unlock()

		s.notify(next.ctx, next.state, observers)

		s.mu.Lock()
	}
	s.pending = nil
	s.dispatching = false
	s.mu.Unlock()
}

func (s *Sequencer) notify(ctx context.Context, state State, observers []*observerEntry) {
	s.logger.Debug(ctx, "journey phase", "phase", state.Phase.String(), "playing", state.Playing, "generation", state.Generation)

	if s.events != nil {
		event := ports.Event{
			Type: ports.EventJourneyPhase,
			Data: map[string]interface{}{
				"phase":      int(state.Phase),
				"name":       state.Phase.Name(),
				"playing":    state.Playing,
				"generation": state.Generation,
			},
		}
		if err := s.events.Publish(ctx, event); err != nil {
			s.logger.Warn(ctx, "failed to publish domain event", "event_type", event.Type, "error", err)
		}
	}

	for _, entry := range observers {
		if entry.active.Load() {
			entry.fn(ctx, state)
		}
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type observerSubscription struct {
	seq   *Sequencer
	entry *observerEntry
	once  sync.Once
}

func (o *observerSubscription) Unsubscribe() {
	o.once.Do(func() {
		o.entry.active.Store(false)
		o.seq.mu.Lock()
		defer o.seq.mu.Unlock()
		for i, e := range o.seq.observers {
			if e == o.entry {
				o.seq.observers = append(o.seq.observers[:i:i], o.seq.observers[i+1:]...)
				return
			}
		}
	})
}
