package journey

import (
	"sort"
	"sync"
	"time"
)

// fakeClock fires callbacks only when advanced. Callbacks run on the caller's
// goroutine with the clock unlocked so they may schedule further timers.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	when    time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{clock: c, when: c.now + d, seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves time forward by d, firing due timers in order.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.when
		next.fired = true
		c.mu.Unlock()

		next.fn()
	}
}

// Pending counts timers that have neither fired nor been stopped.
func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// FireStopped runs callbacks of stopped timers, imitating a timer that had
// already fired when Stop was called.
func (c *fakeClock) FireStopped() {
	c.mu.Lock()
	var fns []func()
	for _, t := range c.timers {
		if t.stopped && !t.fired {
			t.fired = true
			fns = append(fns, t.fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (c *fakeClock) nextDueLocked(target time.Duration) *fakeTimer {
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.when <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].when == due[j].when {
			return due[i].seq < due[j].seq
		}
		return due[i].when < due[j].when
	})
	return due[0]
}
