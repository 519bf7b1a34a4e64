// Package journey sequences the adoption-journey animation: an eleven-step
// phase machine, the clock that advances it, and the tables mapping each phase
// to what is on screen.
package journey

import (
	"fmt"
	"time"
)

// Phase is a step of the journey. NotStarted precedes the first step.
type Phase int

const NotStarted Phase = -1

const (
	Begins Phase = iota
	Valley
	WithoutCoaching
	WithCoaching
	FirstWin
	SecondSetback
	CoachingAgain
	BuildingMomentum
	AnotherWobble
	CoachingSupport
	SelfSustaining
)

// Terminal is the last phase; reaching it ends playback.
const Terminal = SelfSustaining

type phaseInfo struct {
	name     string
	duration time.Duration
}

var phases = [...]phaseInfo{
	Begins:           {"The Journey Begins", 2000 * time.Millisecond},
	Valley:           {"The Valley", 2000 * time.Millisecond},
	WithoutCoaching:  {"Without Coaching...", 2500 * time.Millisecond},
	WithCoaching:     {"But With Coaching...", 2000 * time.Millisecond},
	FirstWin:         {"First Win", 1800 * time.Millisecond},
	SecondSetback:    {"Second Setback", 1800 * time.Millisecond},
	CoachingAgain:    {"Coaching Again", 1800 * time.Millisecond},
	BuildingMomentum: {"Building Momentum", 1800 * time.Millisecond},
	AnotherWobble:    {"Another Wobble", 1800 * time.Millisecond},
	CoachingSupport:  {"Coaching Support", 1800 * time.Millisecond},
	SelfSustaining:   {"Self-Sustaining", 0},
}

// Count is the number of playable phases.
const Count = len(phases)

// Phases lists every playable phase in order.
func Phases() []Phase {
	out := make([]Phase, Count)
	for i := range out {
		out[i] = Phase(i)
	}
	return out
}

// Valid reports whether p is a playable phase.
func (p Phase) Valid() bool {
	return p >= Begins && p <= Terminal
}

// Name returns the display name, or "" for NotStarted and out-of-range values.
func (p Phase) Name() string {
	if !p.Valid() {
		return ""
	}
	return phases[p].name
}

// Duration is how long p is held before advancing. Terminal holds forever
// and reports zero.
func (p Phase) Duration() time.Duration {
	if !p.Valid() {
		return 0
	}
	return phases[p].duration
}

func (p Phase) String() string {
	switch {
	case p == NotStarted:
		return "not-started"
	case p.Valid():
		return fmt.Sprintf("%d:%s", int(p), phases[p].name)
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// TotalDuration is the wall time from Begins to Terminal at normal speed.
func TotalDuration() time.Duration {
	var total time.Duration
	for _, info := range phases {
		total += info.duration
	}
	return total
}
