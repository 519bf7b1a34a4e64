package journey

import "time"

// State is a snapshot of the machine.
type State struct {
	Phase   Phase
	Playing bool
	// Played is set once the journey has been started at least once.
	Played bool
	// Generation changes on every Start, Reset and Halt. A scheduled advance
	// carries the generation it was scheduled under and is ignored once the
	// generation has moved on.
	Generation uint64
}

// Delay reports how long the current phase is held and whether an advance
// should be scheduled at all.
func (s State) Delay() (time.Duration, bool) {
	if !s.Playing || !s.Phase.Valid() || s.Phase == Terminal {
		return 0, false
	}
	return s.Phase.Duration(), true
}

// Finished reports whether the journey has reached Terminal and stopped.
func (s State) Finished() bool {
	return s.Phase == Terminal && !s.Playing
}

// Machine is the phase state machine. It holds no timers and is not safe for
// concurrent use; Sequencer adds both.
type Machine struct {
	state State
}

// NewMachine returns a machine at NotStarted.
func NewMachine() *Machine {
	return &Machine{state: State{Phase: NotStarted}}
}

// State returns the current snapshot.
func (m *Machine) State() State {
	return m.state
}

// Start begins playback at Begins. It is ignored while already playing.
func (m *Machine) Start() (State, bool) {
	if m.state.Playing {
		return m.state, false
	}
	m.state.Phase = Begins
	m.state.Playing = true
	m.state.Played = true
	m.state.Generation++
	return m.state, true
}

// Replay restarts a finished journey; it is Start under another name.
func (m *Machine) Replay() (State, bool) {
	return m.Start()
}

// Advance moves to the next phase when gen is current and the machine is
// playing. Reaching Terminal stops playback.
func (m *Machine) Advance(gen uint64) (State, bool) {
	if gen != m.state.Generation || !m.state.Playing || m.state.Phase >= Terminal {
		return m.state, false
	}
	m.state.Phase++
	if m.state.Phase == Terminal {
		m.state.Playing = false
	}
	return m.state, true
}

// Reset returns to NotStarted and invalidates any scheduled advance.
func (m *Machine) Reset() State {
	m.state.Phase = NotStarted
	m.state.Playing = false
	m.state.Generation++
	return m.state
}

// Halt stops playback where it is and invalidates any scheduled advance.
func (m *Machine) Halt() State {
	if m.state.Playing {
		m.state.Playing = false
		m.state.Generation++
	}
	return m.state
}
