package journey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseTable(t *testing.T) {
	t.Parallel()

	require.Equal(t, 11, Count)
	assert.Equal(t, "The Journey Begins", Begins.Name())
	assert.Equal(t, "Without Coaching...", WithoutCoaching.Name())
	assert.Equal(t, "Self-Sustaining", Terminal.Name())
	assert.Equal(t, 2500*time.Millisecond, WithoutCoaching.Duration())
	assert.Equal(t, 1800*time.Millisecond, CoachingSupport.Duration())
	assert.Zero(t, Terminal.Duration())
	assert.Empty(t, NotStarted.Name())
	assert.Equal(t, "not-started", NotStarted.String())
	assert.Equal(t, "1:The Valley", Valley.String())
	assert.Equal(t, 19300*time.Millisecond, TotalDuration())
	assert.Len(t, Phases(), Count)
}

func TestMachineRunsEveryPhaseInOrder(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	assert.Equal(t, NotStarted, m.State().Phase)

	state, ok := m.Start()
	require.True(t, ok)
	visited := []Phase{state.Phase}

	for state.Playing {
		state, ok = m.Advance(state.Generation)
		require.True(t, ok)
		visited = append(visited, state.Phase)
	}

	assert.Equal(t, Phases(), visited)
	assert.True(t, state.Finished())

	_, ok = m.Advance(state.Generation)
	assert.False(t, ok, "terminal does not advance")
}

func TestMachineIgnoresStartWhilePlaying(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	first, _ := m.Start()
	m.Advance(first.Generation)

	state, ok := m.Start()
	assert.False(t, ok)
	assert.Equal(t, Valley, state.Phase)
	assert.Equal(t, first.Generation, state.Generation)
}

func TestMachineRejectsStaleGeneration(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	first, _ := m.Start()
	m.Reset()
	second, _ := m.Start()
	require.NotEqual(t, first.Generation, second.Generation)

	_, ok := m.Advance(first.Generation)
	assert.False(t, ok)
	assert.Equal(t, Begins, m.State().Phase)
}

func TestMachineReplayRestartsFromBeginning(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	state, _ := m.Start()
	for state.Playing {
		state, _ = m.Advance(state.Generation)
	}

	state, ok := m.Replay()
	require.True(t, ok)
	assert.Equal(t, Begins, state.Phase)
	assert.True(t, state.Playing)
	assert.True(t, state.Played)
}

func TestMachineResetAndHalt(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	started, _ := m.Start()

	halted := m.Halt()
	assert.False(t, halted.Playing)
	assert.Equal(t, Begins, halted.Phase)
	assert.Greater(t, halted.Generation, started.Generation)
	_, ok := m.Advance(halted.Generation)
	assert.False(t, ok, "halted machine does not advance")

	reset := m.Reset()
	assert.Equal(t, NotStarted, reset.Phase)
	assert.True(t, reset.Played)
}

func TestStateDelay(t *testing.T) {
	t.Parallel()

	d, ok := State{Phase: WithoutCoaching, Playing: true}.Delay()
	assert.True(t, ok)
	assert.Equal(t, 2500*time.Millisecond, d)

	_, ok = State{Phase: Terminal, Playing: true}.Delay()
	assert.False(t, ok)
	_, ok = State{Phase: Valley}.Delay()
	assert.False(t, ok)
	_, ok = State{Phase: NotStarted, Playing: true}.Delay()
	assert.False(t, ok)
}
