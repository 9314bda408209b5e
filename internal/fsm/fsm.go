// Package fsm provides a small deterministic, table-driven finite state
// machine. Transitions are keyed by (state, event) and fire only on explicit
// ProcessEvent calls; there are no timers and no internal goroutines.
package fsm

// Listener is notified synchronously after a transition, in registration
// order, with the state the machine left, the state it entered and the
// event that caused the change.
type Listener[S, E comparable] func(oldState, newState S, event E)

// FSM holds one current state and a transition table mapping
// (state, event) to the next state. Each pair has at most one destination.
type FSM[S, E comparable] struct {
	currentState S
	initialState S
	finalStates  map[S]struct{}
	transitions  map[S]map[E]S
	listeners    []Listener[S, E]
}

// New creates a machine whose current and initial state are both initialState.
func New[S, E comparable](initialState S) *FSM[S, E] {
	return &FSM[S, E]{
		currentState: initialState,
		initialState: initialState,
		finalStates:  make(map[S]struct{}),
		transitions:  make(map[S]map[E]S),
	}
}

// AddTransition registers from --event--> to and returns the machine so
// registrations can be chained. Registering the same (from, event) pair again
// overwrites the previous destination; last write wins.
func (m *FSM[S, E]) AddTransition(from S, event E, to S) *FSM[S, E] {
	row, ok := m.transitions[from]
	if !ok {
		row = make(map[E]S)
		m.transitions[from] = row
	}
	row[event] = to
	return m
}

// AddFinalState marks a state as terminal. Terminal states are advisory:
// they do not block further transitions, they only answer IsInFinalState.
func (m *FSM[S, E]) AddFinalState(state S) *FSM[S, E] {
	m.finalStates[state] = struct{}{}
	return m
}

// ProcessEvent applies event to the current state. When no transition is
// registered for the pair it returns false and nothing changes; otherwise the
// machine moves to the mapped state, every listener is invoked before
// ProcessEvent returns, and it returns true.
func (m *FSM[S, E]) ProcessEvent(event E) bool {
	row, ok := m.transitions[m.currentState]
	if !ok {
		return false
	}
	next, ok := row[event]
	if !ok {
		return false
	}

	old := m.currentState
	m.currentState = next

	for _, listener := range m.listeners {
		listener(old, next, event)
	}
	return true
}

// Reset returns the machine to its initial state without notifying listeners.
// The transition table is untouched.
func (m *FSM[S, E]) Reset() {
	m.currentState = m.initialState
}

// IsInFinalState reports whether the current state was marked final.
func (m *FSM[S, E]) IsInFinalState() bool {
	_, ok := m.finalStates[m.currentState]
	return ok
}

// CurrentState returns the current state.
func (m *FSM[S, E]) CurrentState() S {
	return m.currentState
}

// AddStateChangeListener appends a listener. There is no removal; registering
// the same listener twice makes it fire twice per transition.
func (m *FSM[S, E]) AddStateChangeListener(listener Listener[S, E]) {
	m.listeners = append(m.listeners, listener)
}
