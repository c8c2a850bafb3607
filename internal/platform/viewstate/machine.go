// Package viewstate holds the loading state machine shared by every screen.
//
// A screen calls Begin before each fetch and hands the returned Ticket back
// with the result. Only the most recent ticket may settle the machine, so a
// response that arrives after a newer fetch started, or after Reset, is
// dropped.
package viewstate

import "sync"

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// Ticket identifies one fetch.
type Ticket uint64

// State is a point-in-time copy of a machine.
type State[T any] struct {
	Phase   Phase
	Data    T
	Message string
	Err     error
}

func (s State[T]) Loading() bool { return s.Phase == PhaseLoading }

func (s State[T]) Failed() bool { return s.Phase == PhaseError }

type Machine[T any] struct {
	mu      sync.Mutex
	current Ticket
	state   State[T]
}

func New[T any]() *Machine[T] {
	return &Machine[T]{state: State[T]{Phase: PhaseIdle}}
}

// Begin enters loading and invalidates every older ticket. Data from the
// previous success is kept until the new fetch settles.
func (m *Machine[T]) Begin() Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current++
	m.state.Phase = PhaseLoading
	m.state.Message = ""
	m.state.Err = nil
	return m.current
}

// Succeed applies data when t is still current. It reports whether it did.
func (m *Machine[T]) Succeed(t Ticket, data T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.acceptsLocked(t) {
		return false
	}
	m.state = State[T]{Phase: PhaseSuccess, Data: data}
	return true
}

// Fail moves to the error state when t is still current. data is what the
// screen shows next to the message, usually the zero value.
func (m *Machine[T]) Fail(t Ticket, message string, err error, data T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.acceptsLocked(t) {
		return false
	}
	m.state = State[T]{Phase: PhaseError, Data: data, Message: message, Err: err}
	return true
}

// Current reports whether t is the latest ticket and the machine is still
// waiting on it.
func (m *Machine[T]) Current(t Ticket) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.acceptsLocked(t)
}

// Reset returns to idle and invalidates outstanding tickets.
func (m *Machine[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current++
	m.state = State[T]{Phase: PhaseIdle}
}

func (m *Machine[T]) Snapshot() State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine[T]) acceptsLocked(t Ticket) bool {
	return t == m.current && m.state.Phase == PhaseLoading
}
