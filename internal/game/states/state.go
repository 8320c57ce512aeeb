// Package states implements application state management.
package states

// State represents one screen of the application.
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state. It must release timers and
	// subscriptions so nothing fires after teardown.
	Exit() error

	// Update is called every frame with the elapsed time in seconds.
	Update(dt float64) error

	// HandleInput processes a user action.
	HandleInput(event interface{}) error
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change for the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes pending state changes and updates the current state.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// HandleInput forwards an action to the current state.
func (m *Manager) HandleInput(event interface{}) error {
	if m.current == nil {
		return nil
	}
	return m.current.HandleInput(event)
}

// Close exits the current state and drops any pending one.
func (m *Manager) Close() error {
	m.next = nil
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	return err
}
