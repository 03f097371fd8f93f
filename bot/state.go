package bot

import (
	"errors"
	"fmt"
)

// State is a bot behavior state
type State int

const (
	StateRoam State = iota
	StateEngage
	StateRetreat
	StatePanic
	StateCamp
	StateHunt
)

var stateNames = [...]string{
	StateRoam:    "roam",
	StateEngage:  "engage",
	StateRetreat: "retreat",
	StatePanic:   "panic",
	StateCamp:    "camp",
	StateHunt:    "hunt",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// States lists every behavior state in declaration order.
func States() []State {
	return []State{StateRoam, StateEngage, StateRetreat, StatePanic, StateCamp, StateHunt}
}

// forcedExits declares, per state, the transitions its executor may force
// outside the decision step.
var forcedExits = map[State][]State{
	StateRoam:    nil,
	StateEngage:  {StateRoam},
	StateRetreat: {StateRoam},
	StatePanic:   {StateEngage, StateRoam},
	StateCamp:    {StateEngage, StateRoam},
	StateHunt:    {StateEngage, StateRoam},
}

// CanForce reports whether the executor of from may force a move to to.
func CanForce(from, to State) bool {
	for _, s := range forcedExits[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ErrForbiddenTransition is returned by Force for exits missing from the table.
var ErrForbiddenTransition = errors.New("forbidden state transition")

// Machine is the behavior state machine. The duration timer is clamped at 0.
type Machine struct {
	state State
	timer float64
	rng   Random

	// called after every change of state
	onChange func(from, to State, reason string)
}

func newMachine(rng Random, onChange func(from, to State, reason string)) *Machine {
	return &Machine{state: StateRoam, rng: rng, onChange: onChange}
}

// State returns the active state.
func (m *Machine) State() State {
	return m.state
}

// Remaining returns the seconds left on the state duration timer.
func (m *Machine) Remaining() float64 {
	return m.timer
}

// Expired reports whether the state duration timer has run out.
func (m *Machine) Expired() bool {
	return m.timer <= 0
}

func (m *Machine) tick(dt float64) {
	m.timer = max(0, m.timer-dt)
}

// Decide is the decision step transition. Entering a different state
// resamples the duration timer in [1, 4) seconds.
func (m *Machine) Decide(to State) {
	if m.state == to {
		return
	}
	from := m.state
	m.state = to
	m.timer = uniform(m.rng, 1, 4)
	m.changed(from, to, "decision")
}

// Force performs an executor exit listed in the transition table. The timer
// is left untouched.
func (m *Machine) Force(to State, reason string) error {
	if !CanForce(m.state, to) {
		return fmt.Errorf("%s -> %s (%s): %w", m.state, to, reason, ErrForbiddenTransition)
	}
	from := m.state
	m.state = to
	m.changed(from, to, reason)
	return nil
}

// reset returns to roam when the controlled combatant dies.
func (m *Machine) reset() {
	if m.state == StateRoam {
		return
	}
	from := m.state
	m.state = StateRoam
	m.changed(from, StateRoam, "death")
}

func (m *Machine) changed(from, to State, reason string) {
	if m.onChange != nil {
		m.onChange(from, to, reason)
	}
}
