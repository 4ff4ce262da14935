// Package gamestate provides the game-level and player-level state machines.
//
// The game-level machine follows a "request now, apply at the next step
// boundary" model: a transition requested while a step is running only takes
// effect when Apply is called at the start of the following step. Enter and
// exit hooks run inside Apply.
package gamestate

import (
	"errors"
	"fmt"
)

// State is the process-wide game state.
type State uint8

const (
	Splash State = iota
	Menu
	GameSetup
	GamePlay
	GameCompleted
)

var stateNames = [...]string{
	Splash:        "splash",
	Menu:          "menu",
	GameSetup:     "game_setup",
	GamePlay:      "game_play",
	GameCompleted: "game_completed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ErrInvalidTransition is returned when a transition is not in the table.
var ErrInvalidTransition = errors.New("invalid state transition")

// transitions lists every allowed from -> to pair.
var transitions = map[State][]State{
	Splash:        {Menu},
	Menu:          {GameSetup},
	GameSetup:     {GamePlay, GameCompleted, Menu},
	GamePlay:      {Menu, GameSetup},
	GameCompleted: {Menu},
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Hook is called on state entry or exit.
type Hook func(from, to State)

// Machine holds the current game state and at most one pending transition.
type Machine struct {
	current State
	next    State
	pending bool

	onEnter map[State][]Hook
	onExit  map[State][]Hook
}

// NewMachine creates a machine in the given initial state.
func NewMachine(initial State) *Machine {
	return &Machine{
		current: initial,
		onEnter: make(map[State][]Hook),
		onExit:  make(map[State][]Hook),
	}
}

// --- Hook registration ---

// OnEnter registers a hook run after the machine enters s.
func (m *Machine) OnEnter(s State, hook Hook) {
	m.onEnter[s] = append(m.onEnter[s], hook)
}

// OnExit registers a hook run before the machine leaves s.
func (m *Machine) OnExit(s State, hook Hook) {
	m.onExit[s] = append(m.onExit[s], hook)
}

// --- Transitions ---

// Current returns the active state.
func (m *Machine) Current() State {
	return m.current
}

// Pending returns the requested next state, if any.
func (m *Machine) Pending() (State, bool) {
	return m.next, m.pending
}

// Start runs the enter hooks of the initial state. Call it once before the
// first step.
func (m *Machine) Start() {
	for _, hook := range m.onEnter[m.current] {
		hook(m.current, m.current)
	}
}

// Request schedules a transition for the next Apply. A later request in the
// same step replaces an earlier one.
func (m *Machine) Request(next State) error {
	if !CanTransition(m.current, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, next)
	}
	m.next = next
	m.pending = true
	return nil
}

// Apply performs the pending transition, if any, and reports whether the
// state changed.
func (m *Machine) Apply() bool {
	if !m.pending {
		return false
	}
	from, to := m.current, m.next
	m.pending = false

	for _, hook := range m.onExit[from] {
		hook(from, to)
	}
	m.current = to
	for _, hook := range m.onEnter[to] {
		hook(from, to)
	}
	return true
}
