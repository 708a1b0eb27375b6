// Package state implements the phase machine that gates the tick loop.
// Phases form a small closed set; transitions fire on discrete input
// actions, and unmapped actions leave the phase unchanged.
package state

import (
	"github.com/vovakirdan/tui-sketch/internal/core"
)

// Phase is one of the mutually exclusive platform phases. Dispatch sites
// switch over it exhaustively; there are no string-keyed states.
type Phase int

const (
	PhaseMenu    Phase = iota // Initial phase: sketch not running
	PhasePlaying              // Simulation ticks advance
	PhasePaused               // Simulation frozen, render continues
	PhaseDone                 // Sketch reached a terminal condition
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// transitionKey identifies one edge in the transition table.
type transitionKey struct {
	from   Phase
	action core.Action
}

// transitions is the closed transition table. Anything absent is a no-op.
var transitions = map[transitionKey]Phase{
	{PhaseMenu, core.ActionConfirm}:  PhasePlaying,
	{PhasePlaying, core.ActionPause}: PhasePaused,
	{PhasePlaying, core.ActionBack}:  PhaseMenu,
	{PhasePaused, core.ActionPause}:  PhasePlaying,
	{PhasePaused, core.ActionBack}:   PhaseMenu,
	{PhaseDone, core.ActionRestart}:  PhasePlaying,
	{PhaseDone, core.ActionBack}:     PhaseMenu,
}

// Machine tracks the current phase. The zero value starts in PhaseMenu.
type Machine struct {
	phase Phase
}

// New creates a machine in the initial PhaseMenu state.
func New() *Machine {
	return &Machine{phase: PhaseMenu}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Apply feeds one action into the machine and returns the resulting phase
// along with whether a transition occurred. Unmapped actions are ignored.
func (m *Machine) Apply(a core.Action) (Phase, bool) {
	next, ok := transitions[transitionKey{from: m.phase, action: a}]
	if !ok {
		return m.phase, false
	}
	m.phase = next
	return m.phase, true
}

// Finish forces the machine into PhaseDone. Called by the driver when the
// running sketch reports a terminal condition, which is an internal event
// rather than an input action.
func (m *Machine) Finish() {
	if m.phase == PhasePlaying || m.phase == PhasePaused {
		m.phase = PhaseDone
	}
}

// Reset returns the machine to the initial PhaseMenu state.
func (m *Machine) Reset() {
	m.phase = PhaseMenu
}
