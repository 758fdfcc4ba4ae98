package manager

import (
	"fmt"

	"github.com/pkg/errors"
)

// Phase is the game's state-machine state
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ErrInvalidTransition is returned for an edge the state machine does not have
var ErrInvalidTransition = errors.New("invalid phase transition")

// transitions lists the externally triggered edges. Reset to initial is
// handled separately since it is legal from every phase.
var transitions = map[Phase][]Phase{
	PhaseInitial:  {PhaseRunning},
	PhaseRunning:  {PhasePaused, PhaseGameOver},
	PhasePaused:   {PhaseRunning, PhaseInitial},
	PhaseGameOver: {PhaseInitial},
}

// Controls is the on-screen button state for a phase
type Controls struct {
	StartEnabled   bool
	StartLabel     string
	PauseEnabled   bool
	RestartEnabled bool
}

// Policy says which loops run in a phase and what the overlay shows
type Policy struct {
	Logic       bool
	Render      bool
	Message     string
	ShowMessage bool
	Controls    Controls
}

// PolicyFor builds the policy for entering phase. prev carries the button
// state being replaced, since running keeps the Start label it had.
func PolicyFor(phase Phase, score int, prev Controls) Policy {
	switch phase {
	case PhaseInitial:
		return Policy{
			Render:      true,
			Message:     "Press Start",
			ShowMessage: true,
			Controls:    Controls{StartEnabled: true, StartLabel: "Start"},
		}
	case PhaseRunning:
		label := prev.StartLabel
		if label == "" {
			label = "Start"
		}
		return Policy{
			Logic:    true,
			Render:   true,
			Controls: Controls{StartLabel: label, PauseEnabled: true},
		}
	case PhasePaused:
		return Policy{
			Render:      true,
			Message:     "Paused",
			ShowMessage: true,
			Controls:    Controls{StartEnabled: true, StartLabel: "Resume", RestartEnabled: true},
		}
	case PhaseGameOver:
		return Policy{
			Render:      true,
			Message:     fmt.Sprintf("Game Over! Score: %d", score),
			ShowMessage: true,
			Controls:    Controls{StartLabel: "Start", RestartEnabled: true},
		}
	}
	return Policy{Render: true}
}

// StateManager owns the current phase and validates transitions
type StateManager struct {
	phase    Phase
	controls Controls
}

func NewStateManager() *StateManager {
	return &StateManager{
		phase:    PhaseInitial,
		controls: PolicyFor(PhaseInitial, 0, Controls{}).Controls,
	}
}

func (sm *StateManager) Phase() Phase {
	return sm.phase
}

func (sm *StateManager) Controls() Controls {
	return sm.controls
}

// CanTransition reports whether to is reachable from the current phase
func (sm *StateManager) CanTransition(to Phase) bool {
	for _, p := range transitions[sm.phase] {
		if p == to {
			return true
		}
	}
	return false
}

// Transition moves to a new phase and returns the policy to apply
func (sm *StateManager) Transition(to Phase, score int) (Policy, error) {
	if !sm.CanTransition(to) {
		return Policy{}, errors.Wrapf(ErrInvalidTransition, "%s -> %s", sm.phase, to)
	}
	return sm.enter(to, score), nil
}

// Reset forces the initial phase from anywhere
func (sm *StateManager) Reset() Policy {
	return sm.enter(PhaseInitial, 0)
}

func (sm *StateManager) enter(to Phase, score int) Policy {
	policy := PolicyFor(to, score, sm.controls)
	sm.phase = to
	sm.controls = policy.Controls
	return policy
}
