package variant

import "fmt"

// InteractionState identifies the single interaction state a component
// occupies at any moment. States are mutually exclusive; StateDisabled
// pre-empts all others regardless of pointer or focus input.
type InteractionState int

const (
	StateRest InteractionState = iota
	StateHover
	StateFocus
	StateActive
	StateDisabled
)

var stateNames = [...]string{
	StateRest:     "rest",
	StateHover:    "hover",
	StateFocus:    "focus",
	StateActive:   "active",
	StateDisabled: "disabled",
}

// String returns the canonical lowercase name of the state.
func (s InteractionState) String() string {
	if int(s) < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("InteractionState(%d)", int(s))
	}
	return stateNames[s]
}

// Valid reports whether s is one of the five interaction states.
func (s InteractionState) Valid() bool {
	return int(s) >= 0 && int(s) < len(stateNames)
}

// ParseState converts a state name into an InteractionState.
func ParseState(name string) (InteractionState, error) {
	for i, candidate := range stateNames {
		if candidate == name {
			return InteractionState(i), nil
		}
	}
	return StateRest, fmt.Errorf("unknown interaction state %q", name)
}

// States returns all interaction states in precedence order, lowest first.
func States() []InteractionState {
	return []InteractionState{StateRest, StateHover, StateFocus, StateActive, StateDisabled}
}
