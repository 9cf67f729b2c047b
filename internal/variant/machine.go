package variant

import "fmt"

// Event is an interaction input fed to a Machine by its host.
type Event int

const (
	EventPointerEnter Event = iota
	EventPointerLeave
	EventFocusGained
	EventFocusLost
	EventPress
	EventRelease
	EventDisable
	EventEnable
)

var eventNames = [...]string{
	EventPointerEnter: "pointer_enter",
	EventPointerLeave: "pointer_leave",
	EventFocusGained:  "focus_gained",
	EventFocusLost:    "focus_lost",
	EventPress:        "press",
	EventRelease:      "release",
	EventDisable:      "disable",
	EventEnable:       "enable",
}

// String returns the canonical name of the event.
func (e Event) String() string {
	if int(e) < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// Machine tracks a component's interaction state across input events.
// It keeps independent hovered/focused/pressed booleans and derives the
// reported state by precedence: disabled, then active, then focus, then
// hover, then rest. Disabled pre-empts everything: press input is dropped
// and any held press is released, while pointer and focus bookkeeping
// continue so that re-enabling restores the state the inputs imply.
//
// A Machine belongs to a single component instance on its host's update
// path; it holds no shared state and needs no locking.
type Machine struct {
	hovered  bool
	focused  bool
	pressed  bool
	disabled bool
}

// NewMachine creates a machine at rest.
func NewMachine() *Machine {
	return &Machine{}
}

// Handle applies the event and returns the resulting state.
func (m *Machine) Handle(event Event) InteractionState {
	switch event {
	case EventPointerEnter:
		m.hovered = true
	case EventPointerLeave:
		m.hovered = false
	case EventFocusGained:
		m.focused = true
	case EventFocusLost:
		m.focused = false
	case EventPress:
		if !m.disabled {
			m.pressed = true
		}
	case EventRelease:
		m.pressed = false
	case EventDisable:
		m.disabled = true
		m.pressed = false
	case EventEnable:
		m.disabled = false
	}
	return m.State()
}

// State returns the current interaction state.
func (m *Machine) State() InteractionState {
	switch {
	case m.disabled:
		return StateDisabled
	case m.pressed:
		return StateActive
	case m.focused:
		return StateFocus
	case m.hovered:
		return StateHover
	default:
		return StateRest
	}
}

// Disabled reports whether the machine is in the disabled state.
func (m *Machine) Disabled() bool {
	return m.disabled
}

// Reset returns the machine to rest, clearing all retained input.
func (m *Machine) Reset() {
	*m = Machine{}
}
