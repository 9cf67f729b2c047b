package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachineStartsAtRest(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StateRest, NewMachine().State())
}

func TestMachinePointerAndFocusPrecedence(t *testing.T) {
	t.Parallel()

	m := NewMachine()

	assert.Equal(t, StateHover, m.Handle(EventPointerEnter))
	assert.Equal(t, StateFocus, m.Handle(EventFocusGained))
	assert.Equal(t, StateActive, m.Handle(EventPress))
	assert.Equal(t, StateFocus, m.Handle(EventRelease))
	assert.Equal(t, StateHover, m.Handle(EventFocusLost))
	assert.Equal(t, StateRest, m.Handle(EventPointerLeave))
}

func TestMachineDisabledPreemptsInput(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	m.Handle(EventPointerEnter)
	m.Handle(EventPress)

	assert.Equal(t, StateDisabled, m.Handle(EventDisable))
	assert.True(t, m.Disabled())

	// Input while disabled never surfaces another state.
	assert.Equal(t, StateDisabled, m.Handle(EventPress))
	assert.Equal(t, StateDisabled, m.Handle(EventFocusGained))
	assert.Equal(t, StateDisabled, m.Handle(EventPointerEnter))
}

func TestMachineEnableRestoresImpliedState(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	m.Handle(EventPointerEnter)
	m.Handle(EventDisable)
	m.Handle(EventFocusGained)

	// Pointer and focus bookkeeping survive the disabled window.
	assert.Equal(t, StateFocus, m.Handle(EventEnable))
}

func TestMachineDisableReleasesHeldPress(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	m.Handle(EventPress)
	m.Handle(EventDisable)

	// A press held across disable must not resurface as active.
	assert.Equal(t, StateRest, m.Handle(EventEnable))
}

func TestMachineReset(t *testing.T) {
	t.Parallel()

	m := NewMachine()
	m.Handle(EventPointerEnter)
	m.Handle(EventFocusGained)
	m.Handle(EventDisable)

	m.Reset()
	assert.Equal(t, StateRest, m.State())
	assert.False(t, m.Disabled())
}

func TestMachineStateFeedsResolver(t *testing.T) {
	t.Parallel()

	spec := buttonSpec()
	m := NewMachine()
	m.Handle(EventPointerEnter)

	desc, err := Resolve(spec, NewConfig(), m.State())
	assert.NoError(t, err)
	assert.Contains(t, desc.Classes, "primary-hover")

	m.Handle(EventDisable)
	desc, err = Resolve(spec, NewConfig(), m.State())
	assert.NoError(t, err)
	assert.Contains(t, desc.Classes, "primary-disabled")
	assert.NotContains(t, desc.Classes, "primary-hover")
}

func TestEventString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pointer_enter", EventPointerEnter.String())
	assert.Equal(t, "disable", EventDisable.String())
	assert.Contains(t, Event(99).String(), "Event(99)")
}
