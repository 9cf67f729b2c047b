package errors

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidVariantErrorListsAllowedValues(t *testing.T) {
	t.Parallel()

	err := NewInvalidVariantError("button", "hierarchy", "danger", []string{"primary", "secondary"})

	var invalidErr *InvalidVariantError
	require.ErrorAs(t, err, &invalidErr)
	require.Equal(t, "button", invalidErr.Component)
	require.Equal(t, "hierarchy", invalidErr.Axis)
	require.Contains(t, err.Error(), `"danger"`)
	require.Contains(t, err.Error(), "primary, secondary")
}

func TestInvalidVariantErrorUnknownAxis(t *testing.T) {
	t.Parallel()

	err := NewInvalidVariantError("button", "elevation", "", nil)
	require.Contains(t, err.Error(), `unknown axis or flag "elevation"`)
}

func TestMissingAxisErrorNamesComponentAndAxis(t *testing.T) {
	t.Parallel()

	err := NewMissingAxisError("input", "size")

	var missingErr *MissingAxisError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "input", missingErr.Component)
	require.Equal(t, "size", missingErr.Axis)
	require.Contains(t, err.Error(), "input.size")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unexpected token")
	err := NewParseError("specs.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "specs.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "specs.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[0].axes[1].default", "not a member of values", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[0].axes[1].default", validationErr.Field)
	require.Contains(t, validationErr.Message, "not a member")
}
