package errors

import (
	"fmt"
	"strings"
)

// InvalidVariantError reports a configuration value outside an axis's
// enumerated domain, or a reference to an axis or flag the spec never
// declared. It is a programmer error: callers must normalize external
// data before resolution.
type InvalidVariantError struct {
	Component string
	Axis      string
	Value     string
	Allowed   []string
}

// NewInvalidVariantError constructs an InvalidVariantError.
func NewInvalidVariantError(component, axis, value string, allowed []string) error {
	return &InvalidVariantError{Component: component, Axis: axis, Value: value, Allowed: allowed}
}

func (e *InvalidVariantError) Error() string {
	if e == nil {
		return ""
	}

	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid variant value: %s.%s: %q is not one of [%s]",
			e.Component, e.Axis, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("invalid variant value: %s: unknown axis or flag %q", e.Component, e.Axis)
}

// MissingAxisError reports an axis that declares no default and received
// no caller-supplied value.
type MissingAxisError struct {
	Component string
	Axis      string
}

// NewMissingAxisError constructs a MissingAxisError.
func NewMissingAxisError(component, axis string) error {
	return &MissingAxisError{Component: component, Axis: axis}
}

func (e *MissingAxisError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("missing axis: %s.%s has no default and no supplied value", e.Component, e.Axis)
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures spec document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
