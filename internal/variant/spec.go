package variant

import (
	"regexp"

	variantkiterrors "github.com/variantkit/variantkit/pkg/errors"
)

// FlagDisabled is recognized on every component without declaration. It is
// the flag counterpart of StateDisabled and shares its pre-emption rule.
const FlagDisabled = "disabled"

var tokenPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Axis is one independently varying configuration dimension of a component:
// a closed set of allowed values plus an optional default. An axis marked
// Variant scopes every interaction and flag token the resolver emits.
type Axis struct {
	Name    string
	Values  []string
	Default string
	Variant bool
}

// allows reports whether value is a member of the axis's enumerated domain.
func (a Axis) allows(value string) bool {
	for _, v := range a.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Flag is an independent boolean dimension. When set, it contributes a
// token scoped to the variant axis value and, when the flag participates
// in the ARIA table, an ARIA attribute.
type Flag struct {
	Name string
	// ARIA overrides the attribute looked up from the default table.
	// Empty means "use the table"; the table may also have no entry.
	ARIA string
}

// Spec declares the closed configuration surface of one component kind:
// its axes in presentation order and its recognized flags. Specs are
// static data defined once per component kind.
type Spec struct {
	Component string
	Axes      []Axis
	Flags     []Flag
}

// NewSpec creates a spec for the named component kind.
func NewSpec(component string) Spec {
	return Spec{Component: component}
}

// WithAxis appends a defaulted axis.
func (s Spec) WithAxis(name string, values []string, defaultValue string) Spec {
	s.Axes = append(s.Axes, Axis{Name: name, Values: values, Default: defaultValue})
	return s
}

// WithVariantAxis appends a defaulted axis and marks it as the variant axis.
func (s Spec) WithVariantAxis(name string, values []string, defaultValue string) Spec {
	s.Axes = append(s.Axes, Axis{Name: name, Values: values, Default: defaultValue, Variant: true})
	return s
}

// WithRequiredAxis appends an axis with no default. Callers must supply a
// value on every resolution.
func (s Spec) WithRequiredAxis(name string, values []string) Spec {
	s.Axes = append(s.Axes, Axis{Name: name, Values: values})
	return s
}

// WithFlag appends a declared flag using the default ARIA table.
func (s Spec) WithFlag(name string) Spec {
	s.Flags = append(s.Flags, Flag{Name: name})
	return s
}

// WithFlagARIA appends a declared flag bound to an explicit ARIA attribute.
func (s Spec) WithFlagARIA(name, attribute string) Spec {
	s.Flags = append(s.Flags, Flag{Name: name, ARIA: attribute})
	return s
}

func (s Spec) axis(name string) (Axis, bool) {
	for _, a := range s.Axes {
		if a.Name == name {
			return a, true
		}
	}
	return Axis{}, false
}

func (s Spec) flag(name string) (Flag, bool) {
	if name == FlagDisabled {
		return Flag{Name: FlagDisabled}, true
	}
	for _, f := range s.Flags {
		if f.Name == name {
			return f, true
		}
	}
	return Flag{}, false
}

// VariantAxis returns the axis that scopes interaction and flag tokens:
// the axis marked Variant, or the first declared axis when none is marked.
func (s Spec) VariantAxis() (Axis, bool) {
	for _, a := range s.Axes {
		if a.Variant {
			return a, true
		}
	}
	if len(s.Axes) > 0 {
		return s.Axes[0], true
	}
	return Axis{}, false
}

func (s Spec) variantAxisIndex() int {
	for i, a := range s.Axes {
		if a.Variant {
			return i
		}
	}
	return 0
}

// Validate checks the structural invariants of the spec: token-safe names,
// non-empty enumerated domains, defaults that are members of their domain,
// no duplicate axis or flag names, and at most one explicit variant axis.
func (s Spec) Validate() error {
	if !tokenPattern.MatchString(s.Component) {
		return variantkiterrors.NewValidationError("component", "name must be a lowercase token", nil)
	}

	axisNames := make(map[string]struct{}, len(s.Axes))
	variantAxes := 0
	for _, a := range s.Axes {
		if !tokenPattern.MatchString(a.Name) {
			return variantkiterrors.NewValidationError(s.Component+".axes", "axis name must be a lowercase token", nil)
		}
		if _, dup := axisNames[a.Name]; dup {
			return variantkiterrors.NewValidationError(s.Component+"."+a.Name, "duplicate axis name", nil)
		}
		axisNames[a.Name] = struct{}{}

		if len(a.Values) == 0 {
			return variantkiterrors.NewValidationError(s.Component+"."+a.Name, "axis declares no values", nil)
		}
		valueSet := make(map[string]struct{}, len(a.Values))
		for _, v := range a.Values {
			if !tokenPattern.MatchString(v) {
				return variantkiterrors.NewValidationError(s.Component+"."+a.Name, "axis value must be a lowercase token", nil)
			}
			if _, dup := valueSet[v]; dup {
				return variantkiterrors.NewValidationError(s.Component+"."+a.Name, "duplicate axis value", nil)
			}
			valueSet[v] = struct{}{}
		}
		if a.Default != "" && !a.allows(a.Default) {
			return variantkiterrors.NewValidationError(s.Component+"."+a.Name, "default is not a member of the axis values", nil)
		}
		if a.Variant {
			variantAxes++
		}
	}
	if variantAxes > 1 {
		return variantkiterrors.NewValidationError(s.Component, "more than one variant axis declared", nil)
	}

	flagNames := map[string]struct{}{FlagDisabled: {}}
	for _, f := range s.Flags {
		if !tokenPattern.MatchString(f.Name) {
			return variantkiterrors.NewValidationError(s.Component+".flags", "flag name must be a lowercase token", nil)
		}
		if _, dup := flagNames[f.Name]; dup {
			return variantkiterrors.NewValidationError(s.Component+"."+f.Name, "duplicate flag name", nil)
		}
		flagNames[f.Name] = struct{}{}
	}

	return nil
}
