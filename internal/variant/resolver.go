package variant

import (
	variantkiterrors "github.com/variantkit/variantkit/pkg/errors"
)

// Resolve maps a component configuration and interaction state onto its
// presentation descriptor. It is a pure function: no shared state, no
// side effects, identical inputs yield byte-identical output.
//
// The class list is composed in a fixed order: axis values in the order
// the spec declares its axes, then the interaction-state token, then flag
// tokens in flag declaration order. State and flag tokens are namespaced
// by the resolved variant-axis value, so "hover under primary" and
// "hover under secondary" are distinct tokens by construction.
//
// Disabled — whether supplied as the interaction state or as the built-in
// "disabled" flag — pre-empts hover, focus, and active: only the scoped
// disabled token is emitted alongside aria-disabled="true".
//
// Failures are surfaced immediately and no partial descriptor is ever
// returned: an out-of-domain or undeclared axis/flag reference yields an
// InvalidVariantError, an axis without default and without supplied value
// a MissingAxisError. Specs are assumed pre-validated (see Spec.Validate).
func Resolve(spec Spec, cfg Config, state InteractionState) (Descriptor, error) {
	if !state.Valid() {
		return Descriptor{}, variantkiterrors.NewInvalidVariantError(spec.Component, "state", state.String(), stateNames[:])
	}

	for name := range cfg.values {
		if _, ok := spec.axis(name); !ok {
			return Descriptor{}, variantkiterrors.NewInvalidVariantError(spec.Component, name, "", nil)
		}
	}
	for name := range cfg.flags {
		if _, ok := spec.flag(name); !ok {
			return Descriptor{}, variantkiterrors.NewInvalidVariantError(spec.Component, name, "", nil)
		}
	}

	resolved := make([]string, len(spec.Axes))
	for i, axis := range spec.Axes {
		value, supplied := cfg.values[axis.Name]
		if !supplied {
			if axis.Default == "" {
				return Descriptor{}, variantkiterrors.NewMissingAxisError(spec.Component, axis.Name)
			}
			value = axis.Default
		}
		if !axis.allows(value) {
			return Descriptor{}, variantkiterrors.NewInvalidVariantError(spec.Component, axis.Name, value, axis.Values)
		}
		resolved[i] = value
	}

	variantValue := ""
	if len(resolved) > 0 {
		variantValue = resolved[spec.variantAxisIndex()]
	}

	classes := make([]string, 0, len(resolved)+1+len(spec.Flags))
	for _, value := range resolved {
		classes = appendUnique(classes, value)
	}

	aria := make(map[string]string)
	disabled := state == StateDisabled || cfg.flags[FlagDisabled]
	switch {
	case disabled:
		classes = appendUnique(classes, scopedToken(variantValue, stateNames[StateDisabled]))
		aria["aria-disabled"] = "true"
	case state != StateRest:
		classes = appendUnique(classes, scopedToken(variantValue, state.String()))
	}

	for _, flag := range spec.Flags {
		if !cfg.flags[flag.Name] || flag.Name == FlagDisabled {
			continue
		}
		classes = appendUnique(classes, scopedToken(variantValue, flag.Name))
		if attribute := flag.ariaAttribute(); attribute != "" {
			aria[attribute] = "true"
		}
	}

	return Descriptor{Classes: classes, ARIA: aria}, nil
}

// scopedToken qualifies an interaction or flag token with the variant axis
// value. The qualification is what keeps state styling from bleeding
// between variants.
func scopedToken(variantValue, suffix string) string {
	if variantValue == "" {
		return suffix
	}
	return variantValue + "-" + suffix
}
