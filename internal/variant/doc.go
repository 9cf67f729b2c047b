// Package variant maps declared component configurations onto presentation
// descriptors: deterministic class token lists plus ARIA attribute sets.
//
// # Model
//
// A Spec declares a component kind's closed configuration surface as data:
// ordered axes with enumerated domains and defaults, plus boolean flags.
// A Config supplies axis values and flag settings for one usage. An
// InteractionState identifies the single active interaction state. Resolve
// combines the three:
//
//	spec := variant.NewSpec("button").
//		WithVariantAxis("hierarchy", []string{"primary", "secondary"}, "primary").
//		WithAxis("size", []string{"sm", "md"}, "md").
//		WithFlag("loading")
//
//	desc, err := variant.Resolve(spec, variant.NewConfig(), variant.StateHover)
//	// desc.Classes: ["primary", "md", "primary-hover"]
//
// # Invariants
//
// Resolution is pure and deterministic: identical inputs yield byte-identical
// descriptors. Interaction and flag tokens are always qualified by the
// variant axis value, so state styling declared for one variant can never
// apply to another. Disabled pre-empts hover, focus, and active, whether it
// arrives as the interaction state or as the built-in "disabled" flag.
// Invalid input fails closed with a typed error; no partial descriptor is
// ever returned and no value is silently coerced to a default.
//
// # Interaction tracking
//
// Machine converts host input events (pointer, focus, press, disable) into
// the current InteractionState, applying the same disabled pre-emption rule.
// Hosts feed the machine on their update path and pass its state to Resolve
// on every change.
package variant
