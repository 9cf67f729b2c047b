package catalog

import (
	"github.com/variantkit/variantkit/internal/variant"
)

// Builtin returns the catalog of stock component specs. The taxonomy
// mirrors a conventional design-system export: a hierarchy or tone axis
// scoping interaction tokens, a size axis, and the flags each control
// semantically supports.
func Builtin() *Catalog {
	c := New()
	for _, spec := range builtinSpecs() {
		// Builtin specs are covered by tests; a registration failure here
		// is a programming defect.
		if err := c.Register(spec); err != nil {
			panic(err)
		}
	}
	return c
}

func builtinSpecs() []variant.Spec {
	return []variant.Spec{
		variant.NewSpec("button").
			WithVariantAxis("hierarchy", []string{"primary", "secondary", "tertiary"}, "primary").
			WithAxis("size", []string{"sm", "md", "lg"}, "md").
			WithFlag("loading"),

		variant.NewSpec("badge").
			WithVariantAxis("tone", []string{"neutral", "info", "success", "warning", "danger"}, "neutral").
			WithAxis("size", []string{"sm", "md"}, "sm"),

		variant.NewSpec("alert").
			WithVariantAxis("tone", []string{"info", "success", "warning", "danger"}, "info").
			WithFlag("dismissible"),

		variant.NewSpec("input").
			WithVariantAxis("validation", []string{"neutral", "invalid"}, "neutral").
			WithAxis("size", []string{"sm", "md", "lg"}, "md").
			WithFlag("required").
			WithFlag("readonly").
			WithFlag("invalid"),

		variant.NewSpec("checkbox").
			WithVariantAxis("tone", []string{"neutral", "danger"}, "neutral").
			WithAxis("size", []string{"sm", "md"}, "md").
			WithFlag("checked").
			WithFlag("required"),

		variant.NewSpec("radio").
			WithVariantAxis("tone", []string{"neutral", "danger"}, "neutral").
			WithAxis("size", []string{"sm", "md"}, "md").
			WithFlag("checked"),

		variant.NewSpec("select").
			WithVariantAxis("validation", []string{"neutral", "invalid"}, "neutral").
			WithAxis("size", []string{"sm", "md", "lg"}, "md").
			WithFlagARIA("open", "aria-expanded").
			WithFlag("required"),

		variant.NewSpec("tabs").
			WithVariantAxis("style", []string{"underline", "pill"}, "underline").
			WithRequiredAxis("orientation", []string{"horizontal", "vertical"}).
			WithFlag("selected"),

		variant.NewSpec("tooltip").
			WithVariantAxis("tone", []string{"neutral", "inverse"}, "neutral").
			WithAxis("placement", []string{"top", "bottom", "left", "right"}, "top").
			WithFlag("hidden"),

		variant.NewSpec("toggle").
			WithVariantAxis("hierarchy", []string{"primary", "secondary"}, "primary").
			WithAxis("size", []string{"sm", "md"}, "md").
			WithFlagARIA("on", "aria-pressed").
			WithFlag("loading"),
	}
}
