package specfile

import (
	"github.com/variantkit/variantkit/internal/variant"
)

// Document represents a full variant spec export: a named set of
// component declarations produced by a design-tool pipeline.
type Document struct {
	Version    string      `yaml:"version" validate:"required,semver"`
	Name       string      `yaml:"name" validate:"required,min=1,max=100"`
	Components []Component `yaml:"components" validate:"required,min=1,dive"`
}

// Component declares one component kind's configuration surface.
type Component struct {
	Name  string     `yaml:"name" validate:"required,token"`
	Axes  []AxisDecl `yaml:"axes" validate:"required,min=1,dive"`
	Flags []FlagDecl `yaml:"flags,omitempty" validate:"omitempty,dive"`
}

// AxisDecl declares one configuration axis.
type AxisDecl struct {
	Name    string   `yaml:"name" validate:"required,token"`
	Values  []string `yaml:"values" validate:"required,min=1,dive,token"`
	Default string   `yaml:"default,omitempty" validate:"omitempty,token"`
	Variant bool     `yaml:"variant,omitempty"`
}

// FlagDecl declares one boolean flag, optionally bound to an explicit
// ARIA attribute instead of the default table entry.
type FlagDecl struct {
	Name string `yaml:"name" validate:"required,token"`
	ARIA string `yaml:"aria,omitempty" validate:"omitempty,aria_attribute"`
}

// Spec converts a component declaration into the resolver's spec model.
func (c Component) Spec() variant.Spec {
	spec := variant.NewSpec(c.Name)
	for _, axis := range c.Axes {
		spec.Axes = append(spec.Axes, variant.Axis{
			Name:    axis.Name,
			Values:  append([]string(nil), axis.Values...),
			Default: axis.Default,
			Variant: axis.Variant,
		})
	}
	for _, flag := range c.Flags {
		spec.Flags = append(spec.Flags, variant.Flag{Name: flag.Name, ARIA: flag.ARIA})
	}
	return spec
}

// Specs converts every component declaration in the document.
func (d Document) Specs() []variant.Spec {
	specs := make([]variant.Spec, 0, len(d.Components))
	for _, component := range d.Components {
		specs = append(specs, component.Spec())
	}
	return specs
}
