package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantkit/variantkit/internal/variant"
)

func TestBuiltinCatalogIsComplete(t *testing.T) {
	t.Parallel()

	c := Builtin()
	require.Equal(t, 10, c.Len())

	names := c.Names()
	assert.Equal(t, []string{
		"alert", "badge", "button", "checkbox", "input",
		"radio", "select", "tabs", "toggle", "tooltip",
	}, names)
}

func TestBuiltinSpecsValidateAndResolve(t *testing.T) {
	t.Parallel()

	c := Builtin()
	for _, name := range c.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			spec, ok := c.Get(name)
			require.True(t, ok)
			require.NoError(t, spec.Validate())

			for _, cfg := range variant.Combinations(spec) {
				for _, state := range variant.States() {
					desc, err := variant.Resolve(spec, cfg, state)
					require.NoError(t, err)
					assert.NotEmpty(t, desc.Classes)
				}
			}
		})
	}
}

func TestBuiltinDisabledPreemptionAcrossCatalog(t *testing.T) {
	t.Parallel()

	c := Builtin()
	for _, name := range c.Names() {
		spec, _ := c.Get(name)
		axis, ok := spec.VariantAxis()
		require.True(t, ok, "every builtin component declares axes")

		for _, cfg := range variant.Combinations(spec) {
			desc, err := variant.Resolve(spec, cfg.Enable(variant.FlagDisabled), variant.StateHover)
			require.NoError(t, err)
			require.Equal(t, "true", desc.ARIA["aria-disabled"])

			for _, value := range axis.Values {
				for _, state := range []variant.InteractionState{variant.StateHover, variant.StateFocus, variant.StateActive} {
					assert.False(t, desc.HasClass(value+"-"+state.String()),
						"%s: interaction token leaked through disabled", name)
				}
			}
		}
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	t.Parallel()

	c := New()
	spec := variant.NewSpec("chip").
		WithVariantAxis("tone", []string{"neutral"}, "neutral")

	require.NoError(t, c.Register(spec))
	err := c.Register(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterRejectsInvalidSpec(t *testing.T) {
	t.Parallel()

	c := New()
	err := c.Register(variant.NewSpec("chip").WithAxis("size", []string{"sm", "md"}, "xl"))
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestGetUnknownComponent(t *testing.T) {
	t.Parallel()

	_, ok := Builtin().Get("carousel")
	assert.False(t, ok)
}
