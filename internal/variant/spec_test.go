package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	variantkiterrors "github.com/variantkit/variantkit/pkg/errors"
)

func TestSpecValidateAcceptsWellFormedSpec(t *testing.T) {
	t.Parallel()

	require.NoError(t, buttonSpec().Validate())
}

func TestSpecValidateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{
			name: "component name not a token",
			spec: NewSpec("Button"),
			want: "lowercase token",
		},
		{
			name: "duplicate axis",
			spec: NewSpec("button").
				WithAxis("size", []string{"sm"}, "sm").
				WithAxis("size", []string{"md"}, "md"),
			want: "duplicate axis name",
		},
		{
			name: "empty domain",
			spec: NewSpec("button").WithAxis("size", nil, ""),
			want: "no values",
		},
		{
			name: "default outside domain",
			spec: NewSpec("button").WithAxis("size", []string{"sm", "md"}, "lg"),
			want: "not a member",
		},
		{
			name: "duplicate value",
			spec: NewSpec("button").WithAxis("size", []string{"sm", "sm"}, "sm"),
			want: "duplicate axis value",
		},
		{
			name: "uppercase value",
			spec: NewSpec("button").WithAxis("size", []string{"SM"}, ""),
			want: "lowercase token",
		},
		{
			name: "two variant axes",
			spec: NewSpec("button").
				WithVariantAxis("hierarchy", []string{"primary"}, "primary").
				WithVariantAxis("tone", []string{"neutral"}, "neutral"),
			want: "more than one variant axis",
		},
		{
			name: "flag shadows built-in disabled",
			spec: NewSpec("button").
				WithAxis("size", []string{"sm"}, "sm").
				WithFlag("disabled"),
			want: "duplicate flag name",
		},
		{
			name: "duplicate flag",
			spec: NewSpec("button").
				WithAxis("size", []string{"sm"}, "sm").
				WithFlag("loading").
				WithFlag("loading"),
			want: "duplicate flag name",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.spec.Validate()

			var validationErr *variantkiterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVariantAxisDefaultsToFirstDeclared(t *testing.T) {
	t.Parallel()

	spec := NewSpec("badge").
		WithAxis("tone", []string{"neutral", "success"}, "neutral").
		WithAxis("size", []string{"sm", "md"}, "sm")

	axis, ok := spec.VariantAxis()
	require.True(t, ok)
	assert.Equal(t, "tone", axis.Name)
}

func TestVariantAxisHonoursExplicitMarker(t *testing.T) {
	t.Parallel()

	spec := NewSpec("input").
		WithAxis("size", []string{"sm", "md"}, "md").
		WithVariantAxis("validation", []string{"neutral", "invalid"}, "neutral")

	axis, ok := spec.VariantAxis()
	require.True(t, ok)
	assert.Equal(t, "validation", axis.Name)

	desc, err := Resolve(spec, NewConfig(), StateFocus)
	require.NoError(t, err)
	assert.Equal(t, []string{"md", "neutral", "neutral-focus"}, desc.Classes)
}

func TestVariantAxisAbsentOnEmptySpec(t *testing.T) {
	t.Parallel()

	_, ok := NewSpec("spacer").VariantAxis()
	assert.False(t, ok)
}
