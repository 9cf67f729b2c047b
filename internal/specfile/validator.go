package specfile

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	variantkiterrors "github.com/variantkit/variantkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	tokenPattern  = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	ariaPattern   = regexp.MustCompile(`^aria-[a-z]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
			return tokenPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("aria_attribute", func(fl validator.FieldLevel) bool {
			return ariaPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on a parsed
// spec document. Schema checks run through struct tags; the cross-field
// pass enforces the invariants tags cannot express (defaults inside their
// domain, unique names, a single variant axis) and finally runs each
// converted spec through the resolver's own structural validation.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return variantkiterrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(doc.Components))
	for i, component := range doc.Components {
		if _, exists := seen[component.Name]; exists {
			return variantkiterrors.NewValidationError(
				fieldForComponent(i, "name"),
				fmt.Sprintf("duplicate component %q", component.Name), nil)
		}
		seen[component.Name] = struct{}{}

		if err := component.Spec().Validate(); err != nil {
			return variantkiterrors.NewValidationError(fieldForComponent(i, ""), err.Error(), err)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return variantkiterrors.NewValidationError("", err.Error(), err)
	}

	first := validationErrors[0]
	field := strings.TrimPrefix(first.Namespace(), "Document.")
	message := fmt.Sprintf("failed %q constraint", first.Tag())
	return variantkiterrors.NewValidationError(field, message, err)
}

func fieldForComponent(index int, field string) string {
	if field == "" {
		return fmt.Sprintf("components[%d]", index)
	}
	return fmt.Sprintf("components[%d].%s", index, field)
}
