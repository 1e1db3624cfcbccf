package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once

	semverRegex = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)

	// classTokenRegex accepts a single utility-class token: optional leading
	// dash for negative scales, then letters, digits, and the punctuation
	// Tailwind uses in state prefixes, fractions, and arbitrary values.
	classTokenRegex = regexp.MustCompile(`^-?[a-zA-Z0-9][a-zA-Z0-9:./\[\]()%#_,-]*$`)

	// bundleNameRegex constrains variant, size, and base bundle names to the
	// lowercase kebab-case shape used by the built-in theme.
	bundleNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// GetValidator returns the shared validator instance configured with the
// theme-specific rules. The instance is created once and reused.
func GetValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverRegex.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_class", func(fl validator.FieldLevel) bool {
			return classTokenRegex.MatchString(fl.Field().String())
		})

		validatorInstance = v
	})

	return validatorInstance
}
