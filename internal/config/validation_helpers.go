package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tailkiterrors "github.com/alexisbeaulieu97/tailkit/pkg/errors"
)

// convertValidationError translates a validator error into the package's
// validation error type, surfacing the first offending field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fieldErr := validationErrs[0]
		field := yamlishFieldName(fieldErr)
		message := fmt.Sprintf("%s failed validation for tag '%s'", field, fieldErr.Tag())
		return tailkiterrors.NewValidationError(field, message, err)
	}

	return tailkiterrors.NewValidationError("theme", err.Error(), err)
}

// yamlishFieldName lowercases the struct namespace so errors name fields the
// way they appear in the YAML document.
func yamlishFieldName(fieldErr validator.FieldError) string {
	parts := strings.Split(fieldErr.StructNamespace(), ".")
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
