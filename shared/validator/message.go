package validator

import (
	"errors"
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":         "{field} is required",
		"required_without": "{field} is required",
		"gte":              "{field} must be greater than or equal to {param}",
		"lte":              "{field} must be less than or equal to {param}",
		"gt":               "{field} must be greater than {param}",
		"gtfield":          "{field} must be after {param}",
		"oneof":            "{field} must be one of {param}",
		"max":              "{field} must be at most {param}",
		"min":              "{field} must be at least {param}",
		"email":            "{field} must be a valid email address",
		"enum":             "{field} has an invalid value {value}",
		"empty":            "{field} must not be set",
		"uuid":             "{field} must be a valid id",
		"mimetypes":        "{field} must be one of {param}",
		"maxfilesize":      "{field} must not exceed {param} MB",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr == "" {
				continue
			}

			field := valErr.Field()
			if field == "" {
				field = "value"
			}

			replacer := strings.NewReplacer(
				"{field}", field,
				"{param}", valErr.Param(),
				"{value}", fmt.Sprint(valErr.Value()),
			)

			return replacer.Replace(errStr)
		}

		return valErrors.Error()
	}

	return err.Error()
}
