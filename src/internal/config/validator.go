package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general")...)
	}

	if c.Format != nil {
		if err := validate.Struct(c.Format); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "format")...)
		}
	}

	validationErrors = append(validationErrors, c.validateLogFile()...)

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// validateLogFile rejects a log file path that already names a directory.
func (c *Config) validateLogFile() ValidationErrors {
	if c.General.LogFile == "" {
		return nil
	}

	path := c.GetAbsLogFile()
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return ValidationErrors{{
			FieldPath: "general.log_file",
			Message:   "path is a directory: " + path,
		}}
	}
	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
