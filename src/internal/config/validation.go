package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/runlog/src/internal/logwriter"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "log_path":
		return "must be a file path, not a directory"
	case "header_template":
		return "must be a valid template referencing {{tag}}, e.g. \"{{timestamp}} ({{elapsed}}) {{tag}}: \""
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "general.log_file")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("log_path", validateLogPath); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("header_template", validateHeaderTemplate); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: log file path must name a file
func validateLogPath(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return true
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return false
	}
	base := filepath.Base(path)
	return base != "." && base != ".." && base != "~"
}

// Custom validator: header template parses and carries the level tag
func validateHeaderTemplate(fl validator.FieldLevel) bool {
	template := fl.Field().String()
	if template == "" {
		return true
	}
	return logwriter.ValidateHeaderTemplate(template) == nil &&
		strings.Contains(template, "{{"+logwriter.HEADER_TMPL_TAG+"}}")
}
