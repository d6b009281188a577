package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if !strings.HasPrefix(c.Input.Extension, ".") {
		errors = append(errors, ValidationError{
			Field:   "input.extension",
			Message: "extension must start with '.'",
		})
	}

	errors = append(errors, c.validateFields()...)
	errors = append(errors, c.validateGrading()...)
	errors = append(errors, c.validateLatex()...)
	errors = append(errors, c.validateLogging()...)

	if c.Grouping.UnknownLabel == "" {
		errors = append(errors, ValidationError{
			Field:   "grouping.unknown_label",
			Message: "unknown_label is required",
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateFields() ValidationErrors {
	var errors ValidationErrors

	if c.Fields.AnswersColumn == "" {
		errors = append(errors, ValidationError{
			Field:   "fields.answers_column",
			Message: "answers_column is required",
		})
	}

	if c.Fields.GroupColumn == "" {
		errors = append(errors, ValidationError{
			Field:   "fields.group_column",
			Message: "group_column is required",
		})
	}

	if len(c.Fields.BaseFields) == 0 {
		errors = append(errors, ValidationError{
			Field:   "fields.base_fields",
			Message: "at least one base field must be defined",
		})
	}

	for i, f := range c.Fields.BaseFields {
		if f.Column == "" || f.Label == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("fields.base_fields[%d]", i),
				Message: "column and label are required",
			})
		}
	}

	if c.Fields.VariantFieldPos < 0 || c.Fields.VariantFieldPos > len(c.Fields.BaseFields) {
		errors = append(errors, ValidationError{
			Field:   "fields.variant_field_pos",
			Message: fmt.Sprintf("position must be between 0 and %d", len(c.Fields.BaseFields)),
		})
	}

	return errors
}

func (c *Config) validateGrading() ValidationErrors {
	var errors ValidationErrors

	if c.Grading.Key == "" {
		errors = append(errors, ValidationError{
			Field:   "grading.key",
			Message: "key is required",
		})
	}

	if c.Grading.FirstLabel == "" || c.Grading.SecondLabel == "" {
		errors = append(errors, ValidationError{
			Field:   "grading.first_label",
			Message: "first_label and second_label are required",
		})
	}

	seen := make(map[string]bool, len(c.Grading.Scale))
	for i, m := range c.Grading.Scale {
		if m.Phrase == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("grading.scale[%d].phrase", i),
				Message: "phrase cannot be empty",
			})
			continue
		}
		if seen[m.Phrase] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("grading.scale[%d].phrase", i),
				Message: fmt.Sprintf("duplicate phrase %q", m.Phrase),
			})
		}
		seen[m.Phrase] = true
	}

	return errors
}

func (c *Config) validateLatex() ValidationErrors {
	var errors ValidationErrors

	if c.Latex.Engine == "" {
		errors = append(errors, ValidationError{
			Field:   "latex.engine",
			Message: "engine is required",
		})
	}

	if c.Latex.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "latex.timeout_seconds",
			Message: "timeout_seconds must be positive",
		})
	}

	if c.Latex.Passes < 1 {
		errors = append(errors, ValidationError{
			Field:   "latex.passes",
			Message: "passes must be at least 1",
		})
	}

	if c.Latex.SummaryFile == "" {
		errors = append(errors, ValidationError{
			Field:   "latex.summary_file",
			Message: "summary_file is required",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
