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

	if err := c.validateScan(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateConvert(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateScan() ValidationErrors {
	var errors ValidationErrors

	if c.Scan.Workers <= 0 {
		errors = append(errors, ValidationError{
			Field:   "scan.workers",
			Message: "workers must be positive",
		})
	}

	return errors
}

func (c *Config) validateConvert() ValidationErrors {
	var errors ValidationErrors

	validTargets := map[string]bool{"pod5": true, "single_fast5": true, "": true}
	if !validTargets[c.Convert.Target] {
		errors = append(errors, ValidationError{
			Field:   "convert.target",
			Message: "target must be 'pod5' or 'single_fast5'",
		})
	}

	if c.Convert.Threads <= 0 {
		errors = append(errors, ValidationError{
			Field:   "convert.threads",
			Message: "threads must be positive",
		})
	}

	if c.Convert.Target != "" && c.Convert.ScriptOutput == "" {
		errors = append(errors, ValidationError{
			Field:   "convert.script_output",
			Message: "script_output is required when a conversion target is set",
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
