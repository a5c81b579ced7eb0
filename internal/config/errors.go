package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidationFailed is matched by every *ValidationError via errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the setting path that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Validate checks every setting and joins all failures into one error.
func (c Config) Validate() error {
	var errs []error

	if c.Buffer.Capacity <= 0 {
		errs = append(errs, &ValidationError{Path: "buffer.capacity", Message: "must be positive", Value: c.Buffer.Capacity})
	}
	if c.History.Limit <= 0 {
		errs = append(errs, &ValidationError{Path: "history.limit", Message: "must be positive", Value: c.History.Limit})
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "must be debug, info, warn, or error", Value: c.Logging.Level})
	}
	if c.Display.Width < 0 {
		errs = append(errs, &ValidationError{Path: "display.width", Message: "must not be negative", Value: c.Display.Width})
	}
	if c.Script.CallLimit <= 0 {
		errs = append(errs, &ValidationError{Path: "script.callLimit", Message: "must be positive", Value: c.Script.CallLimit})
	}
	if d, err := time.ParseDuration(c.Script.Timeout); err != nil || d <= 0 {
		errs = append(errs, &ValidationError{Path: "script.timeout", Message: "must be a positive duration", Value: c.Script.Timeout})
	}

	return errors.Join(errs...)
}
