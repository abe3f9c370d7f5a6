package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks invalid run input. It is fatal and reported before any iteration runs.
	ErrConfiguration = errors.New("configuration error")

	// ErrZeroDistanceDeposit is returned when a constructed tour has total distance 0,
	// which would make the deposit amount Q/distance undefined.
	ErrZeroDistanceDeposit = errors.New("zero distance deposit")

	ErrNotFound = errors.New("not found")
)

// ConfigError describes which input field was rejected and why.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// NewConfigError builds a ConfigError for field with a formatted reason.
func NewConfigError(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
