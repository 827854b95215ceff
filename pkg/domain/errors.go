package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by every ConfigurationError.
var ErrConfiguration = errors.New("invalid configuration")

// ErrIndexOutOfRange is wrapped by every IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrShortInput is returned when the ciphertext is shorter than the fixed blocks of a layout.
var ErrShortInput = errors.New("ciphertext shorter than layout")

// ConfigurationError rejects a layout before any block is processed.
type ConfigurationError struct {
	Block  string // Block name, empty for layout-wide problems
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Block == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("block %q: %s: %s", e.Block, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// IndexError reports an offset computed outside [0, Length).
// It signals a programming defect and is never silently clamped.
type IndexError struct {
	Op     string
	Offset int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: offset %d outside [0,%d)", e.Op, e.Offset, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// AggregateError represents multiple configuration failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d configuration errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// ConfigurationErrors returns all failures if err is an AggregateError,
// the error itself if it is a single ConfigurationError, and nil otherwise.
func ConfigurationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	var cfg *ConfigurationError
	if errors.As(err, &cfg) {
		return []error{cfg}
	}
	return nil
}
