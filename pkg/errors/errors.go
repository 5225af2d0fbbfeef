package errors

import (
	"errors"
	"fmt"
)

// Domain error types for business logic

var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal error
	ErrInternal = errors.New("internal error")

	// ErrTimeout indicates an operation timeout
	ErrTimeout = errors.New("operation timeout")

	// ErrUnavailable indicates a service is unavailable
	ErrUnavailable = errors.New("service unavailable")
)

// Provider-specific errors

var (
	// ErrInvalidSymbol indicates a symbol the data provider could not resolve
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrEmptySeries indicates the provider returned no bars for the window
	ErrEmptySeries = errors.New("empty series")

	// ErrRateLimitExceeded indicates the upstream API rate limit was hit
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// Indicator-specific errors

var (
	// ErrUnknownIndicator indicates a requested indicator name is not supported
	ErrUnknownIndicator = errors.New("unknown indicator")

	// ErrInvalidPeriod indicates a malformed or non-positive period parameter
	ErrInvalidPeriod = errors.New("invalid period")
)

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
