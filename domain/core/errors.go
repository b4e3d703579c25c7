package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Classification errors
	ErrInvalidDigit   = errors.New("digit outside 0-9")
	ErrUnknownElement = errors.New("unknown element")

	// Input errors
	ErrMalformedNumber   = errors.New("malformed phone number")
	ErrUnknownMode       = errors.New("unknown analysis mode")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Error constructors with context
func NewInvalidDigitError(d int) error {
	return fmt.Errorf("%w: %d", ErrInvalidDigit, d)
}

func NewMalformedNumberError(raw string, digits int) error {
	return fmt.Errorf("%w: %q has %d digits", ErrMalformedNumber, raw, digits)
}

func NewUnknownElementError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownElement, name)
}

func NewUnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrMalformedNumber) ||
		errors.Is(err, ErrUnknownElement) ||
		errors.Is(err, ErrUnknownMode)
}
