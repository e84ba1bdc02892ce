/*
errors.go - Centralized error types

PURPOSE:
  All error types in one place for consistency and discoverability.
  The projection itself never fails: bad input yields an empty or shorter
  result. These errors exist for the surfaces that want to say why.

ERROR CATEGORIES:
  1. Parse errors - Malformed dates or numbers
  2. Range errors - A period whose end precedes its start
  3. Configuration errors - Unknown holiday source

USAGE:
  if errors.Is(err, generic.ErrInvalidDate) {
      // 400 Bad Request
  }
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when text is not a real YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidNumber is returned when a balance or rate is not a decimal number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidRange is returned when a period ends before it starts.
	ErrInvalidRange = errors.New("invalid range: end before start")

	// ErrUnknownHolidaySource is returned for an unrecognized holiday calendar name.
	ErrUnknownHolidaySource = errors.New("unknown holiday source")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DateParseError reports text that is not a valid calendar date.
type DateParseError struct {
	Input string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q (use YYYY-MM-DD)", e.Input)
}

func (e *DateParseError) Unwrap() error {
	return ErrInvalidDate
}

// NumberParseError reports which numeric input failed to parse.
type NumberParseError struct {
	Field string
	Input string
	Err   error
}

func (e *NumberParseError) Error() string {
	return fmt.Sprintf("%s: invalid number %q", e.Field, e.Input)
}

func (e *NumberParseError) Unwrap() []error {
	return []error{ErrInvalidNumber, e.Err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrInvalidRange)
}
