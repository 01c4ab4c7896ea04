package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates the input is not a valid 24-hour HH:mm:ss time.
	// Every rejection produced by ParseTime and NewTime matches it via errors.Is.
	ErrInvalidFormat = errors.New("invalid time format")

	// ErrClockUnavailable indicates a clock source could not provide the current time
	ErrClockUnavailable = errors.New("clock unavailable")

	// ErrMalformedClock indicates a text grid that is not a Berlin Clock face
	ErrMalformedClock = errors.New("malformed clock face")
)

// Reason tells which validation rule a rejected input violated.
type Reason int

const (
	ReasonFieldCount Reason = iota + 1
	ReasonNotNumeric
	ReasonWidth
	ReasonHoursRange
	ReasonMinutesRange
	ReasonSecondsRange
	ReasonEndOfDay
)

func (r Reason) String() string {
	switch r {
	case ReasonFieldCount:
		return "expected exactly three colon-separated fields"
	case ReasonNotNumeric:
		return "fields must contain digits only"
	case ReasonWidth:
		return "hours take one or two digits, minutes and seconds exactly two"
	case ReasonHoursRange:
		return "hours must be in [0-24]"
	case ReasonMinutesRange:
		return "minutes must be in [00-59]"
	case ReasonSecondsRange:
		return "seconds must be in [00-59]"
	case ReasonEndOfDay:
		return "24:00:00 is the only valid time with hour 24"
	default:
		return "unknown reason"
	}
}

// InvalidFormatError is the structured rejection returned by the validator.
type InvalidFormatError struct {
	Input  string
	Reason Reason
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("incorrect time value '%s': %s; the correct format is HH:mm:ss with hours in [0-24] and minutes and seconds in [00-59]",
		e.Input, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidFormat) match any rejection.
func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

func reject(input string, reason Reason) error {
	return &InvalidFormatError{Input: input, Reason: reason}
}
