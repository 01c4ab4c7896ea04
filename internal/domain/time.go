package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time is a validated time of day on a 24-hour clock.
// This is pure domain logic - no transport, no formatting beyond HH:mm:ss
type Time struct {
	hours   int
	minutes int
	seconds int
}

// NewTime creates a time value with validation.
// The result of a failed validation is an *InvalidFormatError.
func NewTime(hours, minutes, seconds int) (Time, error) {
	input := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	if reason := validate(hours, minutes, seconds); reason != 0 {
		return Time{}, reject(input, reason)
	}
	return Time{hours: hours, minutes: minutes, seconds: seconds}, nil
}

// FromClock takes the time of day of t in its own location.
func FromClock(t time.Time) Time {
	return Time{hours: t.Hour(), minutes: t.Minute(), seconds: t.Second()}
}

// ParseTime validates text against the HH:mm:ss grammar and returns the time it denotes.
//
// Hours take one or two digits in [0,24], minutes and seconds exactly two digits in [00,59].
// 24:00:00 is accepted as end of day; any other time with hour 24 is rejected.
func ParseTime(text string) (Time, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 3 {
		return Time{}, reject(text, ReasonFieldCount)
	}

	var values [3]int
	for i, field := range fields {
		if !isDigits(field) {
			return Time{}, reject(text, ReasonNotNumeric)
		}
		if !validWidth(i, len(field)) {
			return Time{}, reject(text, ReasonWidth)
		}
		// digits only and at most two of them, Atoi cannot fail
		values[i], _ = strconv.Atoi(field)
	}

	if reason := validate(values[0], values[1], values[2]); reason != 0 {
		return Time{}, reject(text, reason)
	}
	return Time{hours: values[0], minutes: values[1], seconds: values[2]}, nil
}

// validate returns the first rule violated by the triple, or zero.
func validate(hours, minutes, seconds int) Reason {
	switch {
	case hours < 0 || hours > 24:
		return ReasonHoursRange
	case minutes < 0 || minutes > 59:
		return ReasonMinutesRange
	case seconds < 0 || seconds > 59:
		return ReasonSecondsRange
	case hours == 24 && (minutes != 0 || seconds != 0):
		return ReasonEndOfDay
	}
	return 0
}

func validWidth(field, width int) bool {
	if field == 0 {
		return width == 1 || width == 2
	}
	return width == 2
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Hours returns the hour of day in [0,24]
func (t Time) Hours() int { return t.hours }

// Minutes returns the minute in [0,59]
func (t Time) Minutes() int { return t.minutes }

// Seconds returns the second in [0,59]
func (t Time) Seconds() int { return t.seconds }

// IsEndOfDay reports whether t is 24:00:00.
func (t Time) IsEndOfDay() bool {
	return t.hours == 24
}

// String formats t as zero-padded HH:mm:ss.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hours, t.minutes, t.seconds)
}
