package mock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quentinrf/berlin-clock/internal/domain"
)

// ErrEndOfDay is returned for 24:00:00, which no wall clock ever shows
var ErrEndOfDay = errors.New("24:00:00 is not a wall clock time")

// FixedClock always reports the same time of day
// This implements the ports.ClockSource interface
type FixedClock struct {
	at  time.Time
	err error
}

// NewFixedClock creates a clock stopped at t
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{at: t}
}

// NewFixedClockAt creates a clock stopped at an HH:mm:ss time of day, today in UTC.
// 24:00:00 cannot be read from a wall clock and is rejected.
func NewFixedClockAt(text string) (*FixedClock, error) {
	t, err := domain.ParseTime(text)
	if err != nil {
		return nil, err
	}
	if t.IsEndOfDay() {
		return nil, fmt.Errorf("fixed clock at %s: %w", text, ErrEndOfDay)
	}

	y, m, d := time.Now().UTC().Date()
	return NewFixedClock(time.Date(y, m, d, t.Hours(), t.Minutes(), t.Seconds(), 0, time.UTC)), nil
}

// NewBrokenClock creates a clock whose reads always fail with err
func NewBrokenClock(err error) *FixedClock {
	return &FixedClock{err: err}
}

// Now returns the preset instant
func (c *FixedClock) Now(ctx context.Context) (time.Time, error) {
	if c.err != nil {
		return time.Time{}, c.err
	}
	return c.at, nil
}

// Close is a no-op for fixed clock
func (c *FixedClock) Close() error {
	return nil
}
