package system

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"
)

// Clock reads the host's wall clock in a fixed location
// This implements the ports.ClockSource interface
type Clock struct {
	loc *time.Location
}

// NewClock creates a clock for the named IANA location.
// An empty name or "Local" uses the host's local time zone.
func NewClock(location string) (*Clock, error) {
	if location == "" || location == "Local" {
		return &Clock{loc: time.Local}, nil
	}

	loc, err := time.LoadLocation(location)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", location, err)
	}
	return &Clock{loc: loc}, nil
}

// Now returns the current time in the clock's location
func (c *Clock) Now(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	return time.Now().In(c.loc), nil
}

// Location returns the location the clock reports in
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Close is a no-op for the system clock
func (c *Clock) Close() error {
	return nil
}
