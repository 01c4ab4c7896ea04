package ports

import (
	"context"
	"time"
)

// ClockSource defines how to read the current wall-clock time
// This is a PORT - adapters (System, Mock) will implement it
type ClockSource interface {
	// Now returns the current instant in the source's location
	Now(ctx context.Context) (time.Time, error)

	// Close releases any resources
	Close() error
}
