package ports

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/berlin-clock/internal/domain"
)

// TimeConverter converts a textual time of day into a specific clock representation
type TimeConverter interface {
	// ConvertTime fails with domain.ErrInvalidFormat when text is not a valid HH:mm:ss time
	ConvertTime(ctx context.Context, text string) (string, error)
}

// Converter renders Berlin Clock faces for text input and for the current time
type Converter struct {
	clock ClockSource
}

var _ TimeConverter = (*Converter)(nil)

// NewConverter creates a converter reading the current time from clock.
// clock may be nil when ConvertNow is never called.
func NewConverter(clock ClockSource) *Converter {
	return &Converter{clock: clock}
}

// ConvertTime parses text and returns the five-line lamp grid
func (c *Converter) ConvertTime(ctx context.Context, text string) (string, error) {
	log.Debug().Str("input", text).Msg("converting time to Berlin clock")
	return domain.Convert(text)
}

// ConvertNow renders the clock face for the current time of the clock source
func (c *Converter) ConvertNow(ctx context.Context) (domain.Time, domain.Clock, error) {
	if c.clock == nil {
		return domain.Time{}, domain.Clock{}, domain.ErrClockUnavailable
	}

	now, err := c.clock.Now(ctx)
	if err != nil {
		return domain.Time{}, domain.Clock{}, fmt.Errorf("%w: %w", domain.ErrClockUnavailable, err)
	}

	t := domain.FromClock(now)
	log.Debug().Str("time", t.String()).Msg("rendering current time")

	return t, domain.Render(t), nil
}
