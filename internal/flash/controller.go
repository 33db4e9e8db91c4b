package flash

import (
	"context"
	"log/slog"
	"time"
)

// tickInterval is the length of one fade step, roughly 60 Hz.
const tickInterval = 16 * time.Millisecond

// Surface receives the shared opacity value for the whole overlay set.
type Surface interface {
	SetOpacity(alpha float64) error
}

// Controller drives a flash through its three phases: hold the border at
// full opacity, fade it out one tick at a time, done. Run blocks for the
// whole sequence and is the only writer of the shared alpha value.
type Controller struct {
	Hold    time.Duration
	Fade    time.Duration
	Surface Surface
	Logger  *slog.Logger

	// Interval overrides the fade tick length; zero means tickInterval.
	Interval time.Duration
}

func (c *Controller) interval() time.Duration {
	if c.Interval > 0 {
		return c.Interval
	}
	return tickInterval
}

// Run holds, fades, and returns nil when the border has fully faded out.
// A non-positive fade duration skips the fade phase: no opacity is ever
// written and the flash ends as soon as the hold elapses. Cancelling ctx
// ends the flash early with ctx's error.
func (c *Controller) Run(ctx context.Context) error {
	hold := time.NewTimer(c.Hold)
	defer hold.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-hold.C:
	}

	if c.Fade <= 0 {
		c.Logger.Debug("fade disabled, closing immediately")
		return nil
	}

	alpha := 1.0
	steps := fadeSteps(c.Fade, c.interval())
	decrement := alpha / float64(steps)
	c.Logger.Debug("starting fade", "steps", steps, "interval", c.interval())

	ticker := time.NewTicker(c.interval())
	defer ticker.Stop()

	// The step counter caps the fade at exactly `steps` ticks even when
	// floating-point residue keeps alpha fractionally above zero.
	for remaining := steps; ; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			alpha -= decrement
			remaining--
			if alpha <= 0 || remaining <= 0 {
				c.Logger.Debug("fade complete")
				return nil
			}
			if err := c.Surface.SetOpacity(alpha); err != nil {
				return err
			}
		}
	}
}

// fadeSteps splits the fade duration into whole ticks, never fewer than one.
func fadeSteps(fade, interval time.Duration) int {
	steps := int(fade / interval)
	if steps < 1 {
		steps = 1
	}
	return steps
}
