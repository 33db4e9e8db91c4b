package config

import (
	"fmt"
	"time"
)

// Config holds the options for a single flash. It is built once from the
// command line and read-only afterwards.
type Config struct {
	Color string  // named color or hex triplet
	Width int     // border thickness in pixels
	Hold  float64 // seconds to show the border before fading
	Fade  float64 // fade-out duration in seconds; <= 0 disables the fade
}

// Default returns the built-in option values.
func Default() Config {
	return Config{
		Color: "orange",
		Width: 6,
		Hold:  0.4,
		Fade:  0.3,
	}
}

// Validate checks the options for values the flash cannot run with.
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("border width must be at least 1 pixel, got %d", c.Width)
	}
	if c.Hold < 0 {
		return fmt.Errorf("hold duration cannot be negative, got %g", c.Hold)
	}
	return nil
}

// HoldDuration returns the hold phase length.
func (c Config) HoldDuration() time.Duration {
	return time.Duration(c.Hold * float64(time.Second))
}

// FadeDuration returns the fade phase length. Zero or negative means the
// fade is skipped entirely.
func (c Config) FadeDuration() time.Duration {
	return time.Duration(c.Fade * float64(time.Second))
}
