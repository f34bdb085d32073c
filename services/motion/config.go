package motion

import (
	"fmt"
	"time"
)

// Config is the playback configuration of one binding
type Config struct {
	// Start is the viewport position, in percent from the top, the block's
	// top edge has to reach before it plays ("top 80%" is 80)
	Start    float64
	Duration time.Duration
	Delay    time.Duration
	Ease     string
	// Once plays a single time; otherwise the binding re-arms when the block
	// is scrolled back above the start line and replays on re-entry
	Once    bool
	YOffset float64
	// Stagger delays each child by a fixed increment
	Stagger       time.Duration
	ChildSelector string
	// Children is the number of staggered children; zero or one animates the block itself
	Children int
}

// Validate rejects configs the player cannot honour
func (c Config) Validate() error {
	switch {
	case c.Start < 0 || c.Start > 100:
		return fmt.Errorf("%w: start %.1f outside 0-100", ErrInvalidConfig, c.Start)
	case c.Duration < 0 || c.Delay < 0 || c.Stagger < 0:
		return fmt.Errorf("%w: negative timing", ErrInvalidConfig)
	case c.Children < 0:
		return fmt.Errorf("%w: negative child count", ErrInvalidConfig)
	case c.Children > 1 && c.Stagger > 0 && c.ChildSelector == "":
		return fmt.Errorf("%w: staggered children need a selector", ErrInvalidConfig)
	}
	return nil
}

// Staggered reports whether playback sequences child elements
func (c Config) Staggered() bool {
	return c.Stagger > 0 && c.ChildSelector != ""
}

// units returns how many play events one playback emits
func (c Config) units() int {
	if !c.Staggered() || c.Children < 1 {
		return 1
	}
	return c.Children
}

// Total is the time from threshold crossing until the last unit finishes
func (c Config) Total() time.Duration {
	return c.Delay + time.Duration(c.units()-1)*c.Stagger + c.Duration
}

// Option overrides part of an effect's default config
type Option func(*Config)

func WithStart(percent float64) Option {
	return func(c *Config) { c.Start = percent }
}

func WithDuration(d time.Duration) Option {
	return func(c *Config) { c.Duration = d }
}

func WithDelay(d time.Duration) Option {
	return func(c *Config) { c.Delay = d }
}

func WithEase(ease string) Option {
	return func(c *Config) { c.Ease = ease }
}

func WithYOffset(y float64) Option {
	return func(c *Config) { c.YOffset = y }
}

// PlayOnce disables replay on re-entry
func PlayOnce() Option {
	return func(c *Config) { c.Once = true }
}

// Replay re-arms the binding after the block leaves back through the start line
func Replay() Option {
	return func(c *Config) { c.Once = false }
}

// WithStagger sequences children matched by selector with a fixed delay between them
func WithStagger(step time.Duration, selector string) Option {
	return func(c *Config) {
		c.Stagger = step
		c.ChildSelector = selector
	}
}

// WithChildren sets how many children a staggered binding sequences
func WithChildren(n int) Option {
	return func(c *Config) { c.Children = n }
}
