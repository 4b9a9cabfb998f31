package xgxreport

import "time"

// Option configures a Report at construction.
type Option func(*config)

type config struct {
	clock         func() time.Time
	indent        string
	maxCauseDepth int
}

func defaultConfig() config {
	return config{
		clock:         time.Now,
		indent:        "  ",
		maxCauseDepth: defaultMaxCauseDepth,
	}
}

// WithClock sets the time source used for the "instant" field.
// A nil clock is ignored.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithIndent sets the indentation String uses. The default is two spaces.
func WithIndent(indent string) Option {
	return func(c *config) {
		c.indent = indent
	}
}

// WithMaxCauseDepth caps how many levels of an error chain are rendered.
// Values <= 0 keep the default of 32.
func WithMaxCauseDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxCauseDepth = depth
		}
	}
}

// now reads the configured clock; a zero config falls back to time.Now.
func (c config) now() time.Time {
	if c.clock == nil {
		return time.Now()
	}
	return c.clock()
}
