package presence

import "time"

const (
	// DefaultResolution is the slot width used when WithResolution is not given.
	DefaultResolution = time.Minute

	// DefaultSlots covers one day at DefaultResolution.
	DefaultSlots = 24 * 60
)

type options struct {
	resolution time.Duration
	slots      int
	clock      func() time.Time
	logger     *Logger
}

func defaultOptions() options {
	return options{
		resolution: DefaultResolution,
		slots:      DefaultSlots,
		clock:      time.Now,
		logger:     NoopLogger(),
	}
}

// Option configures a Tracker.
type Option func(*options)

// WithResolution sets the width of one slot.
func WithResolution(d time.Duration) Option {
	return func(o *options) {
		o.resolution = d
	}
}

// WithSlots sets the number of slots in the window.
func WithSlots(n int) Option {
	return func(o *options) {
		o.slots = n
	}
}

// WithClock sets the time source used by MarkNow.
//
// If nil is passed, time.Now is used.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock == nil {
			clock = time.Now
		}
		o.clock = clock
	}
}

// WithLogger sets the logger for rejected and reset events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
