package presence

import "errors"

var (
	// ErrInvalidConfig is returned by New when the resolution or slot count is not positive.
	ErrInvalidConfig = errors.New("presence: invalid configuration")

	// ErrOutsideWindow is returned when a time falls outside the tracker window.
	ErrOutsideWindow = errors.New("presence: time outside window")

	// ErrWindowMismatch is returned when combining trackers over different windows.
	ErrWindowMismatch = errors.New("presence: window mismatch")
)
