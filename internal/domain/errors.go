package domain

import "errors"

// Domain errors represent error conditions in the tally domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("tally: invalid configuration")

	// ErrSourceUnavailable is returned when a source adapter cannot
	// produce the base operand (missing file, unreadable data).
	ErrSourceUnavailable = errors.New("tally: source unavailable")

	// ErrWatchUnsupported is returned when Watch is requested for a
	// source that cannot signal changes.
	ErrWatchUnsupported = errors.New("tally: source does not support watching")
)
