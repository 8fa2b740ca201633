package tally

import "github.com/tally-labs/tally/internal/ports"

// Logger is the interface for structured logging.
// Implementations can wrap any logging library; see internal/adapters/log
// for the zerolog adapter used by the CLI.
type Logger = ports.Logger

// Field represents a structured log field.
type Field = ports.Field

// ValueSource supplies the base operand for an add operation.
type ValueSource = ports.ValueSource

// FetchFunc adapts a bare function to the ValueSource interface.
type FetchFunc = ports.FetchFunc

// Option configures optional behavior of Tally.
type Option func(*options)

// options holds the optional configuration for a Tally instance.
type options struct {
	logger ports.Logger
	source ports.ValueSource
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource injects a custom value source, bypassing the built-in adapters.
// Config.Source, FixedValue, and SourcePath are ignored when set.
func WithSource(source ValueSource) Option {
	return func(o *options) {
		o.source = source
	}
}
