// Package cliconfig holds the CLI-facing configuration for tally: defaults,
// validation, and the file/env/flag precedence machinery.
package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Source kinds accepted by the --source flag.
const (
	SourceFixed = "fixed"
	SourceFile  = "file"
)

// Config holds CLI configuration for tally.
type Config struct {
	// Source selects the value source adapter: "fixed" or "file".
	Source string

	// FixedValue is the base operand used by the fixed source.
	FixedValue int64

	// SourcePath is the TOML value file read by the file source.
	SourcePath string

	// Watch recomputes the total whenever the value file changes.
	// Only valid with the file source.
	Watch bool

	// Debounce is the quiet period applied to file change events.
	Debounce time.Duration

	// Verbose enables debug-level logging.
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Source:     SourceFixed,
		FixedValue: 7,
		Debounce:   200 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceFixed:
	case SourceFile:
		if c.SourcePath == "" {
			return fmt.Errorf("source-path is required for the file source")
		}
	default:
		return fmt.Errorf("unknown source %q (want %q or %q)", c.Source, SourceFixed, SourceFile)
	}

	if c.Watch && c.Source != SourceFile {
		return fmt.Errorf("watch requires the file source")
	}

	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	return nil
}

// Logger returns the console logger used by the CLI.
func Logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setInt64 sets an int64 value from a pointer if not nil and flag not changed.
func (s *configSetter) setInt64(flag string, value *int64, dst *int64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInt64FromString parses a string to int64 and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setInt64FromString(flag, value string, dst *int64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
