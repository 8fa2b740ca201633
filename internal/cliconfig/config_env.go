package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (TALLY_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("source", os.Getenv("TALLY_SOURCE"), &cfg.Source)
	s.setString("source-path", os.Getenv("TALLY_SOURCE_PATH"), &cfg.SourcePath)

	if err := s.setInt64FromString("fixed-value", os.Getenv("TALLY_FIXED_VALUE"), &cfg.FixedValue); err != nil {
		return err
	}

	if err := s.setDuration("debounce", os.Getenv("TALLY_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("TALLY_WATCH"), &cfg.Watch)
	s.setBoolFromString("verbose", os.Getenv("TALLY_VERBOSE"), &cfg.Verbose)

	return nil
}
