// Package stub provides a ValueSource backed by a fixed in-memory value.
// It stands in for a real external source in tests and in the default
// configuration.
package stub

import "context"

// FixedSource implements ports.ValueSource by returning a constant value.
type FixedSource struct {
	value int64
}

// NewFixedSource creates a FixedSource that always yields value.
func NewFixedSource(value int64) *FixedSource {
	return &FixedSource{value: value}
}

// Fetch returns the configured value. It never fails.
func (s *FixedSource) Fetch(ctx context.Context) (int64, error) {
	return s.value, nil
}
