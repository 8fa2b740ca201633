// Package app contains the application layer: orchestration of IO-dependent
// and pure steps. It depends on internal/ports for everything external and on
// internal/domain for computation, never on concrete adapters.
package app

import (
	"context"
	"time"

	"github.com/tally-labs/tally/internal/domain"
	"github.com/tally-labs/tally/internal/ports"
)

// Adder orchestrates a single add operation: fetch the base operand through
// the supplied source, then combine it with the increment in the pure layer.
type Adder struct {
	logger ports.Logger
}

// NewAdder creates a new Adder with the given logger.
func NewAdder(logger ports.Logger) *Adder {
	return &Adder{logger: logger}
}

// Add fetches the base operand from source and returns domain.Sum(base, y).
//
// The source is consumed transiently: it is invoked exactly once and not
// retained. If the fetch fails, the error is returned unchanged and the pure
// layer is never invoked. The call blocks at the fetch until the source
// resolves or ctx is canceled.
func (a *Adder) Add(ctx context.Context, source ports.ValueSource, y int64) (int64, error) {
	start := time.Now()

	x, err := source.Fetch(ctx)
	if err != nil {
		a.logger.Error("fetch failed", ports.Err(err))
		return 0, err
	}

	total := domain.Sum(x, y)

	a.logger.Debug("computed total",
		ports.Int64("base", x),
		ports.Int64("increment", y),
		ports.Int64("total", total),
		ports.Duration("duration", time.Since(start)),
	)

	return total, nil
}
