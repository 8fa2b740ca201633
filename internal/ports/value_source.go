package ports

import "context"

// ValueSource supplies the base operand for an add operation.
// Implementations perform whatever concrete IO is required (reading a file,
// in a real deployment a database or service call) and must surface failures
// in the returned error rather than swallowing them.
type ValueSource interface {
	// Fetch returns the current base operand.
	// It blocks until the value is available, the source fails, or ctx is
	// canceled. Fetch is invoked at most once per add operation.
	Fetch(ctx context.Context) (int64, error)
}

// FetchFunc adapts a bare function to the ValueSource interface.
type FetchFunc func(ctx context.Context) (int64, error)

// Fetch calls f.
func (f FetchFunc) Fetch(ctx context.Context) (int64, error) {
	return f(ctx)
}
