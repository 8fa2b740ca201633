package tally

import (
	"context"
	"fmt"
	"time"

	"github.com/tally-labs/tally/internal/adapters/fs"
	logAdapter "github.com/tally-labs/tally/internal/adapters/log"
	"github.com/tally-labs/tally/internal/adapters/stub"
	"github.com/tally-labs/tally/internal/app"
	"github.com/tally-labs/tally/internal/domain"
	"github.com/tally-labs/tally/internal/ports"
)

// Source kinds accepted by Config.Source.
const (
	SourceFixed = "fixed"
	SourceFile  = "file"
)

// Sentinel errors, re-exported for errors.Is checks by callers.
var (
	ErrInvalidConfig     = domain.ErrInvalidConfig
	ErrSourceUnavailable = domain.ErrSourceUnavailable
	ErrWatchUnsupported  = domain.ErrWatchUnsupported
)

// Config holds the configuration for a Tally instance.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Source selects the built-in value source: SourceFixed or SourceFile.
	// Ignored when a source is injected via WithSource.
	Source string

	// FixedValue is the base operand yielded by the fixed source.
	FixedValue int64

	// SourcePath is the TOML value file read by the file source.
	SourcePath string

	// Debounce is the quiet period applied to file change events in Watch.
	Debounce time.Duration
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Source:     SourceFixed,
		FixedValue: 7,
		Debounce:   200 * time.Millisecond,
	}
}

// SetDefaults fills unset fields with default values.
func (c *Config) SetDefaults() {
	if c.Source == "" {
		c.Source = SourceFixed
	}
	if c.Debounce <= 0 {
		c.Debounce = 200 * time.Millisecond
	}
}

// Validate checks the configuration.
// Returned errors match ErrInvalidConfig under errors.Is.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceFixed:
	case SourceFile:
		if c.SourcePath == "" {
			return fmt.Errorf("%w: source path is required for the file source", domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source %q", domain.ErrInvalidConfig, c.Source)
	}
	return nil
}

// Tally computes totals by adding caller increments to a base operand fetched
// from the configured source. Instances are safe for concurrent use; each Add
// is independent and no state is shared between invocations.
type Tally struct {
	config Config
	adder  *app.Adder
	source ports.ValueSource
	logger ports.Logger
}

// New creates a new Tally instance with the given configuration.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Tally, error) {
	cfg.SetDefaults()

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	source := o.source
	if source == nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		switch cfg.Source {
		case SourceFile:
			source = fs.NewFileSource(cfg.SourcePath)
		default:
			source = stub.NewFixedSource(cfg.FixedValue)
		}
	}

	logger := o.logger
	if logger == nil {
		logger = logAdapter.NewNoopLogger()
	}

	return &Tally{
		config: cfg,
		adder:  app.NewAdder(logger),
		source: source,
		logger: logger,
	}, nil
}

// Add returns the sum of the source's current base operand and y.
// The source is fetched exactly once; a fetch failure is returned unchanged.
func (t *Tally) Add(ctx context.Context, y int64) (int64, error) {
	return t.adder.Add(ctx, t.source, y)
}

// Watch recomputes the total with increment y whenever the value file
// changes, invoking fn with each result. An initial result is delivered
// before watching begins. Watch blocks until ctx is canceled.
//
// Only the file source supports watching; other sources return
// ErrWatchUnsupported.
func (t *Tally) Watch(ctx context.Context, y int64, fn func(total int64, err error)) error {
	fileSource, ok := t.source.(*fs.FileSource)
	if !ok {
		return domain.ErrWatchUnsupported
	}

	fn(t.Add(ctx, y))

	watcher := fs.NewWatcher(fileSource.Path(), t.config.Debounce, t.logger)
	return watcher.Run(ctx, func() {
		fn(t.Add(ctx, y))
	})
}
