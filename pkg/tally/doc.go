// Package tally provides the public API for computing totals from a pluggable
// value source. It is the composition root: the only place that knows both
// the source abstraction and the concrete adapters.
//
// Example usage:
//
//	cfg := tally.DefaultConfig()
//	t, err := tally.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	total, err := t.Add(context.Background(), 3)
//
// Custom sources can be injected without touching the built-in adapters:
//
//	t, err := tally.New(cfg, tally.WithSource(tally.FetchFunc(
//	    func(ctx context.Context) (int64, error) {
//	        return 7, nil
//	    },
//	)))
package tally
