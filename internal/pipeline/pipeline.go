// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config bounds the scan worker pool. Workers <= 0 means all CPUs.
type Config struct {
	Workers int
}

// Map applies fn to every element of in on a bounded worker pool and returns
// the results in input order. Each input is independent (the scanners are
// pure), so the only coordination is the pool limit and the shared context:
// the first error cancels the remaining work.
func Map[S, T any](ctx context.Context, cfg Config, in []S, fn func(S) (T, error)) ([]T, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	out := make([]T, len(in))
	for i := range in {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			v, err := fn(in[i])
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
