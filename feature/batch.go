// Package feature implements parallel batch extraction.
package feature

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linkpred/core"
)

// ErrBatchOptionViolation is returned when an invalid BatchOption is supplied.
var ErrBatchOptionViolation = errors.New("feature: invalid batch option supplied")

// BatchOption configures ExtractBatch via functional arguments.
type BatchOption func(*batchOptions)

// batchOptions holds batch-extraction parameters.
type batchOptions struct {
	workers int
	err     error
}

// WithWorkers sets the number of goroutines extracting pairs.
//
//	n > 0: exactly n workers
//	n == 0: default, one worker per available CPU
//	n < 0: invalid option → ErrBatchOptionViolation
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrBatchOptionViolation, n)
		default:
			o.workers = n
		}
	}
}

// ExtractBatch computes one Vector per pair, in input order. Pairs are
// independent and the graph is never mutated, so extraction runs across
// a worker pool with no shared mutable state.
//
// The only failure mode is cancellation: if ctx is done before every
// pair has been extracted, the context's error is returned and the
// partially filled result is discarded.
// Complexity: O(|pairs| · (V + E)) work, divided across workers.
func ExtractBatch(ctx context.Context, g *core.Graph, attrs *core.AttributeTable, pairs []Pair, opts ...BatchOption) ([]Vector, error) {
	o := batchOptions{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	out := make([]Vector, len(pairs))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.workers)

	for i, p := range pairs {
		i, p := i, p
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			// Each worker writes a distinct index; no synchronization needed.
			out[i] = Extract(g, attrs, p.Src, p.Dst)

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
