// Package bfs declares tunable options and error definitions for the
// shortest-path distance oracle.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for distance queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("bfs: source node not found")

	// ErrTargetNotFound is returned when the target ID is absent.
	ErrTargetNotFound = errors.New("bfs: target node not found")

	// ErrUnreachable is returned when no path connects source and target,
	// including when they lie in different connected components. It marks
	// a defined outcome, not a failure; callers map it to their sentinel.
	ErrUnreachable = errors.New("bfs: target unreachable from source")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a distance query via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when Distance is invoked.
type Option func(*options)

// options holds the parameters of a single distance query.
type options struct {
	// ctx allows cancellation and deadlines.
	ctx context.Context

	// excluded holds the endpoints of the edge to treat as absent;
	// meaningful only when hasExcluded is true.
	excluded    [2]int64
	hasExcluded bool

	// maxDepth, if > 0, bounds the exploration radius; targets beyond it
	// are reported unreachable. 0 disables the limit.
	maxDepth int

	// internal error recorded during option parsing.
	err error
}

// defaultOptions returns an options value with a background context,
// no excluded edge, and no depth limit.
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithExcludedEdge makes the search treat the undirected edge (a,b) as
// absent, in both directions, without mutating the graph. Excluding an
// edge that does not exist is harmless.
func WithExcludedEdge(a, b int64) Option {
	return func(o *options) {
		o.excluded = [2]int64{a, b}
		o.hasExcluded = true
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: targets farther than d edges are reported unreachable
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.maxDepth = d
		}
	}
}
