// Package bfs implements the breadth-first distance query.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/linkpred/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    int64
	depth int
}

// Distance returns the number of edges on a shortest path from src to dst
// in g, applying any number of functional Options. An excluded edge, if
// configured, is skipped in both directions for the duration of the
// search only; the graph is never mutated.
//
// Returns ErrGraphNil, ErrSourceNotFound or ErrTargetNotFound for invalid
// input, ErrOptionViolation for bad options, ErrUnreachable when no path
// exists, or the context's error on cancellation.
// Complexity: O(V + E) time, O(V) memory.
func Distance(g *core.Graph, src, dst int64, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// Validate endpoints before touching the queue.
	if !g.HasNode(src) {
		return 0, ErrSourceNotFound
	}
	if !g.HasNode(dst) {
		return 0, ErrTargetNotFound
	}
	if src == dst {
		return 0, nil
	}

	visited := make(map[int64]bool, g.NodeCount())
	visited[src] = true
	queue := []queueItem{{id: src, depth: 0}}

	for len(queue) > 0 {
		// Cancellation check, once per dequeue.
		select {
		case <-o.ctx.Done():
			return 0, o.ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		nextDepth := item.depth + 1
		if o.maxDepth > 0 && nextDepth > o.maxDepth {
			continue
		}

		neighbors, err := g.NeighborIDs(item.id)
		if err != nil {
			// Unreachable in practice: item.id came from the graph itself.
			return 0, fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if o.skipEdge(item.id, nbr) {
				continue
			}
			if visited[nbr] {
				continue
			}
			if nbr == dst {
				return nextDepth, nil
			}
			visited[nbr] = true
			queue = append(queue, queueItem{id: nbr, depth: nextDepth})
		}
	}

	return 0, ErrUnreachable
}

// skipEdge reports whether the undirected edge (u,v) is the excluded one.
func (o *options) skipEdge(u, v int64) bool {
	if !o.hasExcluded {
		return false
	}
	a, b := o.excluded[0], o.excluded[1]

	return (u == a && v == b) || (u == b && v == a)
}
