// Package bfs provides a breadth-first shortest-path distance oracle over
// a core.Graph, with optional exclusion of a single edge.
//
// What
//
//   - Distance(g, src, dst) returns the minimum number of edges on a path
//     from src to dst, exploring vertices in non-decreasing distance and
//     stopping as soon as dst is dequeued.
//   - WithExcludedEdge(a, b) makes the search treat one undirected edge as
//     absent without ever mutating the graph, so any number of searches
//     with different exclusions may run concurrently over the same Graph.
//   - WithMaxDepth bounds the exploration radius; WithContext allows
//     cancellation of long searches.
//
// Why
//
//   - Link-prediction features must not leak the label being predicted:
//     when the queried pair is itself a known edge, measuring its distance
//     with that edge in place would trivially return 1. Excluding exactly
//     that edge yields the honest second-shortest connection.
//
// Determinism
//
//	Neighbors are expanded in the ascending order produced by
//	core.NeighborIDs, so the traversal — and therefore tie-breaking among
//	equal-length paths — is fully reproducible.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, depth map and visited set
//
// Usage
//
//	d, err := bfs.Distance(g, 1, 3, bfs.WithExcludedEdge(1, 3))
//	switch {
//	case errors.Is(err, bfs.ErrUnreachable):
//	    // no path: map to your sentinel of choice
//	case err != nil:
//	    // ErrGraphNil, ErrSourceNotFound, ErrTargetNotFound,
//	    // ErrOptionViolation, or a cancelled context
//	default:
//	    // d is the edge count of the shortest path
//	}
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if src does not exist.
//   - ErrTargetNotFound  if dst does not exist.
//   - ErrUnreachable     if no path connects src and dst.
//   - ErrOptionViolation if an invalid Option was supplied.
package bfs
