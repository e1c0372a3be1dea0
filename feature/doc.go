// Package feature assembles fixed-order 10-component similarity vectors
// for node pairs, combining the structural metrics of package simil, the
// distance oracle of package bfs, and an attribute table.
//
// What
//
//	Extract(g, attrs, src, dst) returns a Vector whose components sit in
//	the fixed, model-compatible order:
//
//	  [0] CommonNeighbors        [5] ShortestPath (−1 = unreachable)
//	  [1] Jaccard                [6] Cosine
//	  [2] PreferentialAttachment [7] Pearson
//	  [3] AdamicAdar             [8] MatchingNonZero
//	  [4] ResourceAllocation     [9] SharedNeighborsRatio
//
//	ExtractBatch runs Extract over a pair slice in parallel, preserving
//	input order in the result.
//
// Fallback policy
//
//  1. Either node absent from the graph → all-zero vector, nothing else
//     is attempted.
//  2. Both present → all five structural metrics and the shortest path
//     are computed unconditionally. When (src,dst) is itself an edge,
//     exactly that edge is excluded from the distance measurement so a
//     known positive pair cannot leak its own label through the trivial
//     answer 1.
//  3. Either node absent from the attribute table → the three attribute
//     slots are 0; structural slots keep their computed values.
//
// Extract is total: it returns a well-formed Vector for every pair of
// int64 IDs and cannot fail. Each call is a pure query against the
// graph/table snapshot with no side effects, so independent pairs may be
// extracted concurrently without locking.
//
// Usage
//
//	vec := feature.Extract(g, attrs, 1, 3)
//	fmt.Println(vec[feature.IdxShortestPath])
//
//	vecs, err := feature.ExtractBatch(ctx, g, attrs, pairs,
//	    feature.WithWorkers(runtime.GOMAXPROCS(0)))
package feature
