// Package linkpred computes fixed-length similarity feature vectors for
// node pairs of a large undirected relationship graph, to feed a
// downstream link-existence classifier.
//
// 🚀 What is linkpred?
//
//	A small, thread-safe library that brings together:
//		• Core primitives: an undirected graph with O(1) degree/edge queries
//		  and an immutable node-attribute table
//		• A BFS shortest-path oracle with leakage-safe edge exclusion
//		• Nine similarity metrics: five structural (common neighbors,
//		  Jaccard, preferential attachment, Adamic–Adar, resource
//		  allocation), three attribute-based (cosine, Pearson, matching
//		  non-zeros), plus the shared-neighbors ratio
//		• A feature assembler emitting 10-component vectors, total over
//		  every pair of node IDs, parallelizable per pair
//
// ✨ Why choose linkpred?
//
//   - Predictable fallbacks – absent nodes, empty neighborhoods,
//     unreachable pairs and zero-norm vectors all resolve to defined
//     values, never to NaN or a panic
//   - Leakage-safe – when a queried pair is itself an edge, that edge is
//     excluded from the distance measurement without mutating the graph
//   - Lock-free batches – feature extraction is a pure function of its
//     arguments, so pair batches run in parallel with no shared state
//
// Everything is organized under five subpackages:
//
//	core/    — Graph and AttributeTable types with thread-safe primitives
//	bfs/     — shortest-path distance oracle with excluded-edge support
//	simil/   — structural and attribute similarity metrics
//	feature/ — per-pair and batch feature-vector assembly
//	dataset/ — CSV ingestion of attributes, labeled edges and test pairs
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4      feature.Extract(g, attrs, 1, 4) → 10 numbers
//
//	go get github.com/katalvlaran/linkpred
package linkpred
