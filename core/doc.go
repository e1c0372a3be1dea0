// Package core defines the central Graph and AttributeTable types and
// provides thread-safe primitives for building and querying them.
//
// What
//
//   - Graph: an undirected simple graph over int64 node IDs, backed by an
//     adjacency map. Degree and edge-existence checks are O(1); neighbor
//     listings are returned in ascending ID order for determinism.
//   - CommonNeighborIDs intersects two neighborhoods by iterating the
//     smaller one, so the cost is O(min(deg(a), deg(b))).
//   - WithoutEdge runs a callback with one edge temporarily removed and
//     guarantees restoration on every exit path, including panics.
//   - AttributeTable: an immutable mapping from node ID to a fixed-length
//     attribute vector, validated at construction.
//
// Why
//
//   - Link-prediction features are pure queries over a frozen graph
//     snapshot; building once and querying many times keeps every metric
//     cheap and every batch parallelizable.
//
// Concurrency
//
//	A single sync.RWMutex guards the adjacency storage, so reads from any
//	number of goroutines are safe. WithoutEdge additionally serializes
//	exclusion windows against each other; callers who run queries in
//	parallel should prefer the non-mutating exclusion offered by the bfs
//	package and treat the Graph as read-only after construction.
//
// Errors
//
//	ErrNodeNotFound - a query referenced an ID absent from the graph.
//	ErrNilBody      - WithoutEdge was given a nil callback.
//	ErrRaggedRows   - attribute rows of differing lengths.
//	ErrEmptyVector  - an attribute row with no components.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Build: O(V + E). Degree/HasEdge/HasNode: O(1).
//   - NeighborIDs: O(d log d) for the sort, d = degree.
//   - CommonNeighborIDs: O(min(deg(a), deg(b))) plus sorting the result.
package core
