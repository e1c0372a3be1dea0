// Package core declares the Graph type, its sentinel errors, and the
// NewGraph/Build constructors.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph and attribute operations.
var (
	// ErrNodeNotFound indicates an operation referenced an ID absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNilBody indicates WithoutEdge was invoked with a nil callback.
	ErrNilBody = errors.New("core: nil body callback")

	// ErrRaggedRows indicates attribute rows of differing lengths.
	ErrRaggedRows = errors.New("core: attribute rows have differing lengths")

	// ErrEmptyVector indicates an attribute row with zero components.
	ErrEmptyVector = errors.New("core: empty attribute vector")
)

// Graph is an undirected simple graph over int64 node IDs.
//
// Edges are stored symmetrically: (a,b) present implies b ∈ adjacency[a]
// and a ∈ adjacency[b]. The node set may include isolated nodes. After
// construction the graph is meant to be queried, not grown; the only
// supported mutation is the transient, self-restoring removal performed
// by WithoutEdge.
type Graph struct {
	mu        sync.RWMutex // guards adjacency and edgeCount
	muExclude sync.Mutex   // serializes WithoutEdge windows

	adjacency map[int64]map[int64]struct{} // node ID → neighbor set
	edgeCount int                          // undirected edges, counted once
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[int64]map[int64]struct{})}
}

// Build constructs a Graph from a node list and a positive edge list.
// Endpoints of edges are added implicitly, so nodes may list only the
// isolated ones. Duplicate edges collapse; the symmetry invariant holds
// by construction.
// Complexity: O(V + E).
func Build(nodes []int64, edges [][2]int64) *Graph {
	g := NewGraph()
	for _, id := range nodes {
		g.AddNode(id)
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	return g
}
