package core

import "sort"

// AddNode inserts id into the node set if absent.
// Complexity: O(1).
func (g *Graph) AddNode(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)
}

// AddEdge inserts the undirected edge (a,b), creating either endpoint as
// needed. Inserting an existing edge is a no-op. Self-loops are stored
// once and contribute one to the node's degree.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(a)
	g.ensureNode(b)
	if _, ok := g.adjacency[a][b]; ok {
		return
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.edgeCount++
}

// ensureNode creates the adjacency bucket for id. Callers hold g.mu.
func (g *Graph) ensureNode(id int64) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int64]struct{})
	}
}

// HasNode reports whether id belongs to the node set.
// Complexity: O(1).
func (g *Graph) HasNode(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether the undirected edge (a,b) is present.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Degree returns the number of neighbors of id.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(1).
func (g *Graph) Degree(id int64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}

// NeighborIDs returns the neighbors of id in ascending order.
// The returned slice is independent of the graph's internal storage.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d), d = degree(id).
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]int64, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// CommonNeighborIDs returns the IDs adjacent to both a and b, ascending.
// The smaller neighborhood is iterated, so the cost before sorting is
// O(min(deg(a), deg(b))).
// Returns ErrNodeNotFound if either endpoint is absent.
func (g *Graph) CommonNeighborIDs(a, b int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	na, ok := g.adjacency[a]
	if !ok {
		return nil, ErrNodeNotFound
	}
	nb, ok := g.adjacency[b]
	if !ok {
		return nil, ErrNodeNotFound
	}
	// Iterate the smaller set, probe the larger.
	if len(nb) < len(na) {
		na, nb = nb, na
	}
	out := make([]int64, 0, len(na))
	for n := range na {
		if _, shared := nb[n]; shared {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// NodeCount returns the number of nodes, isolated ones included.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// NodeIDs returns every node ID in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int64, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// WithoutEdge removes the edge (a,b) if present, runs body, and restores
// the edge before returning, on every exit path: success, body error, or
// panic. If (a,b) is not an edge, body simply runs against the unchanged
// graph. Exclusion windows are serialized against each other; readers in
// other goroutines will observe the edge as absent for the duration, so
// parallel workloads should prefer the non-mutating exclusion offered by
// the bfs package.
// Returns ErrNilBody for a nil callback, otherwise body's own error.
func (g *Graph) WithoutEdge(a, b int64, body func() error) error {
	if body == nil {
		return ErrNilBody
	}
	g.muExclude.Lock()
	defer g.muExclude.Unlock()

	g.mu.Lock()
	_, present := g.adjacency[a][b]
	if present {
		delete(g.adjacency[a], b)
		delete(g.adjacency[b], a)
		g.edgeCount--
	}
	g.mu.Unlock()

	if present {
		defer func() {
			g.mu.Lock()
			g.adjacency[a][b] = struct{}{}
			g.adjacency[b][a] = struct{}{}
			g.edgeCount++
			g.mu.Unlock()
		}()
	}

	return body()
}
