// Package simil implements the neighborhood-based structural metrics.
package simil

import (
	"math"

	"github.com/katalvlaran/linkpred/core"
)

// CommonNeighbors returns |N(a) ∩ N(b)|, the number of nodes adjacent to
// both a and b. Returns core.ErrNodeNotFound if either ID is absent.
func CommonNeighbors(g *core.Graph, a, b int64) (int, error) {
	shared, err := g.CommonNeighborIDs(a, b)
	if err != nil {
		return 0, err
	}

	return len(shared), nil
}

// Jaccard returns |N(a)∩N(b)| / |N(a)∪N(b)|, defined as 0 when the union
// is empty (both nodes isolated).
// Returns core.ErrNodeNotFound if either ID is absent.
func Jaccard(g *core.Graph, a, b int64) (float64, error) {
	return neighborOverlap(g, a, b)
}

// PreferentialAttachment returns degree(a) · degree(b).
// Returns core.ErrNodeNotFound if either ID is absent.
func PreferentialAttachment(g *core.Graph, a, b int64) (int, error) {
	da, err := g.Degree(a)
	if err != nil {
		return 0, err
	}
	db, err := g.Degree(b)
	if err != nil {
		return 0, err
	}

	return da * db, nil
}

// AdamicAdar returns Σ 1/ln(degree(w)) over the common neighbors w of a
// and b with degree(w) > 1. Shared nodes of degree ≤ 1 contribute exactly
// 0: this sidesteps the ln(1)=0 and ln(0) singularities and is a defined
// exclusion, not an error.
// Returns core.ErrNodeNotFound if either ID is absent.
func AdamicAdar(g *core.Graph, a, b int64) (float64, error) {
	shared, err := g.CommonNeighborIDs(a, b)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, w := range shared {
		dw, derr := g.Degree(w)
		if derr != nil {
			return 0, derr
		}
		if dw > 1 {
			sum += 1 / math.Log(float64(dw))
		}
	}

	return sum, nil
}

// ResourceAllocation returns Σ 1/degree(w) over the common neighbors w of
// a and b with degree(w) > 0.
// Returns core.ErrNodeNotFound if either ID is absent.
func ResourceAllocation(g *core.Graph, a, b int64) (float64, error) {
	shared, err := g.CommonNeighborIDs(a, b)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, w := range shared {
		dw, derr := g.Degree(w)
		if derr != nil {
			return 0, derr
		}
		if dw > 0 {
			sum += 1 / float64(dw)
		}
	}

	return sum, nil
}

// SharedNeighborsRatio returns |N(a)∩N(b)| / (|N(a)|+|N(b)|−|N(a)∩N(b)|),
// defined as 0 when the denominator is 0. The formula is algebraically
// identical to Jaccard; it stays a separate export because downstream
// models consume both as distinct feature positions.
// Returns core.ErrNodeNotFound if either ID is absent.
func SharedNeighborsRatio(g *core.Graph, a, b int64) (float64, error) {
	return neighborOverlap(g, a, b)
}

// neighborOverlap computes |N(a)∩N(b)| over the union size via the
// inclusion-exclusion identity |N(a)∪N(b)| = deg(a)+deg(b)−|N(a)∩N(b)|,
// returning 0 for an empty union.
func neighborOverlap(g *core.Graph, a, b int64) (float64, error) {
	shared, err := g.CommonNeighborIDs(a, b)
	if err != nil {
		return 0, err
	}
	da, err := g.Degree(a)
	if err != nil {
		return 0, err
	}
	db, err := g.Degree(b)
	if err != nil {
		return 0, err
	}
	union := da + db - len(shared)
	if union == 0 {
		return 0, nil
	}

	return float64(len(shared)) / float64(union), nil
}
