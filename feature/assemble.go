// Package feature implements per-pair vector assembly.
package feature

import (
	"github.com/katalvlaran/linkpred/bfs"
	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/simil"
)

// Extract computes the feature Vector for the ordered pair (src, dst)
// against the given graph and attribute table. attrs may be nil, which
// behaves as an empty table.
//
// Extract never fails: absent nodes, absent attribute rows, unreachable
// pairs and degenerate vectors all resolve to the documented fallback
// values. See the package documentation for the full policy.
// Complexity: O(V + E) dominated by the distance query; all other
// metrics cost O(min(deg(src), deg(dst))).
func Extract(g *core.Graph, attrs *core.AttributeTable, src, dst int64) Vector {
	var vec Vector
	if g == nil || !g.HasNode(src) || !g.HasNode(dst) {
		return vec
	}

	// Structural block. Node presence was just established, so the only
	// error these can raise (core.ErrNodeNotFound) cannot occur; the
	// zero value stands in regardless.
	if cn, err := simil.CommonNeighbors(g, src, dst); err == nil {
		vec[IdxCommonNeighbors] = float64(cn)
	}
	if jac, err := simil.Jaccard(g, src, dst); err == nil {
		vec[IdxJaccard] = jac
	}
	if pa, err := simil.PreferentialAttachment(g, src, dst); err == nil {
		vec[IdxPreferentialAttachment] = float64(pa)
	}
	if aa, err := simil.AdamicAdar(g, src, dst); err == nil {
		vec[IdxAdamicAdar] = aa
	}
	if ra, err := simil.ResourceAllocation(g, src, dst); err == nil {
		vec[IdxResourceAllocation] = ra
	}
	if ratio, err := simil.SharedNeighborsRatio(g, src, dst); err == nil {
		vec[IdxSharedNeighborsRatio] = ratio
	}

	vec[IdxShortestPath] = shortestPath(g, src, dst)

	// Attribute block: explicit present/absent branching; any absence
	// leaves the three slots at 0 while the structural block stands.
	u, okU := attrs.Lookup(src)
	v, okV := attrs.Lookup(dst)
	if okU && okV {
		if cos, err := simil.Cosine(u, v); err == nil {
			vec[IdxCosine] = cos
		}
		if r, err := simil.Pearson(u, v); err == nil {
			vec[IdxPearson] = r
		}
		if n, err := simil.MatchingNonZero(u, v); err == nil {
			vec[IdxMatchingNonZero] = float64(n)
		}
	}

	return vec
}

// shortestPath measures the distance from src to dst, excluding the
// (src,dst) edge itself when the pair is a known positive so the label
// cannot leak into the feature. Unreachable pairs map to the sentinel.
func shortestPath(g *core.Graph, src, dst int64) float64 {
	var opts []bfs.Option
	if g.HasEdge(src, dst) {
		opts = append(opts, bfs.WithExcludedEdge(src, dst))
	}
	d, err := bfs.Distance(g, src, dst, opts...)
	if err != nil {
		// ErrUnreachable is the expected no-path outcome; endpoints were
		// validated by the caller, so nothing else can surface here.
		return Unreachable
	}

	return float64(d)
}
