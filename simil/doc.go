// Package simil computes pairwise similarity metrics for link prediction:
// five structural metrics over a core.Graph plus three attribute-based
// metrics over fixed-length numeric vectors.
//
// What
//
//	Structural (neighborhood-based, both nodes must exist in the graph):
//	  - CommonNeighbors(a,b)        = |N(a) ∩ N(b)|
//	  - Jaccard(a,b)                = |N(a)∩N(b)| / |N(a)∪N(b)|
//	  - PreferentialAttachment(a,b) = degree(a) · degree(b)
//	  - AdamicAdar(a,b)             = Σ 1/ln(degree(w)) over shared w, degree(w) > 1
//	  - ResourceAllocation(a,b)     = Σ 1/degree(w) over shared w, degree(w) > 0
//	  - SharedNeighborsRatio(a,b)   = |N(a)∩N(b)| / (|N(a)|+|N(b)|−|N(a)∩N(b)|)
//
//	Attribute (vector-based, gonum-backed):
//	  - Cosine(u,v)         = u·v / (‖u‖·‖v‖)
//	  - Pearson(u,v)        = sample correlation coefficient
//	  - MatchingNonZero(u,v) = #{i : u[i] ≠ 0 ∧ v[i] ≠ 0}
//
// Degenerate inputs
//
//	Every ratio is defined to be 0 when its denominator vanishes: an empty
//	neighbor union, a zero-norm vector, or zero variance in either input.
//	These are explicit precondition checks, not suppressed failures — the
//	functions never return NaN or ±Inf.
//
//	SharedNeighborsRatio is algebraically identical to Jaccard. Both are
//	exported on purpose: downstream models were trained against feature
//	vectors carrying both positions, so the duplication is part of the
//	contract and must not be collapsed.
//
// Errors
//
//	Structural metrics propagate core.ErrNodeNotFound for absent IDs.
//	Attribute metrics return ErrDimensionMismatch for vectors of unequal
//	length and ErrEmptyVector for empty ones.
//
// Complexity
//
//	Each structural metric is O(min(deg(a), deg(b))) on top of O(1) degree
//	lookups; each attribute metric is O(L) in the vector length.
package simil
