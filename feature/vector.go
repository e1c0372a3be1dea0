// Package feature declares the Vector type and its fixed component order.
package feature

// VectorLen is the number of components in a feature Vector.
const VectorLen = 10

// Unreachable is the sentinel stored in the IdxShortestPath slot when no
// path connects the pair. It is a reserved marker, not a distance.
const Unreachable = -1

// Component indices of a Vector, in the order the downstream model was
// trained against. IdxSharedNeighborsRatio duplicates IdxJaccard by
// value; both positions are part of the model contract.
const (
	IdxCommonNeighbors = iota
	IdxJaccard
	IdxPreferentialAttachment
	IdxAdamicAdar
	IdxResourceAllocation
	IdxShortestPath
	IdxCosine
	IdxPearson
	IdxMatchingNonZero
	IdxSharedNeighborsRatio
)

// Vector is one feature vector for an ordered node pair. It is produced
// fresh per query and owned by the caller.
type Vector [VectorLen]float64

// Pair is an ordered (Src, Dst) query. The nodes need not be distinct,
// adjacent, or present in the graph or attribute table.
type Pair struct {
	Src int64
	Dst int64
}
