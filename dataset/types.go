// Package dataset declares ingestion error definitions and the EdgeSet type.
package dataset

import (
	"errors"

	"github.com/katalvlaran/linkpred/core"
)

// Sentinel errors for ingestion and output.
var (
	// ErrBadRecord indicates a row with the wrong column count or a
	// non-numeric field.
	ErrBadRecord = errors.New("dataset: malformed record")

	// ErrBadLabel indicates an edge label outside {0,1}.
	ErrBadLabel = errors.New("dataset: label must be 0 or 1")

	// ErrDuplicateNode indicates a node ID appearing in two attribute rows.
	ErrDuplicateNode = errors.New("dataset: duplicate node id")
)

// EdgeSet is the parsed form of a labeled edge file: the node universe,
// the positive edges that make up the graph, and the negative examples
// kept aside for training.
type EdgeSet struct {
	// Nodes lists every distinct ID seen in the file, positives and
	// negatives alike, in first-seen order.
	Nodes []int64

	// Positives are the label-1 rows, in input order.
	Positives [][2]int64

	// Negatives are the label-0 rows, in input order. They are training
	// examples only and must never become graph edges.
	Negatives [][2]int64
}

// Graph builds the core.Graph of an EdgeSet: every node, positive edges
// only. Nodes that occur solely in negative rows end up isolated, which
// is exactly how the feature assembler must see them.
// Complexity: O(V + E).
func (s *EdgeSet) Graph() *core.Graph {
	return core.Build(s.Nodes, s.Positives)
}
