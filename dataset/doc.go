// Package dataset ingests the tabular inputs of a link-prediction run —
// node attributes, labeled edges, unlabeled test pairs — and writes the
// predictions artifact.
//
// What
//
//   - LoadAttributes: CSV rows of (node_id, v1 .. vL) into an immutable
//     core.AttributeTable; every row must share the same L.
//   - LoadEdges: CSV rows of (src, dst, label) with label ∈ {0,1}. Rows
//     labeled 1 become graph edges; rows labeled 0 are recorded as
//     explicit negative examples and are never inserted into the graph.
//   - LoadPairs: CSV rows of (src, dst) to be featurized in input order.
//   - WritePredictions: the "ID,Predicted" artifact, one row per test
//     pair, indexed in input order.
//
// Why
//
//	The feature engine itself is total over well-formed IDs, so every
//	malformed row must die here, at the boundary: wrong column counts and
//	non-numeric fields are fatal ingestion errors carrying the offending
//	row number, and the core packages never see them.
//
// Errors
//
//	ErrBadRecord     - wrong column count or a non-numeric field.
//	ErrBadLabel      - an edge label outside {0,1}.
//	ErrDuplicateNode - a node ID appearing twice in an attribute file.
//	Errors from core.NewAttributeTable (ragged or empty rows) pass through.
package dataset
