package core

// AttributeTable is an immutable partial mapping from node ID to a
// fixed-length attribute vector. Every stored vector has the same
// dimension, validated at construction; nodes may be absent, which
// Lookup reports explicitly.
type AttributeTable struct {
	rows map[int64][]float64
	dim  int
}

// NewAttributeTable builds an AttributeTable from rows, copying every
// vector so later mutation of the input cannot alias the table.
// Returns ErrEmptyVector if any row has zero components, or
// ErrRaggedRows if two rows differ in length.
// Complexity: O(rows · dim).
func NewAttributeTable(rows map[int64][]float64) (*AttributeTable, error) {
	t := &AttributeTable{rows: make(map[int64][]float64, len(rows))}
	for id, vec := range rows {
		if len(vec) == 0 {
			return nil, ErrEmptyVector
		}
		if t.dim == 0 {
			t.dim = len(vec)
		} else if len(vec) != t.dim {
			return nil, ErrRaggedRows
		}
		cp := make([]float64, len(vec))
		copy(cp, vec)
		t.rows[id] = cp
	}

	return t, nil
}

// Lookup returns the attribute vector for id and whether one exists.
// The returned slice is the table's own storage; treat it as read-only.
// Complexity: O(1).
func (t *AttributeTable) Lookup(id int64) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	vec, ok := t.rows[id]

	return vec, ok
}

// Dim returns the shared vector length, or 0 for an empty table.
func (t *AttributeTable) Dim() int {
	if t == nil {
		return 0
	}

	return t.dim
}

// Len returns the number of nodes with an attribute vector.
func (t *AttributeTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.rows)
}
