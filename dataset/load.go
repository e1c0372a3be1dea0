// Package dataset implements the CSV readers.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/feature"
)

// LoadAttributes reads CSV rows of (node_id, v1 .. vL) and returns an
// immutable AttributeTable. Every row must carry the same number of
// components; node IDs must be unique.
// Returns ErrBadRecord or ErrDuplicateNode with the offending row
// number, or a core constructor error for ragged input.
func LoadAttributes(r io.Reader) (*core.AttributeTable, error) {
	rows := make(map[int64][]float64)
	if err := eachRecord(r, func(line int, rec []string) error {
		if len(rec) < 2 {
			return fmt.Errorf("%w: row %d: want node id plus at least one value, got %d columns", ErrBadRecord, line, len(rec))
		}
		id, err := parseID(rec[0], line)
		if err != nil {
			return err
		}
		if _, seen := rows[id]; seen {
			return fmt.Errorf("%w: row %d: node %d", ErrDuplicateNode, line, id)
		}
		vec := make([]float64, len(rec)-1)
		for i, field := range rec[1:] {
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return fmt.Errorf("%w: row %d: non-numeric value %q", ErrBadRecord, line, field)
			}
			vec[i] = v
		}
		rows[id] = vec

		return nil
	}); err != nil {
		return nil, err
	}

	return core.NewAttributeTable(rows)
}

// LoadEdges reads CSV rows of (src, dst, label), label ∈ {0,1}, into an
// EdgeSet. Label-1 rows become positive edges; label-0 rows are recorded
// as negatives and never inserted into the graph.
// Returns ErrBadRecord or ErrBadLabel with the offending row number.
func LoadEdges(r io.Reader) (*EdgeSet, error) {
	set := &EdgeSet{}
	seen := make(map[int64]struct{})
	note := func(id int64) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			set.Nodes = append(set.Nodes, id)
		}
	}

	if err := eachRecord(r, func(line int, rec []string) error {
		if len(rec) != 3 {
			return fmt.Errorf("%w: row %d: want (src,dst,label), got %d columns", ErrBadRecord, line, len(rec))
		}
		src, err := parseID(rec[0], line)
		if err != nil {
			return err
		}
		dst, err := parseID(rec[1], line)
		if err != nil {
			return err
		}
		note(src)
		note(dst)
		switch rec[2] {
		case "1":
			set.Positives = append(set.Positives, [2]int64{src, dst})
		case "0":
			set.Negatives = append(set.Negatives, [2]int64{src, dst})
		default:
			return fmt.Errorf("%w: row %d: got %q", ErrBadLabel, line, rec[2])
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return set, nil
}

// LoadPairs reads CSV rows of (src, dst) into the pair slice to be
// featurized, preserving input order.
// Returns ErrBadRecord with the offending row number.
func LoadPairs(r io.Reader) ([]feature.Pair, error) {
	var pairs []feature.Pair
	if err := eachRecord(r, func(line int, rec []string) error {
		if len(rec) != 2 {
			return fmt.Errorf("%w: row %d: want (src,dst), got %d columns", ErrBadRecord, line, len(rec))
		}
		src, err := parseID(rec[0], line)
		if err != nil {
			return err
		}
		dst, err := parseID(rec[1], line)
		if err != nil {
			return err
		}
		pairs = append(pairs, feature.Pair{Src: src, Dst: dst})

		return nil
	}); err != nil {
		return nil, err
	}

	return pairs, nil
}

// eachRecord streams CSV records to fn with 1-based line numbers.
// FieldsPerRecord is left unenforced by the reader so that fn can report
// column-count problems through the package sentinels.
func eachRecord(r io.Reader, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		line++
		if err = fn(line, rec); err != nil {
			return err
		}
	}
}

// parseID parses one int64 node ID field.
func parseID(field string, line int) (int64, error) {
	id, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d: non-integer id %q", ErrBadRecord, line, field)
	}

	return id, nil
}
