package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WritePredictions writes the predictions artifact: a header "ID,Predicted"
// followed by one row per label, with IDs counting up from 0 in input
// order. Labels must lie in {0,1}.
// Returns ErrBadLabel for any other value, or the writer's own error.
func WritePredictions(w io.Writer, labels []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Predicted"}); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	for i, label := range labels {
		if label != 0 && label != 1 {
			return fmt.Errorf("%w: row %d: got %d", ErrBadLabel, i, label)
		}
		if err := cw.Write([]string{strconv.Itoa(i), strconv.Itoa(label)}); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
