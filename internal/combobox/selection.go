package combobox

import (
	"errors"
	"fmt"
)

// NoSelection is the index reported when no row is selected.
const NoSelection = -1

// ErrOutOfRange is returned when an index does not fit the current row count.
var ErrOutOfRange = errors.New("row index out of range")

// Selection holds the committed row index and the row count it was
// validated against.
type Selection struct {
	index    int
	rowCount int
}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return Selection{index: NoSelection}
}

// Index returns the selected row, or NoSelection.
func (s *Selection) Index() int {
	return s.index
}

// RowCount returns the row count snapshot.
func (s *Selection) RowCount() int {
	return s.rowCount
}

// Set stores i. NoSelection clears; an index outside [0, rowCount) is
// rejected and the previous value is kept.
func (s *Selection) Set(i int) error {
	if i == NoSelection {
		s.index = NoSelection
		return nil
	}
	if i < 0 || i >= s.rowCount {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, s.rowCount)
	}
	s.index = i
	return nil
}

// Refresh replaces the row count snapshot. A selection that no longer fits
// is cleared.
func (s *Selection) Refresh(rowCount int) {
	if rowCount < 0 {
		rowCount = 0
	}
	s.rowCount = rowCount
	if s.index >= rowCount {
		s.index = NoSelection
	}
}

// Valid reports whether i would be accepted by Set.
func (s *Selection) Valid(i int) bool {
	return i == NoSelection || (i >= 0 && i < s.rowCount)
}
