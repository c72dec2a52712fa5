package combobox

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// RowSlot is one visible row of the open overlay.
type RowSlot struct {
	Row         int
	Title       string
	View        RowView
	Highlighted bool
}

// Activate is the primary activation of the field: a tap, or the key that
// would summon a keyboard when EmulateKeyboard is set.
func (c *ComboBox) Activate() {
	c.RequestOpen()
}

// Confirm commits the highlighted row and closes the overlay.
func (c *ComboBox) Confirm() {
	c.RequestClose(true)
}

// Cancel closes the overlay and keeps the previous selection.
func (c *ComboBox) Cancel() {
	c.RequestClose(false)
}

// Highlighted returns the in-overlay row that would be committed by
// Confirm. An index the provider no longer has reads as NoSelection.
func (c *ComboBox) Highlighted() int {
	if c.highlight == NoSelection || c.highlight >= c.liveRowCount() {
		return NoSelection
	}
	return c.highlight
}

// MoveHighlight moves the highlight by delta rows, clamped to the row range.
func (c *ComboBox) MoveHighlight(delta int) {
	if c.state != Open {
		return
	}
	n := c.clampHighlight()
	if n == 0 {
		return
	}
	h := c.highlight
	if h == NoSelection {
		h = 0
		if delta < 0 {
			h = n - 1
		}
	} else {
		h += delta
	}
	c.highlight = min(max(h, 0), n-1)
	c.scrollToHighlight(n)
}

// PageSize returns how many rows one page move covers.
func (c *ComboBox) PageSize() int {
	return max(c.geom.VisibleRows, 1)
}

// HighlightRow moves the highlight to row. Rows outside the current range
// are ignored.
func (c *ComboBox) HighlightRow(row int) bool {
	if c.state != Open {
		return false
	}
	n := c.clampHighlight()
	if row < 0 || row >= n {
		return false
	}
	c.highlight = row
	c.scrollToHighlight(n)
	return true
}

// HighlightFirst moves the highlight to the first row.
func (c *ComboBox) HighlightFirst() { c.HighlightRow(0) }

// HighlightLast moves the highlight to the last row.
func (c *ComboBox) HighlightLast() { c.HighlightRow(c.liveRowCount() - 1) }

// TapRow handles a tap on row: the row is highlighted and, when taps
// commit, confirmed.
func (c *ComboBox) TapRow(row int) {
	if !c.HighlightRow(row) {
		return
	}
	if c.cfg.TapCommits() {
		c.Confirm()
	}
}

// JumpTo highlights the row whose title best fuzzy-matches query, ignoring
// case. It returns false when nothing matches.
func (c *ComboBox) JumpTo(query string) bool {
	if c.state != Open || query == "" {
		return false
	}
	n := c.clampHighlight()
	titles := make([]string, n)
	for i := range titles {
		titles[i] = strings.ToLower(c.host.title(c, i))
	}
	matches := fuzzy.Find(strings.ToLower(query), titles)
	if len(matches) == 0 {
		return false
	}
	return c.HighlightRow(matches[0].Index)
}

// VisibleRows returns the rows currently shown in the overlay. Custom views
// come from the delegate, which is handed the view previously shown in the
// same slot for reuse; rows without one get a TextRow.
func (c *ComboBox) VisibleRows() []RowSlot {
	if c.state == Closed {
		return nil
	}
	n := c.liveRowCount()
	highlight := c.Highlighted()

	count := min(c.geom.VisibleRows, n-c.offset)
	if count <= 0 {
		return nil
	}
	if len(c.pool) < count {
		pool := make([]RowView, count)
		copy(pool, c.pool)
		c.pool = pool
	}

	slots := make([]RowSlot, 0, count)
	for slot := 0; slot < count; slot++ {
		row := c.offset + slot
		title := c.host.title(c, row)
		reusable := c.pool[slot]

		view := c.host.view(c, row, reusable)
		if view == nil {
			if tr, ok := reusable.(*TextRow); ok {
				tr.Title = title
				view = tr
			} else {
				view = &TextRow{Title: title}
			}
		}
		c.pool[slot] = view

		slots = append(slots, RowSlot{
			Row:         row,
			Title:       title,
			View:        view,
			Highlighted: row == highlight,
		})
	}
	return slots
}

// RowCount returns the provider's current row count, or the count seen at
// the last open when the provider is gone.
func (c *ComboBox) RowCount() int {
	return c.liveRowCount()
}

func (c *ComboBox) liveRowCount() int {
	if n := c.host.rowCount(c); n >= 0 {
		return n
	}
	return c.sel.RowCount()
}

// clampHighlight pulls the highlight back into range after the provider's
// rows shrank, and returns the live row count.
func (c *ComboBox) clampHighlight() int {
	n := c.liveRowCount()
	switch {
	case n == 0:
		c.highlight = NoSelection
	case c.highlight >= n:
		c.highlight = n - 1
	}
	if c.offset > 0 && c.offset > max(n-c.geom.VisibleRows, 0) {
		c.offset = max(n-c.geom.VisibleRows, 0)
	}
	return n
}

func (c *ComboBox) scrollToHighlight(n int) {
	visible := c.geom.VisibleRows
	if visible <= 0 || c.highlight == NoSelection {
		c.offset = 0
		return
	}
	if c.highlight < c.offset {
		c.offset = c.highlight
	}
	if c.highlight >= c.offset+visible {
		c.offset = c.highlight - visible + 1
	}
	if c.offset > n-visible {
		c.offset = n - visible
	}
	if c.offset < 0 {
		c.offset = 0
	}
}
