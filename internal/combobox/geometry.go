package combobox

// ToolbarHeight is the number of rows taken by the toolbar.
const ToolbarHeight = 1

// Geometry describes where and how tall the overlay is.
type Geometry struct {
	// Anchor is the field's frame.
	Anchor Rect
	// Frame is the overlay rectangle, toolbar included.
	Frame Rect
	// Height is Frame.Height.
	Height int
	// HasToolbar is true when the validate toolbar is shown.
	HasToolbar bool
	// VisibleRows is how many rows fit in the overlay at once.
	VisibleRows int
	Placement   Placement
}

// layout is the input to computeGeometry.
type layout struct {
	anchor    Rect
	screenW   int
	screenH   int
	rowCount  int
	rowHeight int
	maxHeight int
	toolbar   bool
}

// computeGeometry sizes the overlay to min(maxHeight, natural height) and
// places it below the anchor, or above when only the space above fits more.
// A zero screen size means the host has not reported bounds and no
// clamping to the screen is done.
func computeGeometry(l layout) Geometry {
	if l.rowHeight <= 0 {
		l.rowHeight = DefaultRowHeight
	}
	chrome := 0
	if l.toolbar {
		chrome = ToolbarHeight
	}

	natural := l.rowCount*l.rowHeight + chrome
	// Keep room for one row, but never exceed the configured max.
	height := min(max(min(l.maxHeight, natural), l.rowHeight+chrome), l.maxHeight)

	placement := PlaceBelow
	y := l.anchor.Bottom()
	if l.screenH > 0 {
		below := l.screenH - l.anchor.Bottom()
		above := l.anchor.Y
		if below < height && above > below {
			placement = PlaceAbove
			height = min(height, above)
			y = l.anchor.Y - height
		} else {
			height = min(height, max(below, 0))
		}
	}

	width := l.anchor.Width
	x := l.anchor.X
	if l.screenW > 0 && x+width > l.screenW {
		x = max(l.screenW-width, 0)
		width = min(width, l.screenW)
	}

	visible := (height - chrome) / l.rowHeight
	if visible < 0 {
		visible = 0
	}
	visible = min(visible, l.rowCount)

	return Geometry{
		Anchor:      l.anchor,
		Frame:       Rect{X: x, Y: y, Width: width, Height: height},
		Height:      height,
		HasToolbar:  l.toolbar,
		VisibleRows: visible,
		Placement:   placement,
	}
}

// RowAt maps a screen cell to a row index given the scroll offset. It
// returns NoSelection when the cell is outside the row area.
func (g Geometry) RowAt(x, y, offset, rowHeight int) int {
	if !g.Frame.Contains(x, y) {
		return NoSelection
	}
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	rel := y - g.Frame.Y
	if rel >= g.VisibleRows*rowHeight {
		return NoSelection
	}
	return offset + rel/rowHeight
}

// InToolbar reports whether the cell is on the toolbar line.
func (g Geometry) InToolbar(x, y int) bool {
	if !g.HasToolbar || !g.Frame.Contains(x, y) {
		return false
	}
	return y >= g.Frame.Bottom()-ToolbarHeight
}
