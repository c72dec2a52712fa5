// Package combobox implements the state machine behind a terminal combo box:
// a single-line field that opens a row picker overlay and reports the chosen
// row back to its host.
//
// The package does no terminal I/O. The Bubble Tea widget in
// internal/tui/components drives it from key, mouse and tick messages.
package combobox

import "fmt"

// State is the open/closed state of the picker overlay.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// EventKind identifies a lifecycle notification.
type EventKind int

const (
	WillShow EventKind = iota
	DidShow
	WillHide
	DidHide
	WillChangeFrame
	DidChangeFrame
)

// String returns a readable event name.
func (k EventKind) String() string {
	switch k {
	case WillShow:
		return "will-show"
	case DidShow:
		return "did-show"
	case WillHide:
		return "will-hide"
	case DidHide:
		return "did-hide"
	case WillChangeFrame:
		return "will-change-frame"
	case DidChangeFrame:
		return "did-change-frame"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bottom returns the first row below r.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Placement says on which side of the field the overlay is drawn.
type Placement int

const (
	PlaceBelow Placement = iota
	PlaceAbove
)

func (p Placement) String() string {
	if p == PlaceAbove {
		return "above"
	}
	return "below"
}

// TapCommitMode decides whether tapping a row commits it.
type TapCommitMode string

const (
	// TapCommitAuto commits on tap when no validate button is shown.
	TapCommitAuto   TapCommitMode = "auto"
	TapCommitAlways TapCommitMode = "always"
	TapCommitNever  TapCommitMode = "never"
)
