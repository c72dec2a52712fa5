package components

// ComboBoxSelectedMsg is emitted after a combo box commits a row.
type ComboBoxSelectedMsg struct {
	Name  string
	Row   int
	Title string
}

// transitionDoneMsg ends the show/hide animation of combo box ID.
// Seq drops ticks that belong to an earlier transition.
type transitionDoneMsg struct {
	ID  int
	Seq int
}

// FocusNextMsg is emitted when a widget hands focus to the next one.
type FocusNextMsg struct {
	Reverse bool
}
