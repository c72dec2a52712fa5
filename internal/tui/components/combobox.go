package components

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/combobox-tui/internal/combobox"
	"github.com/hy4ri/combobox-tui/internal/tui/styles"
	"github.com/hy4ri/combobox-tui/internal/tui/utils"
)

var lastComboID atomic.Int64

// Toolbar buttons, left to right.
const (
	ButtonCancel = iota
	ButtonValidate
)

var toolbarLabels = [...]string{"Cancel", "Validate"}

// ComboBoxModel is the Bubble Tea face of a combobox.ComboBox. It turns
// keys, mouse clicks and animation ticks into calls on the control and
// renders the field and its overlay.
type ComboBoxModel struct {
	box  *combobox.ComboBox
	keys ComboKeyMap
	id   int

	width   int
	focused bool

	// toolbarFocus routes enter to the toolbar instead of the rows.
	toolbarFocus bool
	button       int

	// query is the type-ahead text typed while open.
	query string

	animating bool
	seq       int
}

// NewComboBox wraps box in a widget.
func NewComboBox(box *combobox.ComboBox) *ComboBoxModel {
	width := box.Config().Width
	if width <= 0 {
		width = 30
	}
	return &ComboBoxModel{
		box:    box,
		keys:   DefaultComboKeyMap(),
		id:     int(lastComboID.Add(1)),
		width:  width,
		button: ButtonValidate,
	}
}

// Box returns the wrapped control.
func (m *ComboBoxModel) Box() *combobox.ComboBox {
	return m.box
}

// KeyMap returns the bindings in use.
func (m *ComboBoxModel) KeyMap() ComboKeyMap {
	return m.keys
}

// Init implements Component.
func (m *ComboBoxModel) Init() tea.Cmd {
	return nil
}

// SetSize implements Component. Only the width is used: a field is always
// one row tall.
func (m *ComboBoxModel) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
}

// Width returns the field width in cells.
func (m *ComboBoxModel) Width() int {
	return m.width
}

// SetFrame tells the control where the field is drawn.
func (m *ComboBoxModel) SetFrame(x, y int) {
	m.box.SetAnchor(combobox.Rect{X: x, Y: y, Width: m.width, Height: 1})
}

// SetScreen tells the control the screen bounds.
func (m *ComboBoxModel) SetScreen(width, height int) {
	m.box.SetScreen(width, height)
}

// Focus implements Focusable.
func (m *ComboBoxModel) Focus() {
	m.focused = true
}

// Blur implements Focusable.
func (m *ComboBoxModel) Blur() {
	m.focused = false
}

// Dismiss cancels an open overlay, as a tap outside it would.
func (m *ComboBoxModel) Dismiss() tea.Cmd {
	if !m.box.IsOpened() {
		return nil
	}
	commits := m.box.Commits()
	m.box.Cancel()
	return m.after(commits)
}

// Focused implements Focusable.
func (m *ComboBoxModel) Focused() bool {
	return m.focused
}

// Update implements Component.
func (m *ComboBoxModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	commits := m.box.Commits()

	switch msg := msg.(type) {
	case transitionDoneMsg:
		if msg.ID != m.id || msg.Seq != m.seq {
			return m, nil
		}
		m.animating = false
		m.box.CompleteTransition()
		if m.box.State() == combobox.Open && m.query != "" {
			m.box.JumpTo(m.query)
		}

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if !m.box.IsOpened() {
			if cmd, handled := m.handleClosedKey(msg); handled {
				return m, tea.Batch(cmd, m.after(commits))
			}
			return m, nil
		}
		m.handleOpenKey(msg)

	case tea.MouseMsg:
		if !m.handleMouse(msg) {
			return m, nil
		}
	}

	return m, m.after(commits)
}

// handleClosedKey maps the activation keys of a closed field.
func (m *ComboBoxModel) handleClosedKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Open):
		m.open("")
		return nil, true
	case msg.String() == "tab" || msg.String() == "shift+tab":
		reverse := msg.String() == "shift+tab"
		return func() tea.Msg { return FocusNextMsg{Reverse: reverse} }, true
	case m.box.Config().EmulateKeyboard && msg.Type == tea.KeyRunes && !msg.Alt:
		// Typing into the field summons the picker, the way a text field
		// summons a keyboard.
		m.open(string(msg.Runes))
		return nil, true
	}
	return nil, false
}

func (m *ComboBoxModel) open(seed string) {
	m.query = seed
	m.toolbarFocus = false
	m.button = ButtonValidate
	m.box.Activate()
	if seed != "" && m.box.State() == combobox.Open {
		m.box.JumpTo(seed)
	}
}

// handleOpenKey maps keys while the overlay exists. Keys that arrive
// during the show/hide animation are dropped.
func (m *ComboBoxModel) handleOpenKey(msg tea.KeyMsg) {
	if m.box.State() != combobox.Open {
		return
	}
	hasToolbar := m.box.Config().ValidateButton

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.box.Cancel()
	case key.Matches(msg, m.keys.Validate):
		m.box.Confirm()
	case hasToolbar && key.Matches(msg, m.keys.Toolbar):
		m.toolbarFocus = !m.toolbarFocus
	case m.toolbarFocus && key.Matches(msg, m.keys.Left):
		m.button = ButtonCancel
	case m.toolbarFocus && key.Matches(msg, m.keys.Right):
		m.button = ButtonValidate
	case key.Matches(msg, m.keys.Tap):
		if m.toolbarFocus {
			m.pressButton(m.button)
			return
		}
		if row := m.box.Highlighted(); row != combobox.NoSelection {
			m.box.TapRow(row)
		}
	case key.Matches(msg, m.keys.Up):
		m.moveBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveBy(-m.box.PageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.moveBy(m.box.PageSize())
	case key.Matches(msg, m.keys.First):
		m.query = ""
		m.box.HighlightFirst()
	case key.Matches(msg, m.keys.Last):
		m.query = ""
		m.box.HighlightLast()
	case key.Matches(msg, m.keys.Erase):
		if m.query != "" {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.box.JumpTo(m.query)
		}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.query += string(msg.Runes)
		m.box.JumpTo(m.query)
	}
}

func (m *ComboBoxModel) moveBy(delta int) {
	m.query = ""
	m.box.MoveHighlight(delta)
}

func (m *ComboBoxModel) pressButton(button int) {
	if button == ButtonValidate {
		m.box.Confirm()
		return
	}
	m.box.Cancel()
}

// handleMouse reports whether the event concerned this combo box.
func (m *ComboBoxModel) handleMouse(msg tea.MouseMsg) bool {
	anchor := m.box.Anchor()

	if !m.box.IsOpened() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && anchor.Contains(msg.X, msg.Y) {
			m.focused = true
			m.open("")
			return true
		}
		return false
	}
	if m.box.State() != combobox.Open {
		return true
	}

	g := m.box.Geometry()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if g.Frame.Contains(msg.X, msg.Y) {
			m.moveBy(-1)
			return true
		}
		return false
	case tea.MouseButtonWheelDown:
		if g.Frame.Contains(msg.X, msg.Y) {
			m.moveBy(1)
			return true
		}
		return false
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return false
		}
	default:
		return false
	}

	switch {
	case g.InToolbar(msg.X, msg.Y):
		if b := m.buttonAt(msg.X - g.Frame.X); b >= 0 {
			m.pressButton(b)
		}
	case g.Frame.Contains(msg.X, msg.Y):
		if row := g.RowAt(msg.X, msg.Y, m.box.Offset(), m.box.RowHeight()); row != combobox.NoSelection {
			m.box.TapRow(row)
		}
	default:
		// A tap anywhere else, the field included, dismisses the picker.
		m.box.Cancel()
	}
	return true
}

// after schedules the animation tick for a transition in flight and
// reports a commit that happened during the update.
func (m *ComboBoxModel) after(commits uint64) tea.Cmd {
	var cmds []tea.Cmd

	if m.box.Commits() != commits {
		sel := ComboBoxSelectedMsg{
			Name:  m.box.Name(),
			Row:   m.box.LastCommitted(),
			Title: m.box.SelectedTitle(),
		}
		cmds = append(cmds, func() tea.Msg { return sel })
	}

	switch m.box.State() {
	case combobox.Opening, combobox.Closing:
		if !m.animating {
			m.animating = true
			m.seq++
			id, seq := m.id, m.seq
			cmds = append(cmds, tea.Tick(m.box.Config().TransitionDuration, func(time.Time) tea.Msg {
				return transitionDoneMsg{ID: id, Seq: seq}
			}))
		}
	case combobox.Closed:
		m.query = ""
		m.toolbarFocus = false
	}

	return tea.Batch(cmds...)
}

// View implements Component. It renders the field only; the host draws
// OverlayView on top of the screen at the overlay's frame.
func (m *ComboBoxModel) View() string {
	cfg := m.box.Config()

	icon := cfg.Icon
	if m.box.IsOpened() && icon == "▾" {
		icon = "▴"
	}
	iconWidth := lipgloss.Width(icon)
	textWidth := m.width - iconWidth - 2
	if textWidth < 1 {
		textWidth = 1
	}

	var text string
	if m.box.SelectedIndex() != combobox.NoSelection {
		text = utils.PadRight(utils.TruncateString(m.box.SelectedTitle(), textWidth), textWidth)
	} else {
		text = styles.FieldPlaceholder.Render(utils.PadRight(utils.TruncateString(cfg.Placeholder, textWidth), textWidth))
	}

	style := styles.Field
	switch {
	case m.box.IsOpened():
		style = styles.FieldOpen
	case m.focused:
		style = styles.FieldFocused
	}
	return style.Width(m.width).Render(" " + text + " " + styles.FieldIcon.Render(icon))
}

// OverlayView renders the picker rows and the toolbar, sized to the
// overlay frame. It returns "" while the overlay does not exist.
func (m *ComboBoxModel) OverlayView() string {
	if !m.box.IsOpened() {
		return ""
	}
	g := m.box.Geometry()
	if g.Frame.Empty() {
		return ""
	}

	rowHeight := m.box.RowHeight()
	innerWidth := max(g.Frame.Width-1, 1)
	slots := m.box.VisibleRows()
	total := m.box.RowCount()
	offset := m.box.Offset()

	var lines []string
	for i, slot := range slots {
		block := utils.FitLines(slot.View.Render(innerWidth, slot.Highlighted), rowHeight)

		marker := " "
		switch {
		case i == 0 && offset > 0:
			marker = "▲"
		case i == len(slots)-1 && offset+len(slots) < total:
			marker = "▼"
		}

		style := styles.Row
		if slot.Highlighted {
			style = styles.RowHighlighted
		}
		for j, line := range strings.Split(block, "\n") {
			mark := " "
			if j == 0 {
				mark = marker
			}
			lines = append(lines, style.Width(innerWidth).MaxWidth(innerWidth).Render(line)+styles.ScrollIndicator.Render(mark))
		}
	}

	rowArea := g.Height
	if g.HasToolbar {
		rowArea -= combobox.ToolbarHeight
	}
	for len(lines) < rowArea {
		lines = append(lines, styles.Row.Width(g.Frame.Width).Render(""))
	}
	if len(lines) > rowArea {
		lines = lines[:rowArea]
	}

	if g.HasToolbar {
		lines = append(lines, m.toolbarView(g.Frame.Width))
	}

	out := strings.Join(lines, "\n")
	if m.box.State() != combobox.Open {
		out = lipgloss.NewStyle().Faint(true).Render(out)
	}
	return out
}

func (m *ComboBoxModel) toolbarView(width int) string {
	var buttons []string
	for i, label := range toolbarLabels {
		style := styles.ToolbarButton
		if m.toolbarFocus && m.button == i {
			style = styles.ToolbarButtonFocused
		}
		buttons = append(buttons, style.Render(label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	if m.query != "" {
		bar = styles.Toolbar.Render(" /"+m.query+" ") + bar
	}
	return styles.Toolbar.Width(width).MaxWidth(width).Align(lipgloss.Right).Render(bar)
}

// buttonAt maps a column inside the overlay to a toolbar button, or -1.
func (m *ComboBoxModel) buttonAt(col int) int {
	g := m.box.Geometry()
	widths := make([]int, len(toolbarLabels))
	total := 0
	for i, label := range toolbarLabels {
		widths[i] = lipgloss.Width(label) + 2
		total += widths[i]
	}
	x := g.Frame.Width - total
	for i, w := range widths {
		if col >= x && col < x+w {
			return i
		}
		x += w
	}
	return -1
}

// Query returns the current type-ahead text.
func (m *ComboBoxModel) Query() string {
	return m.query
}
