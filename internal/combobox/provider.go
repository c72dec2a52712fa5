package combobox

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RowProvider supplies the number of rows. It plays the datasource role.
type RowProvider interface {
	RowCount(cb *ComboBox) int
}

// HostDelegate supplies row content and receives selection events.
// All methods are called synchronously from the UI goroutine and must not
// call RequestOpen or RequestClose themselves.
type HostDelegate interface {
	DidSelectRow(cb *ComboBox, row int)
	TitleForRow(cb *ComboBox, row int) string
	// ViewForRow may return nil to fall back to the title. reusable is the
	// view previously shown in the same slot, or nil.
	ViewForRow(cb *ComboBox, row int, reusable RowView) RowView
	RowHeight(cb *ComboBox) int
}

// Availability is implemented by collaborators that can go away while the
// combo box still references them.
type Availability interface {
	Available() bool
}

// RowView renders a single row of the picker.
type RowView interface {
	Render(width int, highlighted bool) string
}

// TextRow is the default row view: the title on a single line.
type TextRow struct {
	Title string
}

// Render implements RowView.
func (r *TextRow) Render(width int, highlighted bool) string {
	title := strings.ReplaceAll(r.Title, "\n", " ")
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(title) > width {
		title = runewidth.Truncate(title, width, "…")
	}
	return runewidth.FillRight(title, width)
}

// RowCountFunc adapts a function to RowProvider.
type RowCountFunc func(cb *ComboBox) int

// RowCount implements RowProvider.
func (f RowCountFunc) RowCount(cb *ComboBox) int {
	return f(cb)
}

// DelegateFuncs adapts a set of optional functions to HostDelegate. Missing
// functions fall back to the same defaults as a missing delegate.
type DelegateFuncs struct {
	OnSelect func(cb *ComboBox, row int)
	Title    func(cb *ComboBox, row int) string
	View     func(cb *ComboBox, row int, reusable RowView) RowView
	Height   func(cb *ComboBox) int
}

// DidSelectRow implements HostDelegate.
func (d DelegateFuncs) DidSelectRow(cb *ComboBox, row int) {
	if d.OnSelect != nil {
		d.OnSelect(cb, row)
	}
}

// TitleForRow implements HostDelegate.
func (d DelegateFuncs) TitleForRow(cb *ComboBox, row int) string {
	if d.Title == nil {
		return ""
	}
	return d.Title(cb, row)
}

// ViewForRow implements HostDelegate.
func (d DelegateFuncs) ViewForRow(cb *ComboBox, row int, reusable RowView) RowView {
	if d.View == nil {
		return nil
	}
	return d.View(cb, row, reusable)
}

// RowHeight implements HostDelegate.
func (d DelegateFuncs) RowHeight(cb *ComboBox) int {
	if d.Height == nil {
		return 0
	}
	return d.Height(cb)
}

// DefaultRowHeight is used when the delegate is missing or returns a
// non-positive height.
const DefaultRowHeight = 1

// bridge forwards queries to the host collaborators, treating a nil or
// unavailable collaborator as absent.
type bridge struct {
	provider RowProvider
	delegate HostDelegate
}

func available(v any) bool {
	if v == nil {
		return false
	}
	if a, ok := v.(Availability); ok {
		return a.Available()
	}
	return true
}

func (b *bridge) hasProvider() bool {
	return b.provider != nil && available(b.provider)
}

func (b *bridge) hasDelegate() bool {
	return b.delegate != nil && available(b.delegate)
}

// rowCount returns the provider's count, or -1 when no provider is
// reachable.
func (b *bridge) rowCount(cb *ComboBox) int {
	if !b.hasProvider() {
		return -1
	}
	n := b.provider.RowCount(cb)
	if n < 0 {
		return 0
	}
	return n
}

func (b *bridge) title(cb *ComboBox, row int) string {
	if !b.hasDelegate() {
		return ""
	}
	return b.delegate.TitleForRow(cb, row)
}

func (b *bridge) view(cb *ComboBox, row int, reusable RowView) RowView {
	if !b.hasDelegate() {
		return nil
	}
	return b.delegate.ViewForRow(cb, row, reusable)
}

func (b *bridge) rowHeight(cb *ComboBox) int {
	if !b.hasDelegate() {
		return DefaultRowHeight
	}
	if h := b.delegate.RowHeight(cb); h > 0 {
		return h
	}
	return DefaultRowHeight
}

func (b *bridge) didSelect(cb *ComboBox, row int) {
	if !b.hasDelegate() {
		return
	}
	b.delegate.DidSelectRow(cb, row)
}
