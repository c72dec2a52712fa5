package combobox

import (
	"fmt"
	"testing"
)

// fakeHost implements both RowProvider and HostDelegate.
type fakeHost struct {
	rows     []string
	height   int
	gone     bool
	selected []int
	custom   bool
	reused   int
}

func newFakeHost(n int) *fakeHost {
	h := &fakeHost{}
	for i := 0; i < n; i++ {
		h.rows = append(h.rows, fmt.Sprintf("row %d", i))
	}
	return h
}

func (h *fakeHost) Available() bool { return !h.gone }

func (h *fakeHost) RowCount(*ComboBox) int { return len(h.rows) }

func (h *fakeHost) DidSelectRow(_ *ComboBox, row int) {
	h.selected = append(h.selected, row)
}

func (h *fakeHost) TitleForRow(_ *ComboBox, row int) string {
	if row < 0 || row >= len(h.rows) {
		return ""
	}
	return h.rows[row]
}

type labelView struct {
	text string
}

func (v *labelView) Render(width int, highlighted bool) string {
	if highlighted {
		return "> " + v.text
	}
	return "  " + v.text
}

func (h *fakeHost) ViewForRow(_ *ComboBox, row int, reusable RowView) RowView {
	if !h.custom {
		return nil
	}
	if v, ok := reusable.(*labelView); ok {
		h.reused++
		v.text = h.rows[row]
		return v
	}
	return &labelView{text: h.rows[row]}
}

func (h *fakeHost) RowHeight(*ComboBox) int { return h.height }

// recorder collects every event it sees.
type recorder struct {
	events []EventKind
}

func (r *recorder) HandleComboBoxEvent(ev Event) {
	r.events = append(r.events, ev.Kind)
}

func newBox(t testing.TB, host *fakeHost, cfg Config) (*ComboBox, *recorder) {
	t.Helper()
	cb := New("test", cfg)
	cb.SetDataSource(host)
	cb.SetDelegate(host)
	cb.SetAnchor(Rect{X: 0, Y: 0, Width: 20, Height: 1})
	rec := &recorder{}
	cb.Subscribe(rec)
	return cb, rec
}
