package combobox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTapRow_CommitModes(t *testing.T) {
	tests := []struct {
		name       string
		validate   bool
		mode       TapCommitMode
		wantClosed bool
	}{
		{name: "auto without toolbar commits", validate: false, mode: TapCommitAuto, wantClosed: true},
		{name: "auto with toolbar highlights", validate: true, mode: TapCommitAuto, wantClosed: false},
		{name: "always with toolbar commits", validate: true, mode: TapCommitAlways, wantClosed: true},
		{name: "never without toolbar highlights", validate: false, mode: TapCommitNever, wantClosed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ValidateButton = tt.validate
			cfg.TapCommit = tt.mode
			host := newFakeHost(5)
			cb, _ := newBox(t, host, cfg)

			cb.Activate()
			cb.TapRow(2)

			if tt.wantClosed {
				assert.Equal(t, Closed, cb.State())
				assert.Equal(t, 2, cb.SelectedIndex())
				assert.Equal(t, []int{2}, host.selected)
				return
			}
			assert.Equal(t, Open, cb.State())
			assert.Equal(t, 2, cb.Highlighted())
			assert.Equal(t, NoSelection, cb.SelectedIndex())

			cb.Confirm()
			assert.Equal(t, 2, cb.SelectedIndex())
			assert.Equal(t, []int{2}, host.selected)
		})
	}
}

func TestTapRow_OutOfRangeIgnored(t *testing.T) {
	host := newFakeHost(3)
	cb, _ := newBox(t, host, DefaultConfig())
	cb.Activate()

	cb.TapRow(7)
	cb.TapRow(-1)

	assert.Equal(t, Open, cb.State())
	assert.Empty(t, host.selected)
}

func TestMoveHighlight(t *testing.T) {
	cb, _ := newBox(t, newFakeHost(12), DefaultConfig())

	cb.MoveHighlight(1)
	assert.Equal(t, NoSelection, cb.Highlighted(), "ignored while closed")

	cb.Activate()
	cb.MoveHighlight(3)
	assert.Equal(t, 3, cb.Highlighted())
	cb.MoveHighlight(-10)
	assert.Equal(t, 0, cb.Highlighted())
	cb.MoveHighlight(cb.PageSize())
	assert.Equal(t, 8, cb.Highlighted())
	assert.Equal(t, 1, cb.Offset())
	cb.HighlightLast()
	assert.Equal(t, 11, cb.Highlighted())
	assert.Equal(t, 4, cb.Offset())
	cb.HighlightFirst()
	assert.Equal(t, 0, cb.Highlighted())
	assert.Equal(t, 0, cb.Offset())
}

func TestJumpTo(t *testing.T) {
	host := &fakeHost{rows: []string{"Apple", "Banana", "Cherry", "Blueberry", "Grape"}}
	cb, _ := newBox(t, host, DefaultConfig())

	assert.False(t, cb.JumpTo("che"), "closed control ignores type-ahead")

	cb.Activate()
	require.True(t, cb.JumpTo("che"))
	assert.Equal(t, 2, cb.Highlighted())
	require.True(t, cb.JumpTo("grp"))
	assert.Equal(t, 4, cb.Highlighted())
	assert.False(t, cb.JumpTo("zzz"))
	assert.Equal(t, 4, cb.Highlighted(), "no match keeps the highlight")
}

func TestVisibleRows_DefaultTextRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPickerHeight = 3
	cb, _ := newBox(t, newFakeHost(10), cfg)
	cb.Activate()
	cb.HighlightRow(4)

	slots := cb.VisibleRows()
	require.Len(t, slots, 3)
	assert.Equal(t, []int{2, 3, 4}, []int{slots[0].Row, slots[1].Row, slots[2].Row})
	assert.True(t, slots[2].Highlighted)
	assert.Equal(t, "row 4", slots[2].Title)

	row, ok := slots[0].View.(*TextRow)
	require.True(t, ok)
	assert.Equal(t, "row 2", strings.TrimSpace(row.Render(10, false)))

	cb.MoveHighlight(1)
	again := cb.VisibleRows()
	assert.Same(t, slots[0].View, again[0].View, "default rows are reused per slot")
	assert.Equal(t, "row 3", again[0].Title)
}

func TestVisibleRows_CustomViewsAreReused(t *testing.T) {
	host := newFakeHost(10)
	host.custom = true
	cfg := DefaultConfig()
	cfg.MaxPickerHeight = 4
	cb, _ := newBox(t, host, cfg)
	cb.Activate()

	first := cb.VisibleRows()
	require.Len(t, first, 4)
	assert.Zero(t, host.reused, "nothing to reuse on the first pass")

	cb.HighlightRow(6)
	second := cb.VisibleRows()
	assert.Equal(t, 4, host.reused)
	assert.Equal(t, "> row 6", second[3].View.Render(20, true))
}

func TestVisibleRows_MissingDelegate(t *testing.T) {
	host := newFakeHost(3)
	cb := New("headless", DefaultConfig())
	cb.SetDataSource(host)
	cb.Activate()

	slots := cb.VisibleRows()
	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.Equal(t, "", s.Title)
		assert.IsType(t, &TextRow{}, s.View)
	}
	assert.Equal(t, DefaultRowHeight, cb.RowHeight())
	assert.Equal(t, "", cb.SelectedTitle())

	cb.Confirm()
	assert.Equal(t, 0, cb.SelectedIndex(), "commit works without a delegate")
}

func TestTextRow_Render(t *testing.T) {
	tests := []struct {
		title string
		width int
		want  string
	}{
		{title: "short", width: 8, want: "short   "},
		{title: "a much longer title", width: 8, want: "a much …"},
		{title: "two\nlines", width: 9, want: "two lines"},
		{title: "none", width: 0, want: ""},
	}
	for _, tt := range tests {
		r := &TextRow{Title: tt.title}
		assert.Equal(t, tt.want, r.Render(tt.width, false), tt.title)
	}
}
