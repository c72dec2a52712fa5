package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/combobox-tui/internal/combobox"
	"github.com/hy4ri/combobox-tui/internal/source"
	"github.com/mattn/go-runewidth"
)

// detailRow is a two-line picker row: the title and a faint detail.
type detailRow struct {
	title  string
	detail string
}

var detailStyle = lipgloss.NewStyle().Faint(true)

// Render implements combobox.RowView.
func (r *detailRow) Render(width int, highlighted bool) string {
	if width <= 0 {
		return "\n"
	}
	title := runewidth.FillRight(runewidth.Truncate(r.title, width, "…"), width)
	detail := runewidth.FillRight(runewidth.Truncate("  "+r.detail, width, "…"), width)
	if !highlighted {
		detail = detailStyle.Render(detail)
	}
	return title + "\n" + detail
}

// fieldDelegate answers a combo box's content queries from its field's
// row list.
type fieldDelegate struct {
	app   *App
	field *field
}

// DidSelectRow implements combobox.HostDelegate.
func (d fieldDelegate) DidSelectRow(cb *combobox.ComboBox, row int) {
	r, _ := d.field.list.Row(row)
	d.field.value = r
	d.app.logger.Debug("row selected", "field", cb.Name(), "row", row, "id", r.ID)
}

// TitleForRow implements combobox.HostDelegate.
func (d fieldDelegate) TitleForRow(_ *combobox.ComboBox, row int) string {
	return d.field.list.Title(row)
}

// ViewForRow implements combobox.HostDelegate. Rows without a detail use
// the default title view.
func (d fieldDelegate) ViewForRow(_ *combobox.ComboBox, row int, reusable combobox.RowView) combobox.RowView {
	if !d.field.detailed {
		return nil
	}
	r, _ := d.field.list.Row(row)
	v, ok := reusable.(*detailRow)
	if !ok {
		v = &detailRow{}
	}
	v.title, v.detail = r.Title, r.Detail
	return v
}

// RowHeight implements combobox.HostDelegate.
func (d fieldDelegate) RowHeight(*combobox.ComboBox) int {
	if d.field.detailed {
		return 2
	}
	return 1
}

// hasDetail reports whether any row carries a detail line.
func hasDetail(rows []source.Row) bool {
	for _, r := range rows {
		if r.Detail != "" {
			return true
		}
	}
	return false
}
