package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/combobox-tui/internal/combobox"
	"github.com/hy4ri/combobox-tui/internal/tui/styles"
	"github.com/hy4ri/combobox-tui/internal/tui/utils"
)

// Screen layout, in rows and columns.
const (
	marginLeft  = 2
	formTop     = 2 // title and a blank line
	fieldStride = 2 // a field and a blank line
	footerLines = 2 // status bar and key help
	minLogLines = 3
)

// fieldY returns the screen row of field i.
func fieldY(i int) int {
	return formTop + i*fieldStride
}

func (a *App) labelWidth() int {
	w := 0
	for _, f := range a.fields {
		w = max(w, lipgloss.Width(f.label()))
	}
	return w + 2
}

// layout tells every combo box where its field is drawn and sizes the
// event log. Open pickers follow their field.
func (a *App) layout() {
	x := marginLeft + a.labelWidth()
	for i, f := range a.fields {
		f.combo.SetScreen(a.width, a.height)
		f.combo.SetFrame(x, fieldY(i))
	}

	logTop := fieldY(len(a.fields)) + 1
	frameW, frameH := styles.EventLog.GetFrameSize()
	a.eventLog.Width = max(a.width-marginLeft*2-frameW, 20)
	a.eventLog.Height = max(a.height-logTop-footerLines-frameH, minLogLines)
	a.refreshEventLog()
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	margin := strings.Repeat(" ", marginLeft)
	labelStyle := styles.FieldLabel.Width(a.labelWidth())

	lines := []string{margin + styles.Title.Render("Combo Box Demo"), ""}
	for i, f := range a.fields {
		line := margin + labelStyle.Render(f.label()) + f.combo.View()
		switch {
		case f.loading:
			line += " " + a.spinner.View()
		case f.err != nil:
			line += " " + styles.StatusBarError.Render("!")
		}
		if i == a.focus && !f.box.IsOpened() {
			line += " " + styles.HelpDesc.Render("◂")
		}
		lines = append(lines, line, "")
	}

	for _, l := range strings.Split(styles.EventLog.Render(a.eventLog.View()), "\n") {
		lines = append(lines, margin+l)
	}

	body := utils.FitLines(strings.Join(lines, "\n"), max(a.height-footerLines, 0))
	screen := body + "\n" + a.statusBar() + "\n" + a.helpLine()

	if open := a.openField(); open != nil {
		g := open.box.Geometry()
		screen = utils.PlaceOverlay(g.Frame.X, g.Frame.Y, open.combo.OverlayView(), screen)
	}

	if a.showHelp {
		dialog := a.helpComp.View()
		x := max((a.width-lipgloss.Width(dialog))/2, 0)
		y := max((a.height-lipgloss.Height(dialog))/2, 0)
		screen = utils.PlaceOverlay(x, y, dialog, screen)
	}

	return screen
}

func (a *App) statusBar() string {
	if a.err != nil {
		return styles.StatusBarError.Width(a.width).MaxWidth(a.width).Render(" " + a.statusMsg)
	}
	text := a.statusMsg
	if text == "" {
		text = a.summary()
	}
	return styles.StatusBar.Width(a.width).MaxWidth(a.width).Render(utils.TruncateString(text, max(a.width-2, 0)))
}

// summary lists every field's current value.
func (a *App) summary() string {
	parts := make([]string, 0, len(a.fields))
	for _, f := range a.fields {
		v := "-"
		if f.box.SelectedIndex() != combobox.NoSelection {
			v = f.box.SelectedTitle()
		}
		parts = append(parts, f.cfg.Name+"="+v)
	}
	return strings.Join(parts, "  ")
}

func (a *App) helpLine() string {
	a.help.Width = a.width
	if f := a.openField(); f != nil {
		return " " + a.help.View(f.combo.KeyMap())
	}
	return " " + a.help.View(a.keymap)
}
