package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/combobox-tui/internal/tui/components"
)

// statusMsg sets the status line.
type statusMsg struct {
	msg string
	err error
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case spinner.TickMsg:
		if !a.loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case rowsLoadedMsg:
		return a.handleRowsLoaded(msg)

	case components.ComboBoxSelectedMsg:
		return a.handleSelected(msg)

	case components.FocusNextMsg:
		delta := 1
		if msg.Reverse {
			delta = -1
		}
		return a, a.setFocus(a.focus + delta)

	case components.HelpClosedMsg:
		a.showHelp = false
		return a, nil

	case statusMsg:
		a.statusMsg = msg.msg
		a.err = msg.err
		return a, nil
	}

	// Animation ticks and anything else the widgets understand.
	var cmds []tea.Cmd
	for _, f := range a.fields {
		cmds = append(cmds, a.updateField(f, msg))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) updateField(f *field, msg tea.Msg) tea.Cmd {
	_, cmd := f.combo.Update(msg)
	return cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.ForceQuit) {
		return a, tea.Quit
	}

	if a.showHelp {
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}

	f := a.focused()
	if f == nil {
		if key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	// An open picker owns the keyboard, and so does a field that takes
	// typed text.
	if f.box.IsOpened() || (f.box.Config().EmulateKeyboard && isTyping(msg)) {
		return a, a.updateField(f, msg)
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = true
		a.helpComp.SetSize(a.width, a.height)
		return a, nil
	case key.Matches(msg, a.keymap.NextField):
		return a, a.setFocus(a.focus + 1)
	case key.Matches(msg, a.keymap.PrevField):
		return a, a.setFocus(a.focus - 1)
	case key.Matches(msg, a.keymap.Copy):
		return a, a.copySelection(f)
	case key.Matches(msg, a.keymap.Reload):
		return a, a.reload(f)
	case key.Matches(msg, a.keymap.Clear):
		a.events = nil
		a.refreshEventLog()
		return a, nil
	}

	return a, a.updateField(f, msg)
}

func (a *App) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		return a, nil
	}

	// Clicks anywhere belong to the open picker: outside it they dismiss.
	if open := a.openField(); open != nil {
		return a, a.updateField(open, msg)
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		for i, f := range a.fields {
			if f.box.Anchor().Contains(msg.X, msg.Y) {
				return a, tea.Batch(a.setFocus(i), a.updateField(f, msg))
			}
		}
	}

	var cmd tea.Cmd
	a.eventLog, cmd = a.eventLog.Update(msg)
	return a, cmd
}

func (a *App) handleRowsLoaded(msg rowsLoadedMsg) (tea.Model, tea.Cmd) {
	f := a.fieldByName(msg.field)
	if f == nil {
		return a, nil
	}
	f.loading = false

	if msg.err != nil {
		f.err = msg.err
		a.err = msg.err
		a.statusMsg = fmt.Sprintf("Failed to load %s: %v", f.label(), msg.err)
		a.logger.Warn("row source failed", "field", f.cfg.Name, "err", msg.err)
		return a, nil
	}

	f.err = nil
	f.setRows(msg.rows)
	a.err = nil
	a.statusMsg = fmt.Sprintf("Loaded %d rows for %s", len(msg.rows), f.label())
	a.logger.Debug("rows loaded", "field", f.cfg.Name, "count", len(msg.rows))
	return a, nil
}

func (a *App) handleSelected(msg components.ComboBoxSelectedMsg) (tea.Model, tea.Cmd) {
	label := msg.Name
	if f := a.fieldByName(msg.Name); f != nil {
		label = f.label()
	}
	a.err = nil
	a.statusMsg = fmt.Sprintf("%s: %s", label, msg.Title)

	if !a.config.UI.Notify {
		return a, nil
	}
	notify := a.notify
	return a, func() tea.Msg {
		if err := notify(label, msg.Title); err != nil {
			return statusMsg{msg: "Notification failed: " + err.Error(), err: err}
		}
		return nil
	}
}

// copySelection copies the focused field's value to the clipboard.
func (a *App) copySelection(f *field) tea.Cmd {
	title := f.box.SelectedTitle()
	if title == "" {
		a.statusMsg = "Nothing selected"
		return nil
	}
	copyText := a.copyText
	return func() tea.Msg {
		if err := copyText(title); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error(), err: err}
		}
		return statusMsg{msg: "Copied: " + title}
	}
}

// reload runs the field's loader again.
func (a *App) reload(f *field) tea.Cmd {
	if f.loader == nil {
		a.statusMsg = f.label() + " has inline rows"
		return nil
	}
	a.statusMsg = "Reloading " + f.label() + "..."
	return tea.Batch(f.load(), a.spinner.Tick)
}

func (a *App) loading() bool {
	for _, f := range a.fields {
		if f.loading {
			return true
		}
	}
	return false
}
