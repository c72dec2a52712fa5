package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/combobox-tui/internal/combobox"
	"github.com/hy4ri/combobox-tui/internal/config"
	"github.com/hy4ri/combobox-tui/internal/source"
	"github.com/hy4ri/combobox-tui/internal/tui/components"
)

// field is one labelled combo box of the form with the rows behind it.
type field struct {
	cfg   config.FieldConfig
	box   *combobox.ComboBox
	combo *components.ComboBoxModel
	list  *source.List

	// loader is nil for inline rows.
	loader  source.Loader
	loading bool
	err     error

	// detailed switches the picker to two-line rows.
	detailed bool
	value    source.Row
	sub      combobox.Subscription
}

// newField builds the combo box of fc and wires it to a. token is sent to
// remote sources that ask for it.
func newField(a *App, fc config.FieldConfig, token string) *field {
	f := &field{
		cfg:  fc,
		list: source.NewList(),
	}

	switch {
	case fc.Source != nil && fc.Source.File != "":
		f.loader = source.File{Path: config.ExpandPath(fc.Source.File)}
	case fc.Source != nil && fc.Source.URL != "":
		tok := ""
		if fc.Source.Auth {
			tok = token
		}
		remote := source.NewRemote(fc.Source.URL, tok)
		if fc.Source.TitleField != "" {
			remote.TitleField = fc.Source.TitleField
		}
		if fc.Source.IDField != "" {
			remote.IDField = fc.Source.IDField
		}
		remote.DetailField = fc.Source.DetailField
		f.loader = remote
	default:
		f.setRows(source.Rows(fc.Rows...))
	}

	f.box = combobox.New(fc.Name, a.config.ComboConfig(fc))
	f.box.SetDataSource(f.list)
	f.box.SetDelegate(fieldDelegate{app: a, field: f})
	f.sub = f.box.Subscribe(combobox.ObserverFunc(a.recordEvent))

	f.combo = components.NewComboBox(f.box)
	return f
}

func (f *field) label() string {
	if f.cfg.Label != "" {
		return f.cfg.Label
	}
	return f.cfg.Name
}

// setRows swaps the row list. The chosen row stays selected when it moved
// and is cleared when its ID is gone.
func (f *field) setRows(rows []source.Row) {
	f.list.SetRows(rows)
	f.detailed = hasDetail(rows)
	if f.box == nil {
		return
	}
	if f.value.ID != "" {
		switch i := f.list.Index(f.value.ID); {
		case i == combobox.NoSelection:
			_ = f.box.SetSelectedIndex(combobox.NoSelection)
			f.value = source.Row{}
		case i != f.box.SelectedIndex():
			_ = f.box.SetSelectedIndex(i)
		}
	}
	if f.box.State() == combobox.Open {
		f.box.NotifyFrameChange(f.box.Anchor())
	}
}

// rowsLoadedMsg carries the result of a loader run.
type rowsLoadedMsg struct {
	field string
	rows  []source.Row
	err   error
}

func loadRowsCmd(name string, loader source.Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), source.DefaultTimeout)
		defer cancel()
		rows, err := loader.Load(ctx)
		return rowsLoadedMsg{field: name, rows: rows, err: err}
	}
}

// load starts the loader of f, if any.
func (f *field) load() tea.Cmd {
	if f.loader == nil {
		return nil
	}
	f.loading = true
	f.err = nil
	return loadRowsCmd(f.cfg.Name, f.loader)
}
