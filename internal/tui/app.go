package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/combobox-tui/internal/combobox"
	"github.com/hy4ri/combobox-tui/internal/config"
	"github.com/hy4ri/combobox-tui/internal/tui/components"
	"github.com/hy4ri/combobox-tui/internal/tui/styles"
)

// maxEvents caps the event log.
const maxEvents = 200

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config *config.Config
	logger *slog.Logger

	// Form state
	fields []*field
	focus  int

	// Event log
	events   []string
	eventLog viewport.Model

	// UI state
	width     int
	height    int
	statusMsg string
	err       error
	showHelp  bool

	// Components
	spinner  spinner.Model
	help     help.Model
	helpComp *components.HelpModel
	keymap   Keymap

	// Side effects, replaced in tests.
	notify   func(title, message string) error
	copyText func(text string) error
	now      func() time.Time
}

// NewApp creates a new App instance. token is sent to remote row sources
// configured with auth.
func NewApp(cfg *config.Config, token string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	vp := viewport.New(40, 5)
	vp.MouseWheelEnabled = true

	a := &App{
		config:   cfg,
		logger:   logger,
		eventLog: vp,
		spinner:  s,
		help:     help.New(),
		keymap:   DefaultKeymap(),
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		copyText: clipboard.WriteAll,
		now:      time.Now,
	}

	for _, fc := range cfg.Fields {
		a.fields = append(a.fields, newField(a, fc, token))
	}

	comboKeys := components.DefaultComboKeyMap()
	a.helpComp = components.NewHelp(
		components.HelpSection{Title: "Form", Bindings: []key.Binding{
			a.keymap.NextField, a.keymap.PrevField, comboKeys.Open,
		}},
		components.HelpSection{Title: "Picker", Bindings: []key.Binding{
			comboKeys.Up, comboKeys.Down, comboKeys.PageUp, comboKeys.PageDown,
			comboKeys.First, comboKeys.Last, comboKeys.Tap, comboKeys.Validate,
			comboKeys.Cancel, comboKeys.Toolbar, comboKeys.Erase,
		}},
		components.HelpSection{Title: "General", Bindings: []key.Binding{
			a.keymap.Copy, a.keymap.Reload, a.keymap.Clear, a.keymap.Help, a.keymap.Quit,
		}},
	)

	if len(a.fields) > 0 {
		a.fields[0].combo.Focus()
	}
	a.layout()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick}
	for _, f := range a.fields {
		cmds = append(cmds, f.load())
	}
	return tea.Batch(cmds...)
}

// Close detaches every field from its combo box.
func (a *App) Close() {
	for _, f := range a.fields {
		f.box.Unsubscribe(f.sub)
		f.list.Close()
	}
}

// focused returns the focused field, or nil for an empty form.
func (a *App) focused() *field {
	if a.focus < 0 || a.focus >= len(a.fields) {
		return nil
	}
	return a.fields[a.focus]
}

// openField returns the field whose picker is shown, or nil.
func (a *App) openField() *field {
	for _, f := range a.fields {
		if f.box.IsOpened() {
			return f
		}
	}
	return nil
}

func (a *App) fieldByName(name string) *field {
	for _, f := range a.fields {
		if f.cfg.Name == name {
			return f
		}
	}
	return nil
}

// setFocus moves keyboard focus to field i.
func (a *App) setFocus(i int) tea.Cmd {
	if len(a.fields) == 0 {
		return nil
	}
	i = (i%len(a.fields) + len(a.fields)) % len(a.fields)
	var cmd tea.Cmd
	if cur := a.focused(); cur != nil && i != a.focus {
		cmd = cur.combo.Dismiss()
		cur.combo.Blur()
	}
	a.focus = i
	a.fields[i].combo.Focus()
	return cmd
}

// recordEvent appends a combo box notification to the event log.
func (a *App) recordEvent(ev combobox.Event) {
	line := fmt.Sprintf("%s %-10s %s",
		a.now().Format("15:04:05"),
		ev.Source.Name(),
		styles.EventKind.Render(fmt.Sprintf("%-16s", ev.Kind)),
	)
	if ev.Kind != combobox.DidHide {
		f := ev.Frame
		line += fmt.Sprintf(" %dx%d at %d,%d", f.Width, f.Height, f.X, f.Y)
	}
	a.events = append(a.events, line)
	if len(a.events) > maxEvents {
		a.events = a.events[len(a.events)-maxEvents:]
	}
	a.logger.Debug("combobox event", "field", ev.Source.Name(), "kind", ev.Kind.String(), "frame", ev.Frame)
	a.refreshEventLog()
}

func (a *App) refreshEventLog() {
	a.eventLog.SetContent(strings.Join(a.events, "\n"))
	a.eventLog.GotoBottom()
}

// Events returns the logged notifications, oldest first.
func (a *App) Events() []string {
	return a.events
}
