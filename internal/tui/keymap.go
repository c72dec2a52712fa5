// Package tui provides the demo host: a form of combo boxes with an event
// log of every notification they post.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keymap contains the application-level key bindings. Field and picker
// bindings live in components.ComboKeyMap.
type Keymap struct {
	NextField key.Binding
	PrevField key.Binding
	Copy      key.Binding
	Reload    key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeymap returns the default bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		NextField: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field")),
		PrevField: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous field")),
		Copy:      key.NewBinding(key.WithKeys("y", "ctrl+y"), key.WithHelp("y", "copy selection")),
		Reload:    key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reload rows")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear log")),
		Help:      key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField},
		{k.Copy, k.Reload, k.Clear, k.Help, k.Quit},
	}
}

// isTyping reports whether msg is printable text. Fields that emulate a
// keyboard take such keys before the application does.
func isTyping(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes && !msg.Alt
}
