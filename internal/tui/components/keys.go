package components

import "github.com/charmbracelet/bubbles/key"

// ComboKeyMap holds the bindings understood by a combo box field.
type ComboKeyMap struct {
	// Closed field
	Open key.Binding

	// Open overlay
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	First    key.Binding
	Last     key.Binding
	Tap      key.Binding
	Validate key.Binding
	Cancel   key.Binding
	Toolbar  key.Binding
	Left     key.Binding
	Right    key.Binding
	Erase    key.Binding
}

// DefaultComboKeyMap returns the default bindings.
func DefaultComboKeyMap() ComboKeyMap {
	return ComboKeyMap{
		Open: key.NewBinding(key.WithKeys("enter", " ", "alt+down"), key.WithHelp("enter", "open")),

		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Tap:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Validate: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "validate")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Toolbar:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "toolbar")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev button")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next button")),
		Erase:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "erase search")),
	}
}

// ShortHelp implements help.KeyMap for the open overlay.
func (k ComboKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tap, k.Validate, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k ComboKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.First, k.Last},
		{k.Tap, k.Validate, k.Cancel, k.Toolbar, k.Left, k.Right, k.Erase},
	}
}
