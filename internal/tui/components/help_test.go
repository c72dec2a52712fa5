package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHelpModel(t *testing.T) {
	keys := DefaultComboKeyMap()
	h := NewHelp(
		HelpSection{Title: "Field", Bindings: []key.Binding{keys.Open}},
		HelpSection{Title: "Picker", Bindings: []key.Binding{keys.Up, keys.Validate}},
	)
	h.SetSize(100, 30)

	view := h.View()
	for _, want := range []string{"Field", "Picker", "open", "validate", "ctrl+s"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should close the help")
	}
	if _, ok := cmd().(HelpClosedMsg); !ok {
		t.Error("expected HelpClosedMsg")
	}

	_, cmd = h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("other keys should be ignored")
	}

	if !strings.Contains(NewHelp().View(), "No keybindings") {
		t.Error("empty help should say so")
	}
}
