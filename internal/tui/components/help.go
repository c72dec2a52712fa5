package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/combobox-tui/internal/tui/styles"
)

// HelpClosedMsg is emitted when the help dialog is dismissed.
type HelpClosedMsg struct{}

// HelpSection is a titled group of bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpModel renders the keyboard shortcut dialog. Sections alternate
// between two columns.
type HelpModel struct {
	width, height int
	sections      []HelpSection
}

// NewHelp creates a new HelpModel.
func NewHelp(sections ...HelpSection) *HelpModel {
	return &HelpModel{sections: sections}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q", "f1":
			return h, func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.sections) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var cols [2]strings.Builder
	keyStyle := styles.HelpKey.Width(12).Align(lipgloss.Right).PaddingRight(2)

	for i, section := range h.sections {
		col := &cols[i%2]
		col.WriteString("\n" + styles.SectionHeader.Render(" "+section.Title+" ") + "\n")
		for _, b := range section.Bindings {
			if !b.Enabled() {
				continue
			}
			help := b.Help()
			col.WriteString(keyStyle.Render(help.Key) + styles.HelpDesc.Render(help.Desc) + "\n")
		}
	}

	colWidth := min(max(h.width/3, 24), 40)
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(1).PaddingRight(1)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(cols[0].String()),
		columnStyle.Render(cols[1].String()),
	))
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("Press ESC or ? to close"))

	return styles.Dialog.Render(b.String())
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetSections replaces the help content.
func (h *HelpModel) SetSections(sections ...HelpSection) {
	h.sections = sections
}
