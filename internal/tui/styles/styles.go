// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for focused and highlighted items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#B083FF"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}

	surface = lipgloss.AdaptiveColor{Light: "#F4F4F4", Dark: "#1E1E1E"}
	raised  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#2A2A2A"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Field styles. Fields are a single line: no borders, so the field's frame
// is exactly one row tall.
var (
	// Field is an unfocused combo box field
	Field = lipgloss.NewStyle().
		Background(surface)

	// FieldFocused is the field that receives keys
	FieldFocused = lipgloss.NewStyle().
			Background(raised).
			Underline(true)

	// FieldOpen is the field while its overlay is shown
	FieldOpen = lipgloss.NewStyle().
			Background(raised).
			Foreground(Highlight).
			Bold(true)

	// FieldPlaceholder is the placeholder text
	FieldPlaceholder = lipgloss.NewStyle().
				Foreground(Subtle).
				Italic(true)

	// FieldIcon is the trailing icon
	FieldIcon = lipgloss.NewStyle().
			Foreground(Highlight)

	// FieldLabel is the label drawn left of a field
	FieldLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Overlay styles
var (
	// Row is a picker row
	Row = lipgloss.NewStyle().
		Background(raised)

	// RowHighlighted is the picker row that Confirm would commit
	RowHighlighted = lipgloss.NewStyle().
			Background(Highlight).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#111111"}).
			Bold(true)

	// Toolbar is the toolbar line under the rows
	Toolbar = lipgloss.NewStyle().
		Background(surface).
		Foreground(Subtle)

	// ToolbarButton is an unfocused toolbar button
	ToolbarButton = lipgloss.NewStyle().
			Background(surface).
			Foreground(Subtle).
			Padding(0, 1)

	// ToolbarButtonFocused is the toolbar button that enter activates
	ToolbarButtonFocused = lipgloss.NewStyle().
				Background(Highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#111111"}).
				Bold(true).
				Padding(0, 1)

	// ScrollIndicator marks rows hidden above or below
	ScrollIndicator = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(raised)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Panel styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// EventLog is the panel listing combo box notifications
	EventLog = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	// EventKind colors the event name in the log
	EventKind = lipgloss.NewStyle().
			Foreground(WarningColor)

	// Spinner is the loading indicator for remote rows
	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)

	// SectionHeader heads a group in the help dialog
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)
)
