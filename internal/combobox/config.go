package combobox

import "time"

// DefaultMaxPickerHeight is the overlay height cap, toolbar included, used
// when the host does not set one.
const DefaultMaxPickerHeight = 8

// Config holds the host-supplied settings of a combo box.
type Config struct {
	// Icon is drawn at the right edge of the field.
	Icon string
	// Placeholder is shown while nothing is selected.
	Placeholder string
	// ValidateButton adds a toolbar with Cancel and Validate actions.
	ValidateButton bool
	// MaxPickerHeight caps the overlay height in rows, toolbar included.
	MaxPickerHeight int
	// EmulateKeyboard makes any printable key open the overlay, the way a
	// text field would summon a keyboard.
	EmulateKeyboard bool
	// TapCommit decides whether tapping a row commits it.
	TapCommit TapCommitMode
	// TransitionDuration is the show/hide animation length. Zero completes
	// transitions synchronously.
	TransitionDuration time.Duration
	// Width is the field width in cells. Zero lets the host decide.
	Width int
}

// DefaultConfig returns the settings used when none are given.
func DefaultConfig() Config {
	return Config{
		Icon:            "▾",
		MaxPickerHeight: DefaultMaxPickerHeight,
		TapCommit:       TapCommitAuto,
	}
}

// Normalize fills zero values with defaults.
func (c Config) Normalize() Config {
	if c.MaxPickerHeight <= 0 {
		c.MaxPickerHeight = DefaultMaxPickerHeight
	}
	switch c.TapCommit {
	case TapCommitAuto, TapCommitAlways, TapCommitNever:
	default:
		c.TapCommit = TapCommitAuto
	}
	if c.TransitionDuration < 0 {
		c.TransitionDuration = 0
	}
	if c.Width < 0 {
		c.Width = 0
	}
	return c
}

// TapCommits reports whether a row tap commits the row.
func (c Config) TapCommits() bool {
	switch c.TapCommit {
	case TapCommitAlways:
		return true
	case TapCommitNever:
		return false
	default:
		return !c.ValidateButton
	}
}

// Animated reports whether transitions wait for CompleteTransition.
func (c Config) Animated() bool {
	return c.TransitionDuration > 0
}
