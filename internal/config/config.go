// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hy4ri/combobox-tui/internal/combobox"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	UI     UIConfig      `yaml:"ui"`
	Fields []FieldConfig `yaml:"fields"`
}

// UIConfig holds UI-related settings shared by every field.
type UIConfig struct {
	// Animate enables the show/hide transition of the picker.
	Animate bool `yaml:"animate"`
	// TransitionMS is the transition length in milliseconds.
	TransitionMS int `yaml:"transition_ms,omitempty"`
	// MaxPickerHeight caps the picker height in rows, toolbar included.
	MaxPickerHeight int `yaml:"max_picker_height,omitempty"`
	// Notify sends a desktop notification for every selection.
	Notify bool `yaml:"notify"`
	// Mouse enables mouse support.
	Mouse bool `yaml:"mouse"`
}

// FieldConfig describes one combo box of the form.
type FieldConfig struct {
	Name            string `yaml:"name"`
	Label           string `yaml:"label,omitempty"`
	Placeholder     string `yaml:"placeholder,omitempty"`
	Icon            string `yaml:"icon,omitempty"`
	ValidateButton  bool   `yaml:"validate_button,omitempty"`
	EmulateKeyboard bool   `yaml:"emulate_keyboard,omitempty"`
	TapCommit       string `yaml:"tap_commit,omitempty"` // "auto", "always" or "never"
	Width           int    `yaml:"width,omitempty"`

	// Rows is an inline row list. Ignored when Source is set.
	Rows   []string      `yaml:"rows,omitempty"`
	Source *SourceConfig `yaml:"source,omitempty"`
}

// SourceConfig points a field at an external row list.
type SourceConfig struct {
	// File is a text file with one row per line.
	File string `yaml:"file,omitempty"`

	// URL is a JSON endpoint.
	URL         string `yaml:"url,omitempty"`
	TitleField  string `yaml:"title_field,omitempty"`
	IDField     string `yaml:"id_field,omitempty"`
	DetailField string `yaml:"detail_field,omitempty"`
	// Auth sends the stored source token as a bearer token.
	Auth bool `yaml:"auth,omitempty"`
}

// DefaultTransition is used when animation is on and no length is given.
const DefaultTransition = 120 * time.Millisecond

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Animate:         true,
			TransitionMS:    int(DefaultTransition / time.Millisecond),
			MaxPickerHeight: combobox.DefaultMaxPickerHeight,
			Mouse:           true,
		},
		Fields: []FieldConfig{
			{
				Name:        "priority",
				Label:       "Priority",
				Placeholder: "Pick a priority",
				Rows:        []string{"Low", "Medium", "High", "Urgent"},
			},
			{
				Name:            "color",
				Label:           "Color",
				Placeholder:     "Type to search",
				EmulateKeyboard: true,
				Rows: []string{
					"Berry Red", "Red", "Orange", "Yellow", "Olive Green",
					"Lime Green", "Green", "Mint Green", "Teal", "Sky Blue",
					"Light Blue", "Blue", "Grape", "Violet", "Lavender",
					"Magenta", "Salmon", "Charcoal", "Grey", "Taupe",
				},
			},
			{
				Name:           "reminder",
				Label:          "Reminder",
				Placeholder:    "None",
				ValidateButton: true,
				Rows: []string{
					"At time of event", "5 minutes before", "10 minutes before",
					"30 minutes before", "1 hour before", "1 day before",
				},
			},
		},
	}
}

// Transition returns the picker transition length, zero when animation is
// off.
func (c *Config) Transition() time.Duration {
	if !c.UI.Animate {
		return 0
	}
	if c.UI.TransitionMS <= 0 {
		return DefaultTransition
	}
	return time.Duration(c.UI.TransitionMS) * time.Millisecond
}

// ComboConfig builds the control settings of field f.
func (c *Config) ComboConfig(f FieldConfig) combobox.Config {
	cfg := combobox.DefaultConfig()
	if f.Icon != "" {
		cfg.Icon = f.Icon
	}
	cfg.Placeholder = f.Placeholder
	cfg.ValidateButton = f.ValidateButton
	cfg.EmulateKeyboard = f.EmulateKeyboard
	cfg.TapCommit = combobox.TapCommitMode(f.TapCommit)
	cfg.MaxPickerHeight = c.UI.MaxPickerHeight
	cfg.TransitionDuration = c.Transition()
	cfg.Width = f.Width
	return cfg.Normalize()
}

// Validate reports configuration mistakes.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("field %d: name is required", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("field %q: duplicate name", f.Name)
		}
		seen[f.Name] = true

		switch combobox.TapCommitMode(f.TapCommit) {
		case "", combobox.TapCommitAuto, combobox.TapCommitAlways, combobox.TapCommitNever:
		default:
			return fmt.Errorf("field %q: unknown tap_commit %q", f.Name, f.TapCommit)
		}

		if f.Source != nil && f.Source.File != "" && f.Source.URL != "" {
			return fmt.Errorf("field %q: source needs either file or url, not both", f.Name)
		}
	}
	return nil
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "combobox-tui")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// A fields list in the file replaces the demo fields as a whole.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to path.
func SaveTo(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(ExpandPath(path), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExpandPath replaces a leading "~/" with the home directory.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
