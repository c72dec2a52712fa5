// Package main is the entry point for the combo box demo.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/combobox-tui/internal/combobox"
	"github.com/hy4ri/combobox-tui/internal/config"
	"github.com/hy4ri/combobox-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `combobox-demo - Terminal combo box playground

USAGE:
    combobox-demo [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --config PATH       Read the config from PATH
    --debug             Write a debug log to debug.log
    --animate           Force the picker transition on (or off with --animate=false)
    --set-token         Read a remote source token from stdin and store it

CONFIGURATION:
    Config file: ~/.config/combobox-tui/config.yaml
    Token:       $COMBOBOX_TOKEN, the system keyring, or
                 ~/.local/share/combobox-tui/.credentials

KEYBINDINGS:
    Form:
        ↓/j  ↑/k    Next/previous field
        Tab         Next field
        Enter       Open the picker

    Picker:
        ↑/↓         Move the highlight
        PgUp/PgDn   Page up/down
        Home/End    First/last row
        Enter       Choose the highlighted row
        Ctrl+s      Validate
        Esc         Cancel
        Tab         Toolbar buttons
        letters     Jump to a matching row

    Other:
        y           Copy the field value
        r           Reload rows
        Ctrl+l      Clear the event log
        ?           Show help
        q           Quit
`

const configTemplate = `# Combo box demo configuration
# Location: ~/.config/combobox-tui/config.yaml

ui:
  # Animate the picker show/hide transition
  animate: true
  transition_ms: 120
  # Picker height cap in rows, toolbar included
  max_picker_height: 8
  # Desktop notification on every selection
  notify: false
  mouse: true

fields:
  - name: priority
    label: Priority
    placeholder: Pick a priority
    rows: [Low, Medium, High, Urgent]

  - name: reminder
    label: Reminder
    placeholder: None
    # Adds Cancel/Validate buttons; a row tap then only highlights
    validate_button: true
    rows:
      - At time of event
      - 10 minutes before
      - 1 hour before

  # - name: project
  #   label: Project
  #   # Letters open the picker and jump to a match
  #   emulate_keyboard: true
  #   # "auto", "always" or "never"
  #   tap_commit: auto
  #   source:
  #     # One row per line, optionally "id<TAB>title<TAB>detail"
  #     file: ~/projects.txt
  #     # or a JSON endpoint
  #     # url: https://example.com/api/projects
  #     # title_field: name
  #     # id_field: id
  #     # detail_field: description
  #     # auth: true
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		configPath  string
		debug       bool
		setToken    bool
		animate     optionalBool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.BoolVar(&debug, "debug", false, "Write debug.log")
	flag.BoolVar(&setToken, "set-token", false, "Store a remote source token")
	flag.Var(&animate, "animate", "Animate the picker")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("combobox-demo version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate(configPath)
	}

	if setToken {
		return storeToken()
	}

	logger, closeLog, err := newLogger(debug)
	if err != nil {
		return err
	}
	defer closeLog()

	return runApp(configPath, animate, logger)
}

// optionalBool is a bool flag that remembers whether it was given.
type optionalBool struct {
	set   bool
	value bool
}

func (b *optionalBool) String() string {
	return fmt.Sprint(b.value)
}

func (b *optionalBool) Set(s string) error {
	switch s {
	case "true", "1", "yes":
		b.value = true
	case "false", "0", "no":
		b.value = false
	default:
		return fmt.Errorf("invalid boolean %q", s)
	}
	b.set = true
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }

// newLogger returns a logger writing to debug.log when debug is set and
// discarding everything otherwise.
func newLogger(debug bool) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile("debug.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(path string) error {
	if path == "" {
		var err error
		path, err = config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}
	path = config.ExpandPath(path)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit the fields in the config file")
	fmt.Println("  2. Run 'combobox-demo' to try them")

	return nil
}

// storeToken saves the token read from stdin.
func storeToken() error {
	store, err := config.DefaultTokenStore()
	if err != nil {
		return err
	}

	fmt.Print("Token: ")
	var token string
	if _, err := fmt.Scanln(&token); err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	if err := store.Save(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	fmt.Println("Token saved.")
	return nil
}

// runApp starts the TUI.
func runApp(configPath string, animate optionalBool, logger *slog.Logger) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if animate.set {
		cfg.UI.Animate = animate.value
	}

	token := ""
	if store, err := config.DefaultTokenStore(); err == nil {
		token, err = store.Get()
		if err != nil {
			// Non-fatal: remote sources will report the auth failure
			logger.Warn("failed to read token", "err", err)
		}
	}

	combobox.SetLogger(logger)
	logger.Debug("starting", "fields", len(cfg.Fields), "animate", cfg.UI.Animate)

	app := tui.NewApp(cfg, token, logger)
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app, opts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
