package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "combobox-tui"
	keyringUser    = "source-token"
	credFileName   = ".credentials"

	// TokenEnv overrides the stored remote source token.
	TokenEnv = "COMBOBOX_TOKEN"
)

// ErrEmptyToken is returned when saving a blank token.
var ErrEmptyToken = errors.New("token cannot be empty")

// TokenStore keeps the bearer token sent to remote row sources.
// Lookup order: environment, system keyring, credentials file in Dir.
type TokenStore struct {
	Service string
	User    string
	// Dir holds the fallback credentials file.
	Dir string
}

// DataDir returns the path to the data directory for secure storage.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/combobox-tui/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "combobox-tui"), nil
}

// DefaultTokenStore returns the store used by the demo.
func DefaultTokenStore() (*TokenStore, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return &TokenStore{Service: keyringService, User: keyringUser, Dir: dir}, nil
}

func (s *TokenStore) credPath() (string, error) {
	if err := os.MkdirAll(s.Dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return filepath.Join(s.Dir, credFileName), nil
}

// Get returns the token, or "" when none is stored.
func (s *TokenStore) Get() (string, error) {
	if token := strings.TrimSpace(os.Getenv(TokenEnv)); token != "" {
		return token, nil
	}

	token, err := keyring.Get(s.Service, s.User)
	if err == nil && token != "" {
		return strings.TrimSpace(token), nil
	}

	path, err := s.credPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save stores the token in the keyring, or in the credentials file when
// no keyring is reachable.
func (s *TokenStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := keyring.Set(s.Service, s.User, token); err == nil {
		return nil
	}

	path, err := s.credPath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

// Clear removes the stored token from all locations.
func (s *TokenStore) Clear() error {
	_ = keyring.Delete(s.Service, s.User)

	path := filepath.Join(s.Dir, credFileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}
	return nil
}

// Has reports whether a token is available from any source.
func (s *TokenStore) Has() bool {
	token, _ := s.Get()
	return token != ""
}
