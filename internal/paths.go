package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultStorePath returns the per-OS location of the archive database.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	var base string
	switch runtime.GOOS {
	case "darwin":
		base = filepath.Join(home, "Library/Application Support/chat-import")
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			base = filepath.Join(xdg, "chat-import")
		} else {
			base = filepath.Join(home, ".local/share/chat-import")
		}
	default:
		base = filepath.Join(home, ".chat-import")
	}
	return filepath.Join(base, "chats.db"), nil
}

// ResolveStorePath prefers an explicit override over the default location
// and ensures the parent directory exists.
func ResolveStorePath(override string) (string, error) {
	path := override
	if path == "" {
		var err error
		path, err = DefaultStorePath()
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create store directory: %w", err)
	}
	return path, nil
}
