package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultStorePath(t *testing.T) {
	path, err := DefaultStorePath()
	if err != nil {
		t.Fatalf("DefaultStorePath() error = %v", err)
	}
	if !strings.HasSuffix(path, "chats.db") {
		t.Errorf("DefaultStorePath() = %q, want a chats.db path", path)
	}
	if !strings.Contains(path, "chat-import") {
		t.Errorf("DefaultStorePath() = %q, want a chat-import directory", path)
	}
}

func TestResolveStorePath_Override(t *testing.T) {
	dir, err := os.MkdirTemp("", "chat-import-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	override := filepath.Join(dir, "nested", "custom.db")
	path, err := ResolveStorePath(override)
	if err != nil {
		t.Fatalf("ResolveStorePath() error = %v", err)
	}
	if path != override {
		t.Errorf("ResolveStorePath() = %q, want %q", path, override)
	}

	// The parent directory must exist afterwards.
	if _, err := os.Stat(filepath.Dir(override)); err != nil {
		t.Errorf("parent directory was not created: %v", err)
	}
}
