package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteExportFile writes a legacy export payload to a temp file and returns
// its path.
func WriteExportFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	dir := CreateTempDir(t)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write export file %s: %v", name, err)
	}
	return path
}

// MessageArrayPayload is a bare message-array export in the OpenAI style.
func MessageArrayPayload() []byte {
	return []byte(`[
		{"role": "user", "content": "Hello"},
		{"role": "assistant", "content": "Hi there!"}
	]`)
}

// ConversationArrayPayload is an export of two conversation records.
func ConversationArrayPayload() []byte {
	return []byte(`[
		{
			"id": "conv-1",
			"title": "First chat",
			"created_at": "2024-03-01T10:00:00Z",
			"messages": [
				{"role": "user", "content": "What is Go?"},
				{"role": "assistant", "content": "A programming language."}
			]
		},
		{
			"title": "Second chat",
			"messages": [
				{"sender": "human", "text": "Ping"},
				{"sender": "bot", "text": "Pong"}
			]
		}
	]`)
}

// WrappedCollectionPayload wraps a conversation array under a collection key.
func WrappedCollectionPayload(key string) []byte {
	return []byte(`{"` + key + `": [
		{
			"title": "Wrapped chat",
			"messages": [
				{"role": "user", "content": "Hello"}
			]
		}
	]}`)
}

// SingleConversationPayload is an export of one top-level conversation object.
func SingleConversationPayload() []byte {
	return []byte(`{
		"title": "Lone chat",
		"createdAt": 1709290800000,
		"messages": [
			{"role": "user", "parts": [{"type": "text", "text": "Hello"}]},
			{"role": "assistant", "parts": [{"type": "text", "text": "Hi"}]}
		]
	}`)
}
