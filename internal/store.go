package internal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS chats (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	source TEXT NOT NULL DEFAULT '',
	content_hash TEXT NOT NULL UNIQUE,
	created_at TEXT,
	updated_at TEXT,
	imported_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS chat_messages (
	chat_id TEXT NOT NULL REFERENCES chats(id) ON DELETE CASCADE,
	seq INTEGER NOT NULL,
	message_id TEXT NOT NULL,
	role TEXT NOT NULL,
	metadata TEXT,
	parts TEXT NOT NULL,
	PRIMARY KEY (chat_id, seq)
);
`

// Store is the local archive of imported chats.
type Store struct {
	db *sql.DB
}

// OpenStore opens the archive database at path, creating the schema on
// first use.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &StoreError{Op: "open", Err: err}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, &StoreError{Op: "init", Err: err}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ChatSummary is one row of the archive listing.
type ChatSummary struct {
	ID           string
	Title        string
	Source       string
	MessageCount int
	CreatedAt    *time.Time
	ImportedAt   time.Time
}

// StoreStats reports archive totals for healthcheck.
type StoreStats struct {
	Chats            int
	Messages         int
	OrphanedMessages int
}

// SaveChat persists one normalized conversation under a fresh chat id. When
// a content-identical chat is already archived, the existing id is returned
// with saved=false and nothing is written.
func (s *Store) SaveChat(ctx context.Context, conv Conversation, source string) (id string, saved bool, err error) {
	hash := HashConversation(conv)

	var existing string
	err = s.db.QueryRowContext(ctx, `SELECT id FROM chats WHERE content_hash = ?`, hash).Scan(&existing)
	if err == nil {
		return existing, false, nil
	}
	if err != sql.ErrNoRows {
		return "", false, &StoreError{Op: "query", Err: err}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, &StoreError{Op: "save", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	chatID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO chats (id, title, source, content_hash, created_at, updated_at, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		chatID, conv.Title, source, hash,
		timeColumn(conv.CreatedAt), timeColumn(conv.UpdatedAt),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", false, &StoreError{Op: "save", Err: err}
	}

	for seq, msg := range conv.Messages {
		parts, err := json.Marshal(msg.Parts)
		if err != nil {
			return "", false, &StoreError{Op: "save", Err: err}
		}
		var metadata any
		if msg.Metadata != nil {
			encoded, err := json.Marshal(msg.Metadata)
			if err != nil {
				return "", false, &StoreError{Op: "save", Err: err}
			}
			metadata = string(encoded)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO chat_messages (chat_id, seq, message_id, role, metadata, parts)
			VALUES (?, ?, ?, ?, ?, ?)`,
			chatID, seq, msg.ID, msg.Role, metadata, string(parts))
		if err != nil {
			return "", false, &StoreError{Op: "save", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", false, &StoreError{Op: "save", Err: err}
	}
	return chatID, true, nil
}

// ListChats returns summaries of all archived chats, most recently imported
// first.
func (s *Store) ListChats(ctx context.Context) ([]ChatSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.title, c.source, c.created_at, c.imported_at, COUNT(m.seq)
		FROM chats c
		LEFT JOIN chat_messages m ON m.chat_id = c.id
		GROUP BY c.id
		ORDER BY c.imported_at DESC, c.id`)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	var summaries []ChatSummary
	for rows.Next() {
		var sum ChatSummary
		var createdAt sql.NullString
		var importedAt string
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.Source, &createdAt, &importedAt, &sum.MessageCount); err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}
		sum.CreatedAt = parseStoredTime(createdAt)
		if t, err := time.Parse(time.RFC3339, importedAt); err == nil {
			sum.ImportedAt = t
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	return summaries, nil
}

// GetChat loads one archived chat with its messages. The id may be a unique
// prefix of the full chat id.
func (s *Store) GetChat(ctx context.Context, id string) (*Chat, error) {
	resolved, err := s.resolveChatID(ctx, id)
	if err != nil {
		return nil, err
	}

	chat := &Chat{ID: resolved}
	var createdAt, updatedAt sql.NullString
	var importedAt string
	err = s.db.QueryRowContext(ctx, `
		SELECT title, source, created_at, updated_at, imported_at
		FROM chats WHERE id = ?`, resolved).
		Scan(&chat.Title, &chat.Source, &createdAt, &updatedAt, &importedAt)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	chat.CreatedAt = parseStoredTime(createdAt)
	chat.UpdatedAt = parseStoredTime(updatedAt)
	if t, err := time.Parse(time.RFC3339, importedAt); err == nil {
		chat.ImportedAt = t
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT message_id, role, metadata, parts
		FROM chat_messages WHERE chat_id = ? ORDER BY seq`, resolved)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var msg Message
		var metadata sql.NullString
		var parts string
		if err := rows.Scan(&msg.ID, &msg.Role, &metadata, &parts); err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}
		if err := json.Unmarshal([]byte(parts), &msg.Parts); err != nil {
			return nil, &StoreError{Op: "query", Err: fmt.Errorf("corrupt parts for chat %s: %w", resolved, err)}
		}
		if metadata.Valid && metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &msg.Metadata); err != nil {
				return nil, &StoreError{Op: "query", Err: fmt.Errorf("corrupt metadata for chat %s: %w", resolved, err)}
			}
		}
		chat.Messages = append(chat.Messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	return chat, nil
}

// Stats counts archived chats, messages and messages whose chat row is gone.
func (s *Store) Stats(ctx context.Context) (StoreStats, error) {
	var stats StoreStats
	queries := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM chats`, &stats.Chats},
		{`SELECT COUNT(*) FROM chat_messages`, &stats.Messages},
		{`SELECT COUNT(*) FROM chat_messages m LEFT JOIN chats c ON c.id = m.chat_id WHERE c.id IS NULL`, &stats.OrphanedMessages},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return StoreStats{}, &StoreError{Op: "query", Err: err}
		}
	}
	return stats, nil
}

// resolveChatID resolves an exact id or a unique id prefix.
func (s *Store) resolveChatID(ctx context.Context, id string) (string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM chats WHERE id = ? OR id LIKE ? LIMIT 3`, id, id+"%")
	if err != nil {
		return "", &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var match string
		if err := rows.Scan(&match); err != nil {
			return "", &StoreError{Op: "query", Err: err}
		}
		if match == id {
			return id, nil
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return "", &StoreError{Op: "query", Err: err}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("chat not found: %s (use 'chat-import list' to see archived chats)", id)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("chat id %s is ambiguous, use more characters", id)
	}
}

func timeColumn(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseStoredTime(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, ns.String); err == nil {
		return &t
	}
	return nil
}
