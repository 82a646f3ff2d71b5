package history

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AddMessage records a contact form submission.
func (s *Store) AddMessage(ctx context.Context, msg Message) (*Message, error) {
	ctx = ensureContext(ctx)
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Body = strings.TrimSpace(msg.Body)
	if msg.Name == "" {
		return nil, fmt.Errorf("add message: name is required")
	}
	if msg.Email == "" || !strings.Contains(msg.Email, "@") {
		return nil, fmt.Errorf("add message: a valid email is required")
	}
	if msg.Body == "" {
		return nil, fmt.Errorf("add message: message body is required")
	}

	createdAt := formatTime(time.Time{})
	res, err := s.execWithRetry(ctx, `
		INSERT INTO messages (name, email, subject, body, read, created_at)
		VALUES (?, ?, ?, ?, 0, ?)`,
		msg.Name, msg.Email, strings.TrimSpace(msg.Subject), msg.Body, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("add message id: %w", err)
	}
	msg.ID = id
	msg.Read = false
	msg.CreatedAt = parseTime(createdAt)
	return &msg, nil
}

// Messages lists contact messages, newest first. When unreadOnly is set,
// read messages are skipped. Results are capped at twenty rows.
func (s *Store) Messages(ctx context.Context, unreadOnly bool, limit int) ([]Message, error) {
	ctx = ensureContext(ctx)
	query := `
		SELECT id, name, email, subject, body, read, created_at
		FROM messages`
	if unreadOnly {
		query += " WHERE read = 0"
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"

	rows, err := s.db.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var msg Message
		var read int
		var at string
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Body, &read, &at); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msg.Read = read != 0
		msg.CreatedAt = parseTime(at)
		out = append(out, msg)
	}
	return out, rows.Err()
}

// MarkMessageRead flags one message as read. The boolean reports whether a
// row was updated.
func (s *Store) MarkMessageRead(ctx context.Context, id int64) (bool, error) {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(ctx, "UPDATE messages SET read = 1 WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("mark message read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark message read rows: %w", err)
	}
	return affected > 0, nil
}
