package history

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AddSubscriber records a newsletter signup. Repeat signups for the same
// email keep the original row untouched.
func (s *Store) AddSubscriber(ctx context.Context, email, source string) (*Subscriber, error) {
	ctx = ensureContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("add subscriber: a valid email is required")
	}

	subscribedAt := formatTime(time.Time{})
	if _, err := s.execWithRetry(ctx, `
		INSERT INTO subscribers (email, source, subscribed_at)
		VALUES (?, ?, ?)
		ON CONFLICT(email) DO NOTHING`,
		email, strings.TrimSpace(source), subscribedAt,
	); err != nil {
		return nil, fmt.Errorf("add subscriber: %w", err)
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, source, subscribed_at FROM subscribers WHERE email = ?", email)
	var sub Subscriber
	var at string
	if err := row.Scan(&sub.ID, &sub.Email, &sub.Source, &at); err != nil {
		return nil, fmt.Errorf("read subscriber: %w", err)
	}
	sub.SubscribedAt = parseTime(at)
	return &sub, nil
}

// Subscribers lists newsletter signups, newest first. Results are capped at
// twenty rows.
func (s *Store) Subscribers(ctx context.Context, limit int) ([]Subscriber, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email, source, subscribed_at
		FROM subscribers
		ORDER BY subscribed_at DESC, id DESC
		LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var out []Subscriber
	for rows.Next() {
		var sub Subscriber
		var at string
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Source, &at); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		sub.SubscribedAt = parseTime(at)
		out = append(out, sub)
	}
	return out, rows.Err()
}
