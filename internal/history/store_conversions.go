package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// RecordConversion inserts a conversion and returns it with its id and
// timestamp set.
func (s *Store) RecordConversion(ctx context.Context, conv Conversion) (*Conversion, error) {
	ctx = ensureContext(ctx)
	conv.ToolID = strings.TrimSpace(conv.ToolID)
	conv.FileName = strings.TrimSpace(conv.FileName)
	if conv.ToolID == "" {
		return nil, fmt.Errorf("record conversion: tool id is required")
	}
	if conv.FileName == "" {
		return nil, fmt.Errorf("record conversion: file name is required")
	}
	switch conv.Status {
	case StatusSuccess, StatusFailed:
	default:
		return nil, fmt.Errorf("record conversion: invalid status %q", conv.Status)
	}

	createdAt := formatTime(conv.CreatedAt)
	res, err := s.execWithRetry(ctx, `
		INSERT INTO conversions (user_id, tool_id, file_name, output_file_name, download_url, file_size, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		conv.UserID, conv.ToolID, conv.FileName, conv.OutputFileName, conv.DownloadURL, conv.FileSize, string(conv.Status), createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("record conversion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("record conversion id: %w", err)
	}
	conv.ID = id
	conv.CreatedAt = parseTime(createdAt)
	return &conv, nil
}

// RecentConversions lists the newest conversions, optionally filtered by
// user. Results are capped at twenty rows.
func (s *Store) RecentConversions(ctx context.Context, userID string, limit int) ([]Conversion, error) {
	ctx = ensureContext(ctx)
	limit = clampLimit(limit)

	query := `
		SELECT id, user_id, tool_id, file_name, output_file_name, download_url, file_size, status, created_at
		FROM conversions`
	args := []any{}
	if userID = strings.TrimSpace(userID); userID != "" {
		query += " WHERE user_id = ?"
		args = append(args, userID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var out []Conversion
	for rows.Next() {
		conv, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *conv)
	}
	return out, rows.Err()
}

// GetConversion returns one conversion by id. The boolean reports whether it
// exists.
func (s *Store) GetConversion(ctx context.Context, id int64) (*Conversion, bool, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, tool_id, file_name, output_file_name, download_url, file_size, status, created_at
		FROM conversions WHERE id = ?`, id)
	conv, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return conv, true, nil
}

// ConversionCounts aggregates recorded conversions per tool, most used
// first.
func (s *Store) ConversionCounts(ctx context.Context) ([]ToolCount, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
		SELECT tool_id, COUNT(1)
		FROM conversions
		GROUP BY tool_id
		ORDER BY COUNT(1) DESC, tool_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("count conversions: %w", err)
	}
	defer rows.Close()

	var out []ToolCount
	for rows.Next() {
		var tc ToolCount
		if err := rows.Scan(&tc.ToolID, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan conversion count: %w", err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversion(row rowScanner) (*Conversion, error) {
	var conv Conversion
	var status, createdAt string
	if err := row.Scan(&conv.ID, &conv.UserID, &conv.ToolID, &conv.FileName, &conv.OutputFileName, &conv.DownloadURL, &conv.FileSize, &status, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan conversion: %w", err)
	}
	conv.Status = Status(status)
	conv.CreatedAt = parseTime(createdAt)
	return &conv, nil
}
