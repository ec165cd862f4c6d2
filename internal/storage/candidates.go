package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hindsight-labs/hindsight/internal/common"
	"github.com/hindsight-labs/hindsight/internal/model"
)

// SaveCandidate records an ingested message and its filter outcome.
// Re-saving the same message ID updates the stored outcome.
func (s *SQLiteStorage) SaveCandidate(ctx context.Context, c model.ReceiptCandidate) error {
	if c.MessageID == "" {
		return fmt.Errorf("candidate message ID must not be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO receipt_candidates
			(message_id, from_addr, subject, date, receipt_text, should_process, confidence, rejection_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(message_id) DO UPDATE SET
			from_addr = excluded.from_addr,
			subject = excluded.subject,
			date = excluded.date,
			receipt_text = excluded.receipt_text,
			should_process = excluded.should_process,
			confidence = excluded.confidence,
			rejection_reason = excluded.rejection_reason`,
		c.MessageID, c.From, c.Subject, c.Date, c.ReceiptText,
		c.ShouldProcess, c.Confidence, string(c.RejectionReason))
	if err != nil {
		return fmt.Errorf("failed to save candidate: %w", err)
	}
	return nil
}

// IsProcessed reports whether a message ID already exists in the ledger.
func (s *SQLiteStorage) IsProcessed(ctx context.Context, messageID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM receipt_candidates WHERE message_id = ?", messageID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query candidate: %w", err)
	}
	return true, nil
}

// GetCandidate fetches one ledger entry by message ID.
func (s *SQLiteStorage) GetCandidate(ctx context.Context, messageID string) (*model.ReceiptCandidate, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT message_id, from_addr, subject, date, receipt_text,
			should_process, confidence, rejection_reason, ingested_at
		FROM receipt_candidates WHERE message_id = ?`, messageID)

	c, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// ListAccepted returns candidates the filter accepted, newest first.
func (s *SQLiteStorage) ListAccepted(ctx context.Context) ([]model.ReceiptCandidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT message_id, from_addr, subject, date, receipt_text,
			should_process, confidence, rejection_reason, ingested_at
		FROM receipt_candidates
		WHERE should_process = 1
		ORDER BY ingested_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var candidates []model.ReceiptCandidate
	for rows.Next() {
		c, scanErr := scanCandidate(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", scanErr)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

// scanner abstracts sql.Row and sql.Rows for scanCandidate.
type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row scanner) (*model.ReceiptCandidate, error) {
	var c model.ReceiptCandidate
	var reason string
	if err := row.Scan(&c.MessageID, &c.From, &c.Subject, &c.Date, &c.ReceiptText,
		&c.ShouldProcess, &c.Confidence, &reason, &c.IngestedAt); err != nil {
		return nil, err
	}
	c.RejectionReason = model.RejectionReason(reason)
	return &c, nil
}
