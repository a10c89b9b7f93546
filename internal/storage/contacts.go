package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

// CreateContactMessage сохраняет сообщение обратной связи.
func (s *Storage) CreateContactMessage(ctx context.Context, msg models.ContactMessage) error {
	const op = "storage.CreateContactMessage"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contact_messages (id, type, email, subject, message, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := s.DB.ExecContext(ctx, query,
		msg.ID, msg.Type, msg.Email, msg.Subject, msg.Message, msg.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListContactMessages возвращает сообщения, начиная с самых новых.
func (s *Storage) ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	const op = "storage.ListContactMessages"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, type, email, subject, message, created_at
			  FROM contact_messages
			  ORDER BY created_at DESC
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.ContactMessage, 0)
	for rows.Next() {
		var m models.ContactMessage
		if err = rows.Scan(&m.ID, &m.Type, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		m.CreatedAt = m.CreatedAt.UTC()
		result = append(result, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
