// Package notifier records user-facing notifications. Delivery is best
// effort: the booking engine calls Notify after a transition has committed
// and only logs failures, it never rolls the transition back.
package notifier

import (
	"context"
	"database/sql"
	"fmt"

	"eventdesk/internal/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Notify(ctx context.Context, n models.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, title, message, event_id, booking_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.EventID, n.BookingID, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	return nil
}

// ListByUser returns a user's notifications, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, event_id, booking_id, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		err = rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.EventID, &n.BookingID, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}
