// Package postgres is the event/booking store. Every mutation of an
// event's attendee counter is a guarded conditional UPDATE executed in the
// same transaction as the booking status change, so concurrent transitions
// can never overshoot capacity or lose an update.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"eventdesk/internal/booking"
	"eventdesk/internal/config"
	"eventdesk/internal/models"
)

type Storage struct {
	DB  *sql.DB
	log *slog.Logger
}

func InitDB(log *slog.Logger, dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db, log: log}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// maxTxAttempts bounds the retry on serialization conflicts before the
// caller gets ErrConflict and has to retry the whole operation.
const maxTxAttempts = 3

func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.runTx(ctx, fn)
		if !isRetryable(err) {
			return err
		}

		s.log.Warn("transaction conflict, retrying",
			slog.Int("attempt", attempt),
		)
	}

	return booking.ErrConflict
}

func (s *Storage) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// isRetryable reports whether the error is a Postgres serialization or
// deadlock failure worth another attempt.
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

const eventColumns = `id, title, description, date, organizer_id, price,
		max_attendees, current_attendees, status, created_at`

func scanEvent(row *sql.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.OrganizerID,
		&event.Price,
		&event.MaxAttendees,
		&event.CurrentAttendees,
		&event.Status,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) (int, error) {
	query := `
		INSERT INTO events (title, description, date, organizer_id, price,
			max_attendees, current_attendees, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query,
		event.Title,
		event.Description,
		event.Date,
		event.OrganizerID,
		event.Price,
		event.MaxAttendees,
		event.Status,
		time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	return scanEvent(s.DB.QueryRowContext(ctx, query, id))
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Date,
			&event.OrganizerID,
			&event.Price,
			&event.MaxAttendees,
			&event.CurrentAttendees,
			&event.Status,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEventWithBookings(ctx context.Context, eventID int) (*models.Event, []models.Booking, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	query := `
		SELECT id, event_id, user_id, amount, status, notes, booking_date
		FROM bookings
		WHERE event_id = $1
		ORDER BY booking_date DESC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err = rows.Scan(
			&b.ID,
			&b.EventID,
			&b.UserID,
			&b.Amount,
			&b.Status,
			&b.Notes,
			&b.BookingDate,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return event, bookings, nil
}

// SetEventStatus updates the status of an event without touching its
// bookings. Cascading paths go through CascadeEventStatus instead.
func (s *Storage) SetEventStatus(ctx context.Context, eventID int, to models.EventStatus) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE events SET status = $1 WHERE id = $2`,
		string(to), eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return booking.ErrEventNotFound
	}

	return nil
}

// CompletePastEvents marks active events whose date has passed as
// completed. Invoked periodically from main.
func (s *Storage) CompletePastEvents(ctx context.Context) (int64, error) {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE events SET status = $1 WHERE status = $2 AND date < NOW()`,
		string(models.EventCompleted), string(models.EventActive),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past events: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check update result: %w", err)
	}

	return rows, nil
}
