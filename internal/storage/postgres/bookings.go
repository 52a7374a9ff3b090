package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"eventdesk/internal/booking"
	"eventdesk/internal/models"
)

func (s *Storage) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := `
		SELECT id, event_id, user_id, amount, status, notes, booking_date
		FROM bookings
		WHERE id = $1`

	var b models.Booking
	err := s.DB.QueryRowContext(ctx, query, bookingID).Scan(
		&b.ID,
		&b.EventID,
		&b.UserID,
		&b.Amount,
		&b.Status,
		&b.Notes,
		&b.BookingDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &b, nil
}

// CreateBooking inserts a new pending booking. The unique index on
// (event_id, user_id) enforces one booking per user per event regardless of
// status, so a rejected or cancelled user cannot re-request.
func (s *Storage) CreateBooking(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO bookings (id, event_id, user_id, amount, status, notes, booking_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.DB.ExecContext(ctx, query,
		b.ID, b.EventID, b.UserID, b.Amount, b.Status, b.Notes, b.BookingDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return booking.ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// TransitionBooking applies a booking status change together with its
// capacity effect as one transaction. The status write is conditional on
// the expected current status and the counter writes are conditional on
// capacity bounds, so a stale read can never turn into a lost update: the
// losing side of a race gets zero affected rows and the whole transaction
// rolls back.
func (s *Storage) TransitionBooking(ctx context.Context, bookingID string, from, to models.BookingStatus, effect booking.CapacityEffect) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var eventID int
		err := tx.QueryRowContext(ctx,
			`UPDATE bookings SET status = $1
			 WHERE id = $2 AND status = $3
			 RETURNING event_id`,
			string(to), bookingID, string(from),
		).Scan(&eventID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return s.classifyMissedTransition(ctx, tx, bookingID)
			}
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		switch effect {
		case booking.CapacityReserve:
			return s.reserveSeat(ctx, tx, eventID)
		case booking.CapacityRelease:
			return s.releaseSeat(ctx, tx, eventID)
		}

		return nil
	})
}

// classifyMissedTransition distinguishes a vanished booking from one whose
// status changed under us since the caller read it.
func (s *Storage) classifyMissedTransition(ctx context.Context, tx *sql.Tx, bookingID string) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`,
		bookingID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check booking: %w", err)
	}

	if !exists {
		return booking.ErrBookingNotFound
	}

	return booking.ErrInvalidTransition
}

// reserveSeat claims one seat. The capacity check and the increment are a
// single conditional statement, so two concurrent approvals with one seat
// left cannot both pass a stale check.
func (s *Storage) reserveSeat(ctx context.Context, tx *sql.Tx, eventID int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE events
		 SET current_attendees = current_attendees + 1
		 WHERE id = $1 AND current_attendees < max_attendees`,
		eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to reserve seat: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check reserve result: %w", err)
	}
	if rows == 0 {
		return booking.ErrEventFull
	}

	return nil
}

// releaseSeat frees one seat, flooring at zero. Hitting the floor means the
// counter had already desynced from the approved bookings somewhere else;
// the release itself stays a no-op but the desync is logged.
func (s *Storage) releaseSeat(ctx context.Context, tx *sql.Tx, eventID int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE events
		 SET current_attendees = current_attendees - 1
		 WHERE id = $1 AND current_attendees > 0`,
		eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to release seat: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check release result: %w", err)
	}
	if rows == 0 {
		s.log.Warn("capacity release on empty event, counter was already desynced",
			slog.Int("event_id", eventID),
		)
	}

	return nil
}

// CascadeEventStatus moves the event to its new status and bulk-transitions
// every pending and approved booking in the same transaction. The attendee
// counter is reset to zero explicitly: after the bulk move no booking is
// approved, and the counter must agree with that.
func (s *Storage) CascadeEventStatus(ctx context.Context, eventID int, to models.EventStatus, bookingTo models.BookingStatus) ([]models.Booking, error) {
	var affected []models.Booking

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
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

		affected, err = s.cascadeBookings(ctx, tx, eventID, bookingTo)
		return err
	})
	if err != nil {
		return nil, err
	}

	return affected, nil
}

// DeleteEvent cancels all active bookings of the event, captures them for
// notification, and removes the event row. Booking rows referencing the
// event go away with it (ON DELETE CASCADE).
func (s *Storage) DeleteEvent(ctx context.Context, eventID int) ([]models.Booking, error) {
	var affected []models.Booking

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		affected, err = s.cascadeBookings(ctx, tx, eventID, models.BookingCancelled)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, eventID)
		if err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check delete result: %w", err)
		}
		if rows == 0 {
			return booking.ErrEventNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return affected, nil
}

// cascadeBookings bulk-moves all pending and approved bookings of an event
// to the target status and zeroes the attendee counter inside the caller's
// transaction. Returns the bookings in their pre-transition state.
func (s *Storage) cascadeBookings(ctx context.Context, tx *sql.Tx, eventID int, bookingTo models.BookingStatus) ([]models.Booking, error) {
	query := `
		SELECT id, event_id, user_id, amount, status, notes, booking_date
		FROM bookings
		WHERE event_id = $1 AND status IN ($2, $3)`

	rows, err := tx.QueryContext(ctx, query,
		eventID, string(models.BookingPending), string(models.BookingApproved),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get affected bookings: %w", err)
	}
	defer rows.Close()

	var affected []models.Booking
	for rows.Next() {
		var b models.Booking
		err = rows.Scan(&b.ID, &b.EventID, &b.UserID, &b.Amount, &b.Status, &b.Notes, &b.BookingDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		affected = append(affected, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1
		 WHERE event_id = $2 AND status IN ($3, $4)`,
		string(bookingTo), eventID,
		string(models.BookingPending), string(models.BookingApproved),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk update bookings: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE events SET current_attendees = 0 WHERE id = $1`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reset attendee counter: %w", err)
	}

	return affected, nil
}
