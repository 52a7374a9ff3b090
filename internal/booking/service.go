// Package booking implements the event capacity and booking lifecycle
// engine: admission of new booking requests, the booking state machine,
// and the cascading effects of event status changes. All capacity
// accounting goes through the storage layer's guarded updates so that
// concurrent transitions can never overshoot an event's capacity.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
)

type Storage interface {
	GetEvent(ctx context.Context, eventID int) (*models.Event, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CreateBooking(ctx context.Context, b *models.Booking) error

	// TransitionBooking applies the booking status change and its capacity
	// effect as one atomic unit. It must fail with ErrInvalidTransition if
	// the booking is no longer in the expected status, ErrEventFull if a
	// reserve guard fails, and ErrConflict after retry exhaustion, leaving
	// nothing partially applied.
	TransitionBooking(ctx context.Context, bookingID string, from, to models.BookingStatus, effect CapacityEffect) error

	SetEventStatus(ctx context.Context, eventID int, to models.EventStatus) error

	// CascadeEventStatus moves the event to its new status, bulk-moves all
	// pending and approved bookings to bookingTo, and resets the attendee
	// counter to match, all in one atomic unit. It returns the bookings
	// whose status actually changed.
	CascadeEventStatus(ctx context.Context, eventID int, to models.EventStatus, bookingTo models.BookingStatus) ([]models.Booking, error)

	// DeleteEvent cancels all active bookings, removes the event, and
	// returns the bookings that were cancelled.
	DeleteEvent(ctx context.Context, eventID int) ([]models.Booking, error)
}

type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	notifier Notifier
}

func NewService(log *slog.Logger, storage Storage, notifier Notifier) *Service {
	return &Service{
		log:      log,
		storage:  storage,
		notifier: notifier,
	}
}

// Request admits a new booking request. Checks run in order: event exists,
// event is active, capacity remains, no prior booking for the same user and
// event in any status. The created booking is pending and does not touch
// the attendee counter; a seat is claimed only at approval time.
func (s *Service) Request(ctx context.Context, userID string, eventID int, notes string) (*models.Booking, error) {
	const op = "booking.Request"

	event, err := s.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if event.Status != models.EventActive {
		return nil, ErrEventNotBookable
	}

	// Advisory only: several pending requests may outnumber the remaining
	// seats. The authoritative guard runs at approval.
	if event.SeatsLeft() <= 0 {
		return nil, ErrEventFull
	}

	b := &models.Booking{
		ID:          uuid.New().String(),
		EventID:     eventID,
		UserID:      userID,
		Amount:      event.Price,
		Status:      models.BookingPending,
		Notes:       notes,
		BookingDate: time.Now().UTC(),
	}

	if err := s.storage.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking requested",
		slog.String("booking_id", b.ID),
		slog.Int("event_id", eventID),
		slog.String("user_id", userID),
	)

	s.dispatch(ctx, requestNotification(b, event))

	return b, nil
}

// Approve moves a pending or reactivatable booking to approved, claiming a
// seat on the event.
func (s *Service) Approve(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.BookingApproved, "")
}

// Reject moves a pending booking to rejected. Rejection never touches the
// attendee counter.
func (s *Service) Reject(ctx context.Context, bookingID, reason string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.BookingRejected, reason)
}

// Cancel moves a booking to cancelled, releasing its seat if it was
// approved. actorID identifies who asked (the user or an admin) and is
// recorded in the log only.
func (s *Service) Cancel(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	s.log.Info("booking cancellation requested",
		slog.String("booking_id", bookingID),
		slog.String("actor_id", actorID),
	)

	return s.transition(ctx, bookingID, models.BookingCancelled, "")
}

// UpdateStatus is the generic admin path. It accepts any target status the
// transition table allows from the current one, which includes reactivating
// a cancelled booking back to approved.
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, to models.BookingStatus, reason string) (*models.Booking, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}

	return s.transition(ctx, bookingID, to, reason)
}

func (s *Service) transition(ctx context.Context, bookingID string, to models.BookingStatus, reason string) (*models.Booking, error) {
	const op = "booking.transition"

	b, err := s.storage.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	effect, err := planTransition(b.Status, to)
	if err != nil {
		return nil, err
	}

	if err := s.storage.TransitionBooking(ctx, b.ID, b.Status, to, effect); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking transitioned",
		slog.String("booking_id", b.ID),
		slog.String("from", string(b.Status)),
		slog.String("to", string(to)),
	)

	b.Status = to

	s.dispatch(ctx, transitionNotification(b, s.eventTitle(ctx, b.EventID), to, reason))

	return b, nil
}

// SetEventStatus changes the event's lifecycle status. Cancellation and
// postponement cascade onto the event's bookings: all of them are
// bulk-moved (cancelled, or back to pending on postponement), the attendee
// counter is reset to match, and every affected user is notified.
func (s *Service) SetEventStatus(ctx context.Context, eventID int, to models.EventStatus, reason string) (*models.Event, error) {
	const op = "booking.SetEventStatus"

	event, err := s.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := planEventTransition(event.Status, to); err != nil {
		return nil, err
	}

	switch to {
	case models.EventCancelled, models.EventPostponed:
		bookingTo := models.BookingCancelled
		if to == models.EventPostponed {
			bookingTo = models.BookingPending
		}

		affected, err := s.storage.CascadeEventStatus(ctx, eventID, to, bookingTo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		s.log.Info("event status cascaded",
			slog.Int("event_id", eventID),
			slog.String("to", string(to)),
			slog.Int("affected_bookings", len(affected)),
		)

		for _, b := range affected {
			s.dispatch(ctx, cascadeNotification(b, event.Title, to, reason))
		}

		event.CurrentAttendees = 0
	default:
		if err := s.storage.SetEventStatus(ctx, eventID, to); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	event.Status = to

	return event, nil
}

// DeleteEvent removes an event entirely. Its bookings are cancelled first
// and their holders notified, same as an event cancellation.
func (s *Service) DeleteEvent(ctx context.Context, eventID int) error {
	const op = "booking.DeleteEvent"

	event, err := s.storage.GetEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := s.storage.DeleteEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event deleted",
		slog.Int("event_id", eventID),
		slog.Int("affected_bookings", len(affected)),
	)

	for _, b := range affected {
		s.dispatch(ctx, cascadeNotification(b, event.Title, models.EventCancelled, "event deleted"))
	}

	return nil
}

// dispatch records a notification after the transition has committed.
// Delivery is best effort: a notifier failure is logged and never rolls
// back the state change.
func (s *Service) dispatch(ctx context.Context, n models.Notification) {
	n.ID = uuid.New().String()
	n.CreatedAt = time.Now().UTC()

	if err := s.notifier.Notify(ctx, n); err != nil {
		s.log.Warn("failed to record notification",
			sl.Err(err),
			slog.String("user_id", n.UserID),
			slog.String("type", string(n.Type)),
		)
	}
}

func (s *Service) eventTitle(ctx context.Context, eventID int) string {
	event, err := s.storage.GetEvent(ctx, eventID)
	if err != nil {
		return fmt.Sprintf("event #%d", eventID)
	}

	return event.Title
}
