package booking

import (
	"fmt"

	"eventdesk/internal/models"
)

// CapacityEffect describes what a booking transition does to the event's
// attendee counter. Only approved bookings occupy capacity, so the counter
// moves exactly when a seat is claimed or released, never at request or
// rejection time.
type CapacityEffect int

const (
	CapacityNone CapacityEffect = iota
	CapacityReserve
	CapacityRelease
)

// bookingTransitions is the closed transition table for a booking.
// Absent pairs are illegal. "rejected" has no outgoing edges; "cancelled"
// keeps a reactivation edge back to "approved".
var bookingTransitions = map[models.BookingStatus]map[models.BookingStatus]CapacityEffect{
	models.BookingPending: {
		models.BookingApproved:  CapacityReserve,
		models.BookingRejected:  CapacityNone,
		models.BookingCancelled: CapacityNone,
	},
	models.BookingApproved: {
		models.BookingCancelled: CapacityRelease,
	},
	models.BookingCancelled: {
		models.BookingApproved: CapacityReserve,
	},
}

// planTransition resolves the capacity effect of moving a booking from one
// status to another, or ErrInvalidTransition if the pair is not in the table.
func planTransition(from, to models.BookingStatus) (CapacityEffect, error) {
	effect, ok := bookingTransitions[from][to]
	if !ok {
		return CapacityNone, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return effect, nil
}

// eventTransitions is the closed transition table for an event. A postponed
// event may be brought back to active; cancelled and completed are terminal.
var eventTransitions = map[models.EventStatus]map[models.EventStatus]bool{
	models.EventDraft: {
		models.EventActive:    true,
		models.EventCancelled: true,
	},
	models.EventActive: {
		models.EventCancelled: true,
		models.EventCompleted: true,
		models.EventPostponed: true,
	},
	models.EventPostponed: {
		models.EventActive:    true,
		models.EventCancelled: true,
	},
}

func planEventTransition(from, to models.EventStatus) error {
	if !eventTransitions[from][to] {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// transitionNotification builds the single user-facing notification for a
// committed booking transition. The transition decision stays pure: the
// caller dispatches the notification only after storage has committed.
func transitionNotification(b *models.Booking, eventTitle string, to models.BookingStatus, reason string) models.Notification {
	eventID := b.EventID
	bookingID := b.ID

	n := models.Notification{
		UserID:    b.UserID,
		EventID:   &eventID,
		BookingID: &bookingID,
	}

	switch to {
	case models.BookingApproved:
		n.Type = models.NotifyBookingApproved
		n.Title = "Booking approved"
		n.Message = fmt.Sprintf("Your booking for %q has been approved.", eventTitle)
	case models.BookingRejected:
		n.Type = models.NotifyBookingRejected
		n.Title = "Booking rejected"
		n.Message = fmt.Sprintf("Your booking for %q has been rejected.", eventTitle)
	case models.BookingCancelled:
		n.Type = models.NotifyBookingCancelled
		n.Title = "Booking cancelled"
		n.Message = fmt.Sprintf("Your booking for %q has been cancelled.", eventTitle)
	}

	if reason != "" {
		n.Message += " Reason: " + reason
	}

	return n
}

// requestNotification tells the organizer about a new pending request.
func requestNotification(b *models.Booking, event *models.Event) models.Notification {
	eventID := event.ID
	bookingID := b.ID

	return models.Notification{
		UserID:    event.OrganizerID,
		Type:      models.NotifyBookingRequested,
		Title:     "New booking request",
		Message:   fmt.Sprintf("User %s requested a booking for %q.", b.UserID, event.Title),
		EventID:   &eventID,
		BookingID: &bookingID,
	}
}

// cascadeNotification is sent to each booking holder when the whole event
// changes state underneath them.
func cascadeNotification(b models.Booking, eventTitle string, to models.EventStatus, reason string) models.Notification {
	eventID := b.EventID
	bookingID := b.ID

	n := models.Notification{
		UserID:    b.UserID,
		EventID:   &eventID,
		BookingID: &bookingID,
	}

	switch to {
	case models.EventPostponed:
		n.Type = models.NotifyEventPostponed
		n.Title = "Event postponed"
		n.Message = fmt.Sprintf("%q has been postponed. Your booking is back to pending.", eventTitle)
	default:
		n.Type = models.NotifyEventCancelled
		n.Title = "Event cancelled"
		n.Message = fmt.Sprintf("%q has been cancelled. Your booking is cancelled.", eventTitle)
	}

	if reason != "" {
		n.Message += " Reason: " + reason
	}

	return n
}
