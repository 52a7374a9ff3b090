package models

import "time"

// NotificationType tags a notification with the transition that caused it.
type NotificationType string

const (
	NotifyBookingRequested NotificationType = "booking_requested"
	NotifyBookingApproved  NotificationType = "booking_approved"
	NotifyBookingRejected  NotificationType = "booking_rejected"
	NotifyBookingCancelled NotificationType = "booking_cancelled"
	NotifyEventCancelled   NotificationType = "event_cancelled"
	NotifyEventPostponed   NotificationType = "event_postponed"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	EventID   *int             `json:"event_id,omitempty"`
	BookingID *string          `json:"booking_id,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
