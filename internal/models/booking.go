package models

import "time"

// BookingStatus is the closed set of lifecycle states for a booking.
// "rejected" is terminal; a "cancelled" booking may be reactivated back
// to "approved" by an admin.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID      string `json:"id"`
	EventID int    `json:"event_id"`
	UserID  string `json:"user_id"`
	// Amount is the event price snapshotted at request time and never
	// changes afterwards, even if the event is repriced.
	Amount      float64       `json:"amount"`
	Status      BookingStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	BookingDate time.Time     `json:"booking_date"`
}
