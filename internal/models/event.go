package models

import "time"

// EventStatus is the closed set of lifecycle states for an event.
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventActive    EventStatus = "active"
	EventCancelled EventStatus = "cancelled"
	EventCompleted EventStatus = "completed"
	EventPostponed EventStatus = "postponed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventDraft, EventActive, EventCancelled, EventCompleted, EventPostponed:
		return true
	}
	return false
}

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	OrganizerID string    `json:"organizer_id"`
	Price       float64   `json:"price"`
	// MaxAttendees is fixed at creation time. CurrentAttendees is the
	// denormalized count of approved bookings; it is mutated only through
	// the guarded capacity updates in the storage layer.
	MaxAttendees     int         `json:"max_attendees"`
	CurrentAttendees int         `json:"current_attendees"`
	Status           EventStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}

// SeatsLeft reports remaining capacity as seen in this snapshot. The value
// is advisory; the authoritative check happens when a seat is actually
// reserved.
func (e *Event) SeatsLeft() int {
	return e.MaxAttendees - e.CurrentAttendees
}
