package booking

import "errors"

// Typed domain errors. Handlers map these to HTTP statuses with errors.Is;
// the storage layer returns them directly so callers never match on error
// strings.
var (
	// ErrEventNotFound is returned when the referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrBookingNotFound is returned when the referenced booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrEventNotBookable is returned when the event status forbids new
	// booking requests (only active events accept them).
	ErrEventNotBookable = errors.New("event is not open for booking")

	// ErrEventFull is returned when the capacity guard fails at approval
	// or reactivation time.
	ErrEventFull = errors.New("event is fully booked")

	// ErrDuplicateBooking is returned when the user already holds a booking
	// for the event, in any status.
	ErrDuplicateBooking = errors.New("user already has a booking for this event")

	// ErrInvalidTransition is returned when the requested status change is
	// not reachable from the booking's or event's current state.
	ErrInvalidTransition = errors.New("status change not allowed from current state")

	// ErrConflict is returned after the bounded retry on concurrent
	// storage conflicts is exhausted; the caller may retry the whole
	// operation.
	ErrConflict = errors.New("operation conflicted with a concurrent update")
)
