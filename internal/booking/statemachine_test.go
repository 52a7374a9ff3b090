package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/models"
)

func TestPlanTransition(t *testing.T) {
	t.Parallel()

	statuses := []models.BookingStatus{
		models.BookingPending,
		models.BookingApproved,
		models.BookingRejected,
		models.BookingCancelled,
	}

	legal := map[models.BookingStatus]map[models.BookingStatus]CapacityEffect{
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

	// Every from/to pair is either in the legal table with the expected
	// capacity effect or fails with ErrInvalidTransition. Rejected has no
	// way out, and no state transitions to itself.
	for _, from := range statuses {
		for _, to := range statuses {
			effect, err := planTransition(from, to)

			if want, ok := legal[from][to]; ok {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, want, effect, "%s -> %s", from, to)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	}
}

func TestPlanEventTransition(t *testing.T) {
	t.Parallel()

	statuses := []models.EventStatus{
		models.EventDraft,
		models.EventActive,
		models.EventCancelled,
		models.EventCompleted,
		models.EventPostponed,
	}

	legal := map[models.EventStatus][]models.EventStatus{
		models.EventDraft:     {models.EventActive, models.EventCancelled},
		models.EventActive:    {models.EventCancelled, models.EventCompleted, models.EventPostponed},
		models.EventPostponed: {models.EventActive, models.EventCancelled},
	}

	for _, from := range statuses {
		allowed := map[models.EventStatus]bool{}
		for _, to := range legal[from] {
			allowed[to] = true
		}

		for _, to := range statuses {
			err := planEventTransition(from, to)

			if allowed[to] {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	}
}

func TestTransitionNotification(t *testing.T) {
	t.Parallel()

	b := &models.Booking{
		ID:      "booking-1",
		EventID: 42,
		UserID:  "user-1",
	}

	testCases := []struct {
		to       models.BookingStatus
		reason   string
		wantType models.NotificationType
		wantMsg  string
	}{
		{
			to:       models.BookingApproved,
			wantType: models.NotifyBookingApproved,
			wantMsg:  `Your booking for "Go Conf" has been approved.`,
		},
		{
			to:       models.BookingRejected,
			reason:   "payment missing",
			wantType: models.NotifyBookingRejected,
			wantMsg:  `Your booking for "Go Conf" has been rejected. Reason: payment missing`,
		},
		{
			to:       models.BookingCancelled,
			wantType: models.NotifyBookingCancelled,
			wantMsg:  `Your booking for "Go Conf" has been cancelled.`,
		},
	}

	for _, tc := range testCases {
		n := transitionNotification(b, "Go Conf", tc.to, tc.reason)

		assert.Equal(t, "user-1", n.UserID)
		assert.Equal(t, tc.wantType, n.Type)
		assert.Equal(t, tc.wantMsg, n.Message)
		require.NotNil(t, n.EventID)
		assert.Equal(t, 42, *n.EventID)
		require.NotNil(t, n.BookingID)
		assert.Equal(t, "booking-1", *n.BookingID)
	}
}

func TestRequestNotification_GoesToOrganizer(t *testing.T) {
	t.Parallel()

	event := &models.Event{ID: 7, Title: "Meetup", OrganizerID: "org-1"}
	b := &models.Booking{ID: "booking-2", EventID: 7, UserID: "user-2"}

	n := requestNotification(b, event)

	assert.Equal(t, "org-1", n.UserID)
	assert.Equal(t, models.NotifyBookingRequested, n.Type)
	assert.Contains(t, n.Message, "user-2")
	assert.Contains(t, n.Message, "Meetup")
}

func TestCascadeNotification(t *testing.T) {
	t.Parallel()

	b := models.Booking{ID: "booking-3", EventID: 9, UserID: "user-3"}

	cancelled := cascadeNotification(b, "Workshop", models.EventCancelled, "venue closed")
	assert.Equal(t, models.NotifyEventCancelled, cancelled.Type)
	assert.Contains(t, cancelled.Message, "venue closed")

	postponed := cascadeNotification(b, "Workshop", models.EventPostponed, "")
	assert.Equal(t, models.NotifyEventPostponed, postponed.Type)
	assert.Contains(t, postponed.Message, "back to pending")
}

func TestPlanTransition_WrapsInvalidTransition(t *testing.T) {
	t.Parallel()

	_, err := planTransition(models.BookingRejected, models.BookingApproved)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Contains(t, err.Error(), "rejected -> approved")
}
