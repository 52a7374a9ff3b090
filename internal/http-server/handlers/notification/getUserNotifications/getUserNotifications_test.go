package getUserNotifications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/http-server/handlers/notification/getUserNotifications/mocks"
	"eventdesk/internal/lib/logger/handlers/slogdiscard"
	"eventdesk/internal/models"
)

func TestGetUserNotificationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	eventID := 1
	bookingID := "b-1"

	notifications := []models.Notification{
		{
			ID:        "n-1",
			UserID:    "user123",
			Type:      models.NotifyBookingApproved,
			Message:   "your booking for Go Meetup has been approved",
			EventID:   &eventID,
			BookingID: &bookingID,
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "n-2",
			UserID:    "user123",
			Type:      models.NotifyEventCancelled,
			Message:   "Go Meetup has been cancelled",
			EventID:   &eventID,
			CreatedAt: time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC),
		},
	}

	testCases := []struct {
		name           string
		userID         string
		mockSetup      func(m *mocks.NotificationLister)
		expectedStatus int
		expectedError  string
		expectedCount  int
	}{
		{
			name:   "Success",
			userID: "user123",
			mockSetup: func(m *mocks.NotificationLister) {
				m.On("ListByUser", mock.Anything, "user123").Return(notifications, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:   "No notifications",
			userID: "user456",
			mockSetup: func(m *mocks.NotificationLister) {
				m.On("ListByUser", mock.Anything, "user456").Return([]models.Notification{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:   "Internal server error",
			userID: "user123",
			mockSetup: func(m *mocks.NotificationLister) {
				m.On("ListByUser", mock.Anything, "user123").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to get notifications",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewNotificationLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			router := chi.NewRouter()
			router.Get("/users/{id}/notifications", handler)

			req, err := http.NewRequest(http.MethodGet, "/users/"+tc.userID+"/notifications", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedError != "" {
				assert.Contains(t, rr.Body.String(), `"status":"Error"`)
				assert.Contains(t, rr.Body.String(), tc.expectedError)
				return
			}

			var resp NotificationsResponse
			err = json.Unmarshal(rr.Body.Bytes(), &resp)
			require.NoError(t, err)

			assert.Equal(t, "OK", resp.Status)
			assert.Len(t, resp.Notifications, tc.expectedCount)
		})
	}
}
