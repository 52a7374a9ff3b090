package deleteEvent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/booking"
	"eventdesk/internal/http-server/handlers/event/deleteEvent/mocks"
	"eventdesk/internal/lib/logger/handlers/slogdiscard"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventDeleter)
		expectedStatus int
		expectedError  string
	}{
		{
			name:    "Success",
			eventID: "1",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, 1).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid event id format",
			eventID:        "abc",
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid event id format",
		},
		{
			name:    "Event not found",
			eventID: "42",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, 42).Return(booking.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "event not found",
		},
		{
			name:    "Concurrent conflict",
			eventID: "1",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, 1).Return(booking.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "conflicted with a concurrent update",
		},
		{
			name:    "Internal server error",
			eventID: "1",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, 1).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to delete event",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			router := chi.NewRouter()
			router.Delete("/events/{id}", handler)

			req, err := http.NewRequest(http.MethodDelete, "/events/"+tc.eventID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedError != "" {
				assert.Contains(t, rr.Body.String(), `"status":"Error"`)
				assert.Contains(t, rr.Body.String(), tc.expectedError)
			} else {
				assert.Contains(t, rr.Body.String(), `"status":"OK"`)
			}
		})
	}
}
