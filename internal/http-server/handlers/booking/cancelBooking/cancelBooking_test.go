package cancelBooking

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/booking"
	"eventdesk/internal/http-server/handlers/booking/cancelBooking/mocks"
	"eventdesk/internal/lib/logger/handlers/slogdiscard"
	"eventdesk/internal/models"
)

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	cancelled := &models.Booking{
		ID:      "b-1",
		EventID: 1,
		UserID:  "user123",
		Status:  models.BookingCancelled,
	}

	testCases := []struct {
		name           string
		bookingID      string
		requestBody    io.Reader
		mockSetup      func(m *mocks.BookingCanceller)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			bookingID:   "b-1",
			requestBody: bytes.NewBufferString(`{"actor_id": "user123"}`),
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, "b-1", "user123").Return(cancelled, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing actor id",
			bookingID:      "b-1",
			requestBody:    bytes.NewBufferString(`{}`),
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "field ActorId is a required field",
		},
		{
			name:           "Invalid JSON",
			bookingID:      "b-1",
			requestBody:    bytes.NewBufferString(`{"actor_id":`),
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "failed to decode request",
		},
		{
			name:        "Booking not found",
			bookingID:   "missing",
			requestBody: bytes.NewBufferString(`{"actor_id": "user123"}`),
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, "missing", "user123").Return(nil, booking.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "booking not found",
		},
		{
			name:        "Invalid transition",
			bookingID:   "b-1",
			requestBody: bytes.NewBufferString(`{"actor_id": "user123"}`),
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, "b-1", "user123").Return(nil, booking.ErrInvalidTransition)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "booking cannot be cancelled from its current status",
		},
		{
			name:        "Concurrent conflict",
			bookingID:   "b-1",
			requestBody: bytes.NewBufferString(`{"actor_id": "user123"}`),
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, "b-1", "user123").Return(nil, booking.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "conflicted with a concurrent update",
		},
		{
			name:        "Internal server error",
			bookingID:   "b-1",
			requestBody: bytes.NewBufferString(`{"actor_id": "user123"}`),
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, "b-1", "user123").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to cancel booking",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(mockCanceller)

			handler := New(logger, mockCanceller)

			router := chi.NewRouter()
			router.Post("/bookings/{id}/cancel", handler)

			req, err := http.NewRequest(http.MethodPost, "/bookings/"+tc.bookingID+"/cancel", tc.requestBody)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedError != "" {
				assert.Contains(t, rr.Body.String(), `"status":"Error"`)
				assert.Contains(t, rr.Body.String(), tc.expectedError)
			} else {
				assert.Contains(t, rr.Body.String(), `"status":"OK"`)
				assert.Contains(t, rr.Body.String(), `"cancelled"`)
			}
		})
	}
}
