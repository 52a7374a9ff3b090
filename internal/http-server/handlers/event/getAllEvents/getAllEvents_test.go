package getAllEvents

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventdesk/internal/lib/logger/handlers/slogdiscard"
	"eventdesk/internal/models"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	events := []models.Event{
		{
			ID:               1,
			Title:            "Go Meetup",
			Date:             time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC),
			OrganizerID:      "org-1",
			MaxAttendees:     100,
			CurrentAttendees: 42,
			Status:           models.EventActive,
		},
		{
			ID:           2,
			Title:        "Workshop",
			Date:         time.Date(2027, 1, 10, 10, 0, 0, 0, time.UTC),
			OrganizerID:  "org-2",
			MaxAttendees: 20,
			Status:       models.EventDraft,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		expectedError  string
		expectedCount  int
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(events, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name: "Empty list",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name: "Internal server error",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to get events",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest(http.MethodGet, "/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedError != "" {
				assert.Contains(t, rr.Body.String(), `"status":"Error"`)
				assert.Contains(t, rr.Body.String(), tc.expectedError)
				return
			}

			var resp EventsResponse
			err = json.Unmarshal(rr.Body.Bytes(), &resp)
			require.NoError(t, err)

			assert.Equal(t, "OK", resp.Status)
			assert.Len(t, resp.Events, tc.expectedCount)
		})
	}
}
