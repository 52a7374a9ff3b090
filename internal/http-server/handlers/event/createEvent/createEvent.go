package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
)

type EventRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date" validate:"required"`
	OrganizerId  string    `json:"organizer_id" validate:"required"`
	Price        float64   `json:"price" validate:"min=0"`
	MaxAttendees int       `json:"max_attendees" validate:"required,min=1"`
}

type EventResponse struct {
	response.Response
	EventId int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event *models.Event) (int, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		// Events start as drafts; bookings open once the organizer
		// activates the event.
		eventId, err := creator.CreateEvent(r.Context(), &models.Event{
			Title:        req.Title,
			Description:  req.Description,
			Date:         req.Date,
			OrganizerID:  req.OrganizerId,
			Price:        req.Price,
			MaxAttendees: req.MaxAttendees,
			Status:       models.EventDraft,
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int("id", eventId))

		responseOK(w, r, eventId)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId int) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventId:  eventId,
	})
}
