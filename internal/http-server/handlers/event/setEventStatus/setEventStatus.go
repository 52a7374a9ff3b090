package setEventStatus

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventdesk/internal/booking"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
)

type Request struct {
	Status string `json:"status" validate:"required,oneof=draft active cancelled completed postponed"`
	Reason string `json:"reason"`
}

type Response struct {
	response.Response
	Event *models.Event `json:"event,omitempty"`
}

// EventStatusSetter changes an event's lifecycle status. Cancelling or
// postponing an event cascades onto all of its bookings.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventStatusSetter
type EventStatusSetter interface {
	SetEventStatus(ctx context.Context, eventID int, to models.EventStatus, reason string) (*models.Event, error)
}

func New(log *slog.Logger, setter EventStatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.setEventStatus.New"

		log = log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")
		if eventIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		event, err := setter.SetEventStatus(r.Context(), eventID, models.EventStatus(req.Status), req.Reason)
		if err != nil {
			log.Error("failed to update event status", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, booking.ErrInvalidTransition):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("status change not allowed from current state"))
			case errors.Is(err, booking.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("operation conflicted with a concurrent update, please retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update event status"))
			}

			return
		}

		log.Info("event status updated", slog.String("status", req.Status))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    event,
		})
	}
}
