package requestBooking

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
	UserId string `json:"user_id" validate:"required"`
	Notes  string `json:"notes"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRequester
type BookingRequester interface {
	Request(ctx context.Context, userID string, eventID int, notes string) (*models.Booking, error)
}

func New(log *slog.Logger, requester BookingRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.requestBooking.New"

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

		b, err := requester.Request(r.Context(), req.UserId, eventID, req.Notes)
		if err != nil {
			log.Error("failed to request booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, booking.ErrEventNotBookable):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("event is not open for booking"))
			case errors.Is(err, booking.ErrEventFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is fully booked"))
			case errors.Is(err, booking.ErrDuplicateBooking):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("you already have a booking for this event"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to request booking"))
			}

			return
		}

		log.Info("booking requested", slog.String("booking_id", b.ID), slog.String("user_id", req.UserId))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
