package cancelBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventdesk/internal/booking"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
)

type Request struct {
	ActorId string `json:"actor_id" validate:"required"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	Cancel(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
}

func New(log *slog.Logger, canceller BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log = log.With(slog.String("op", op))

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", bookingID))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		b, err := canceller.Cancel(r.Context(), bookingID, req.ActorId)
		if err != nil {
			log.Error("failed to cancel booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrInvalidTransition):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("booking cannot be cancelled from its current status"))
			case errors.Is(err, booking.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("operation conflicted with a concurrent update, please retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}

			return
		}

		log.Info("booking cancelled", slog.String("actor_id", req.ActorId))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
