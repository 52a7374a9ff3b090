package updateBookingStatus

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
	Status string `json:"status" validate:"required,oneof=pending approved rejected cancelled"`
	Reason string `json:"reason"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

// BookingStatusUpdater is the generic admin path through the state machine.
// It is the route that allows reactivating a cancelled booking back to
// approved.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStatusUpdater
type BookingStatusUpdater interface {
	UpdateStatus(ctx context.Context, bookingID string, to models.BookingStatus, reason string) (*models.Booking, error)
}

func New(log *slog.Logger, updater BookingStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBookingStatus.New"

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

		b, err := updater.UpdateStatus(r.Context(), bookingID, models.BookingStatus(req.Status), req.Reason)
		if err != nil {
			log.Error("failed to update booking status", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrEventFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is now fully booked"))
			case errors.Is(err, booking.ErrInvalidTransition):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("status change not allowed from current state"))
			case errors.Is(err, booking.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("operation conflicted with a concurrent update, please retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking status"))
			}

			return
		}

		log.Info("booking status updated", slog.String("status", req.Status))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
