package rejectBooking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventdesk/internal/booking"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
)

type Request struct {
	Reason string `json:"reason"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRejecter
type BookingRejecter interface {
	Reject(ctx context.Context, bookingID, reason string) (*models.Booking, error)
}

func New(log *slog.Logger, rejecter BookingRejecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.rejectBooking.New"

		log = log.With(slog.String("op", op))

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", bookingID))

		// Reason is optional, so an empty body is fine.
		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		b, err := rejecter.Reject(r.Context(), bookingID, req.Reason)
		if err != nil {
			log.Error("failed to reject booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrInvalidTransition):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("only pending bookings can be rejected"))
			case errors.Is(err, booking.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("operation conflicted with a concurrent update, please retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to reject booking"))
			}

			return
		}

		log.Info("booking rejected")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
