package approveBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventdesk/internal/booking"
	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
)

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingApprover
type BookingApprover interface {
	Approve(ctx context.Context, bookingID string) (*models.Booking, error)
}

func New(log *slog.Logger, approver BookingApprover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.approveBooking.New"

		log = log.With(slog.String("op", op))

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", bookingID))

		b, err := approver.Approve(r.Context(), bookingID)
		if err != nil {
			log.Error("failed to approve booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrEventFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is now fully booked"))
			case errors.Is(err, booking.ErrInvalidTransition):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("booking cannot be approved from its current status"))
			case errors.Is(err, booking.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("operation conflicted with a concurrent update, please retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to approve booking"))
			}

			return
		}

		log.Info("booking approved")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
