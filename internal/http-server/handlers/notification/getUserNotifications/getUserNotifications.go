package getUserNotifications

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventdesk/internal/lib/api/response"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/models"
)

type NotificationsResponse struct {
	response.Response
	Notifications []models.Notification `json:"notifications"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationLister
type NotificationLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
}

func New(log *slog.Logger, lister NotificationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.getUserNotifications.New"

		log = log.With(slog.String("op", op))

		userID := chi.URLParam(r, "id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		notifications, err := lister.ListByUser(r.Context(), userID)
		if err != nil {
			log.Error("failed to get notifications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get notifications"))
			return
		}

		log.Info("notifications retrieved", slog.String("user_id", userID), slog.Int("count", len(notifications)))

		render.JSON(w, r, NotificationsResponse{
			Response:      response.OK(),
			Notifications: notifications,
		})
	}
}
