package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eventdesk/internal/booking"
	"eventdesk/internal/config"
	"eventdesk/internal/http-server/handlers/booking/approveBooking"
	"eventdesk/internal/http-server/handlers/booking/cancelBooking"
	"eventdesk/internal/http-server/handlers/booking/rejectBooking"
	"eventdesk/internal/http-server/handlers/booking/requestBooking"
	"eventdesk/internal/http-server/handlers/booking/updateBookingStatus"
	"eventdesk/internal/http-server/handlers/event/createEvent"
	"eventdesk/internal/http-server/handlers/event/deleteEvent"
	"eventdesk/internal/http-server/handlers/event/getAllEvents"
	"eventdesk/internal/http-server/handlers/event/getEventInfo"
	"eventdesk/internal/http-server/handlers/event/setEventStatus"
	"eventdesk/internal/http-server/handlers/notification/getUserNotifications"
	"eventdesk/internal/http-server/middleware/mwlogger"
	"eventdesk/internal/lib/logger/handlers/slogpretty"
	"eventdesk/internal/lib/logger/sl"
	"eventdesk/internal/notifier"
	"eventdesk/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventdesk", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(log, &cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.RunMigrations(); err != nil {
		log.Error("failed to run migrations", sl.Err(err))
		os.Exit(1)
	}

	notifications := notifier.New(storage.DB)
	engine := booking.NewService(log, storage, notifications)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/events", func(r chi.Router) {
		r.Post("/", createEvent.New(log, storage))
		r.Get("/", getAllEvents.New(log, storage))
		r.Get("/{id}", getEventInfo.New(log, storage))
		r.Patch("/{id}/status", setEventStatus.New(log, engine))
		r.Delete("/{id}", deleteEvent.New(log, engine))
		r.Post("/{id}/bookings", requestBooking.New(log, engine))
	})

	router.Route("/bookings", func(r chi.Router) {
		r.Post("/{id}/approve", approveBooking.New(log, engine))
		r.Post("/{id}/reject", rejectBooking.New(log, engine))
		r.Post("/{id}/cancel", cancelBooking.New(log, engine))
		r.Patch("/{id}/status", updateBookingStatus.New(log, engine))
	})

	router.Get("/users/{id}/notifications", getUserNotifications.New(log, notifications))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				completed, err := storage.CompletePastEvents(context.Background())
				if err != nil {
					log.Error("failed to complete past events", sl.Err(err))
				} else if completed > 0 {
					log.Info("past events completed", slog.Int64("count", completed))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
