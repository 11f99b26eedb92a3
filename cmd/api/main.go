package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"connemaraqueens/internal/config"
	adminbookings "connemaraqueens/internal/http-server/handlers/admin_bookings"
	adminlogin "connemaraqueens/internal/http-server/handlers/admin_login"
	adminregister "connemaraqueens/internal/http-server/handlers/admin_register"
	contactmessage "connemaraqueens/internal/http-server/handlers/contact_message"
	createbooking "connemaraqueens/internal/http-server/handlers/create_booking"
	getbooking "connemaraqueens/internal/http-server/handlers/get_booking"
	paymentintent "connemaraqueens/internal/http-server/handlers/payment_intent"
	"connemaraqueens/internal/lib/jwt"
	"connemaraqueens/internal/lib/logger/sl"
	"connemaraqueens/internal/notify"
	"connemaraqueens/internal/rabbitmq"
	authsrv "connemaraqueens/internal/services/auth"
	bookingsrv "connemaraqueens/internal/services/booking"
	contactsrv "connemaraqueens/internal/services/contact"
	paymentsrv "connemaraqueens/internal/services/payments"
	"connemaraqueens/internal/storage"
	"connemaraqueens/internal/storage/memory"
	"connemaraqueens/internal/storage/postgres"
	"connemaraqueens/internal/storage/rediscache"
	stripecli "connemaraqueens/internal/stripe"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad("./config/local.yaml")
	log := setupLogger(cfg.Env)

	log.Info("starting api service", slog.String("env", cfg.Env))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// * Storage
	var store storage.Storage
	switch cfg.Storage.Driver {
	case "postgres":
		postgresRepo, err := postgres.Connect(ctx, cfg)
		if err != nil {
			log.Error("failed to connect to postgres", sl.Err(err))
			os.Exit(1)
		}
		defer postgresRepo.Close()

		if err := postgresRepo.Migrate(ctx); err != nil {
			log.Error("failed to migrate postgres schema", sl.Err(err))
			os.Exit(1)
		}

		store = postgresRepo
	default:
		store = memory.New()
	}

	// * Redis cache (optional)
	if cfg.Redis.Enabled {
		cached, err := rediscache.New(ctx, store, cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Error("failed to connect to redis", sl.Err(err))
			os.Exit(1)
		}
		defer cached.Close()

		store = cached
	}

	// * Notification sink
	var sink bookingsrv.Notifier
	switch cfg.Notifications.Sink {
	case "rabbitmq":
		rabbitMQClient, err := rabbitmq.New(cfg.RabbitMQ.URL, cfg.RabbitMQ.QueueName)
		if err != nil {
			log.Error("failed to init RabbitMQ", sl.Err(err))
			os.Exit(1)
		}
		defer rabbitMQClient.Close()

		sink = rabbitMQClient
	default:
		sink = notify.NewLogSink(log)
	}

	// * Services
	bookingService := bookingsrv.New(log, store, sink)
	contactService := contactsrv.New(log, store, sink)
	authService := authsrv.New(log, store, cfg.AppSecret, cfg.TokenTTL)
	paymentService := paymentsrv.New(log, stripecli.New(cfg.Stripe.SecretKey), store)

	// * Routing
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// * Handlers
	r.Post("/api/bookings", createbooking.New(log, bookingService))
	r.Get("/api/bookings/{reference}", getbooking.New(log, bookingService))
	r.Post("/api/contact", contactmessage.New(log, contactService))
	r.Post("/api/create-payment-intent", paymentintent.New(log, paymentService))
	r.Post("/api/admin/register", adminregister.New(log, authService))
	r.Post("/api/admin/login", adminlogin.New(log, authService))
	r.With(jwt.AuthMiddleware(cfg.AppSecret)).Get("/api/admin/bookings", adminbookings.New(log, bookingService))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      r,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	log.Info("HTTP server starting", slog.String("addr", cfg.HTTPServer.Address))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", sl.Err(err))
		os.Exit(1)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
