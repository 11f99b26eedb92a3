package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"connemaraqueens/internal/config"
	"connemaraqueens/internal/lib/logger/sl"
	"connemaraqueens/internal/mailer"
	"connemaraqueens/internal/models"
	"connemaraqueens/internal/rabbitmq"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoadNotifier("./config/notifier.yaml")
	log := setupLogger(cfg.Env)

	startConsumer(ctx, cfg, log)
}

func startConsumer(ctx context.Context, cfg *config.NotifierConfig, log *slog.Logger) {
	log.Info("starting notifier service", slog.String("env", cfg.Env))

	r, err := rabbitmq.New(cfg.RabbitMQURL, cfg.QueueName)
	if err != nil {
		log.Error("failed to init rabbitmq", sl.Err(err))
		return
	}
	defer r.Close()

	m := &mailer.Mailer{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		err := r.StartReading(ctx, func(msg []byte) {
			var notification models.Notification
			if err := json.Unmarshal(msg, &notification); err != nil {
				log.Error("failed to unmarshal message", sl.Err(err))
				return
			}

			subject, body := m.CreateMessage(notification)

			if err := m.Send(cfg.AdministratorEmail, subject, body); err != nil {
				log.Error("failed to send message", sl.Err(err))
				return
			}

			log.Info("message sent successfully", slog.String("kind", notification.Kind))
		})
		if err != nil {
			log.Error("failed to start reading", sl.Err(err))
			return
		}
	}()

	log.Info("notifier service successfully started")

	select {
	case <-ctx.Done():
		log.Info("shutting down consumer...")
	case <-done:
		log.Info("notifier service finished the work")
	}

	log.Info("notifier service gracefully stopped")
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
