package notify

import (
	"context"
	"log/slog"

	"connemaraqueens/internal/models"
)

// LogSink writes notifications to the application log instead of a broker.
// It is the sink for deployments without RabbitMQ: the message is persisted
// in storage either way, so delivery here is purely informational.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(ctx context.Context, notification models.Notification) error {
	s.log.Info("notification",
		slog.String("kind", notification.Kind),
		slog.String("name", notification.Name),
		slog.String("email", notification.Email),
		slog.String("reference", notification.Reference),
		slog.String("subject", notification.Subject),
	)

	return nil
}
