package contact

import (
	"context"
	"fmt"
	"log/slog"

	"connemaraqueens/internal/lib/logger/sl"
	"connemaraqueens/internal/models"
)

type Storage interface {
	CreateContactMessage(ctx context.Context, message models.InsertContactMessage) (models.ContactMessage, error)
}

type Notifier interface {
	Notify(ctx context.Context, notification models.Notification) error
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	notifier Notifier
}

func New(log *slog.Logger, storage Storage, notifier Notifier) *Service {
	return &Service{
		log:      log,
		storage:  storage,
		notifier: notifier,
	}
}

// Create persists an inbound contact message and notifies the sink.
func (s *Service) Create(ctx context.Context, insert models.InsertContactMessage) (models.ContactMessage, error) {
	const op = "services.contact.Create"

	log := s.log.With(slog.String("op", op))

	message, err := s.storage.CreateContactMessage(ctx, insert)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("contact message saved", slog.Int("id", message.ID))

	err = s.notifier.Notify(ctx, models.Notification{
		Kind:      models.NotificationContact,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	})
	if err != nil {
		log.Error("failed to send contact notification", sl.Err(err))
	}

	return message, nil
}
