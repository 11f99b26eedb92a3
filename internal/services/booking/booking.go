package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"connemaraqueens/internal/lib/logger/sl"
	"connemaraqueens/internal/lib/reference"
	"connemaraqueens/internal/models"
	"connemaraqueens/internal/storage"
)

// Deposit rates in EUR per item; the balance is paid on collection.
const (
	NucDeposit   = 50
	QueenDeposit = 20
)

const maxReferenceAttempts = 5

var ErrReferenceExhausted = errors.New("could not allocate a unique booking reference")

type Storage interface {
	CreateBooking(ctx context.Context, booking models.InsertBooking, reference string) (models.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
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

// Create computes the deposit, allocates a unique reference and persists the
// booking. The deposit is fixed at creation time and never recomputed.
func (s *Service) Create(ctx context.Context, insert models.InsertBooking) (models.Booking, error) {
	const op = "services.booking.Create"

	log := s.log.With(slog.String("op", op))

	deposit := insert.NucsCount*NucDeposit + insert.QueensCount*QueenDeposit
	insert.DepositAmount = strconv.Itoa(deposit)

	ref, err := s.allocateReference(ctx)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	booking, err := s.storage.CreateBooking(ctx, insert, ref)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking created",
		slog.Int("id", booking.ID),
		slog.String("reference", booking.Reference),
		slog.String("deposit", booking.DepositAmount),
	)

	// the booking is already persisted; a failed notification is logged,
	// not returned
	err = s.notifier.Notify(ctx, models.Notification{
		Kind:           models.NotificationBooking,
		Reference:      booking.Reference,
		Name:           booking.FullName,
		Email:          booking.Email,
		DepositAmount:  booking.DepositAmount,
		PreferredMonth: booking.PreferredMonth,
		CreatedAt:      booking.CreatedAt,
	})
	if err != nil {
		log.Error("failed to send booking notification", sl.Err(err))
	}

	return booking, nil
}

func (s *Service) GetByReference(ctx context.Context, ref string) (models.Booking, error) {
	const op = "services.booking.GetByReference"

	booking, err := s.storage.GetBookingByReference(ctx, ref)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

func (s *Service) List(ctx context.Context) ([]models.Booking, error) {
	const op = "services.booking.List"

	bookings, err := s.storage.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

// allocateReference draws random references until one is free. A collision
// at this scale is close to impossible, but checking is cheap and keeps the
// uniqueness invariant honest.
func (s *Service) allocateReference(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ref, err := reference.New()
		if err != nil {
			return "", err
		}

		_, err = s.storage.GetBookingByReference(ctx, ref)
		if errors.Is(err, storage.ErrBookingNotFound) {
			return ref, nil
		}
		if err != nil {
			return "", err
		}

		s.log.Warn("booking reference collision", slog.String("reference", ref))
	}

	return "", ErrReferenceExhausted
}
